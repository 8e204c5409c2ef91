package handler

import (
	controller "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller"
	jmcpdaemon "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/jmcp-daemon"
	handler "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/handler/jmcp-daemon"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/repository/session"
	"go.uber.org/fx"
)

// Module provides the jmcp-daemon server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(handler.New),
	fx.Invoke(outputServerInfo),
	fx.Invoke(func(m handler.Handler) {}),
	fx.Invoke(func(m jmcpdaemon.Controller) {}),
)
