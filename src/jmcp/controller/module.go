package controller

import (
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/catalog"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/executor"
	jmcpdaemon "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/jmcp-daemon"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/notebook"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(jmcpdaemon.New),
	fx.Provide(notebook.New),
	fx.Provide(catalog.New),
	fx.Provide(executor.New),
)
