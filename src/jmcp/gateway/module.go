// Package gateway groups the daemon's outbound gateways.
package gateway

import (
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/gateway/jupyter"
	"go.uber.org/fx"
)

// Module provides the outbound gateways into an Fx application.
var Module = fx.Options(
	fx.Provide(jupyter.New),
)
