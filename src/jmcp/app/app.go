package app

import (
	"context"
	"time"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/gateway"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/handler"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/core"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/fs"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/jsonrpcfx"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/serverinfofile"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
)

// Module defines the jmcp-daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "jmcp-daemon",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
