package main

import (
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/app"
	"go.uber.org/fx"
)

func opts() fx.Option {
	return fx.Options(
		app.Module,
	)
}

func main() {
	fx.New(opts()).Run()
}
