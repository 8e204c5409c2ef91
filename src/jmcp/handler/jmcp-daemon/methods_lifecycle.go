package jmcpdaemon

import (
	"context"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Initialize extracts mcp.InitializeParams from the request and calls initialization logic for a new client connection.
func (r *jsonRPCRouter) Initialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToInitializeParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.jmcpdaemon.Initialize(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}

// Initialized is sent after the client received the result of the initialize request but before any other request.
func (r *jsonRPCRouter) Initialized(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.jmcpdaemon.Initialized(ctx)
	return reply(ctx, nil, err)
}

// Ping answers a client liveness check with an empty result.
func (r *jsonRPCRouter) Ping(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.jmcpdaemon.Ping(ctx)
	return reply(ctx, struct{}{}, err)
}

// RequestFullShutdown will indicate that the current session's end should shut down the whole server.
func (r *jsonRPCRouter) RequestFullShutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.jmcpdaemon.RequestFullShutdown(ctx)
	return reply(ctx, nil, err)
}
