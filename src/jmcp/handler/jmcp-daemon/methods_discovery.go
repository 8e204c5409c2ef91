package jmcpdaemon

import (
	"context"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/mapper"
	"go.lsp.dev/jsonrpc2"
)

const _notebookMimeType = "application/x-ipynb+json"

// ResourcesList serves the resource catalog.
func (r *jsonRPCRouter) ResourcesList(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	resources, err := r.jmcpdaemon.ListResources(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, mcp.ListResourcesResult{Resources: resources}, nil)
}

// ResourcesRead serves the contents of one resource.
func (r *jsonRPCRouter) ResourcesRead(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToReadResourceParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	text, err := r.jmcpdaemon.ReadResource(ctx, params.URI)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, mcp.ReadResourceResult{
		Contents: []mcp.ResourceContents{
			{URI: params.URI, MimeType: _notebookMimeType, Text: text},
		},
	}, nil)
}

// PromptsList serves the prompt catalog.
func (r *jsonRPCRouter) PromptsList(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	prompts, err := r.jmcpdaemon.ListPrompts(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, mcp.ListPromptsResult{Prompts: prompts}, nil)
}
