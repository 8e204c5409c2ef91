package jmcpdaemon

import (
	"context"

	controller "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/jmcp-daemon"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
)

// MethodRequestFullShutdown directs the server to shut down when the current session ends.
const MethodRequestFullShutdown = "jmcp/requestFullShutdown"

type jsonRPCRouter struct {
	jmcpdaemon controller.Controller
	uuid       uuid.UUID
	stats      tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Lifecycle related methods.
	case mcp.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case mcp.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case mcp.MethodPing:
		return r.Ping(ctx, reply, req)

	case MethodRequestFullShutdown:
		return r.RequestFullShutdown(ctx, reply, req)

	// Tool methods.
	case mcp.MethodToolsList:
		return r.ToolsList(ctx, reply, req)

	case mcp.MethodToolsCall:
		return r.ToolsCall(ctx, reply, req)

	// Discovery methods.
	case mcp.MethodResourcesList:
		return r.ResourcesList(ctx, reply, req)

	case mcp.MethodResourcesRead:
		return r.ResourcesRead(ctx, reply, req)

	case mcp.MethodPromptsList:
		return r.PromptsList(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
