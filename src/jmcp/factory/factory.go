// Package factory provides user-defined factories for test fixtures.
package factory

import (
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// Session is a factory for a session without an attached kernel.
func Session() *entity.Session {
	return &entity.Session{
		UUID: UUID(),
	}
}

// InitializeParams is a factory for a client handshake request.
func InitializeParams() *mcp.InitializeParams {
	return &mcp.InitializeParams{
		ProtocolVersion: mcp.ProtocolVersion,
		ClientInfo: mcp.Implementation{
			Name:    "test-client",
			Version: "0.1.0",
		},
	}
}

// Notebook is a factory for a document with one markdown and one code cell.
func Notebook() *model.Notebook {
	doc := model.NewNotebook()
	doc.Cells = append(doc.Cells,
		model.NewMarkdownCell("# Title"),
		model.NewCodeCell("print('hello')"),
	)
	return doc
}
