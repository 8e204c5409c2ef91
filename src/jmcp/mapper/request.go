package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
	"go.lsp.dev/jsonrpc2"
)

// RequestToInitializeParams maps the parameters from a jsonrpc2.Request into mcp.InitializeParams.
func RequestToInitializeParams(req jsonrpc2.Request) (*mcp.InitializeParams, error) {
	params := mcp.InitializeParams{}
	if len(req.Params()) > 0 {
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return nil, wrapErrParse(err)
		}
	}
	return &params, nil
}

// RequestToCallToolParams maps the parameters from a jsonrpc2.Request into mcp.CallToolParams.
func RequestToCallToolParams(req jsonrpc2.Request) (*mcp.CallToolParams, error) {
	params := mcp.CallToolParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.Name == "" {
		return nil, wrapErrParse(fmt.Errorf("missing tool name"))
	}
	return &params, nil
}

// RequestToReadResourceParams maps the parameters from a jsonrpc2.Request into mcp.ReadResourceParams.
func RequestToReadResourceParams(req jsonrpc2.Request) (*mcp.ReadResourceParams, error) {
	params := mcp.ReadResourceParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
