package jmcpdaemon

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/mapper"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"go.lsp.dev/jsonrpc2"
)

const _defaultPreviewLength = 100

// toolArguments is the union of every tool's arguments. Absent fields stay at
// their zero value; pointer fields distinguish absent from zero.
type toolArguments struct {
	CellContent    string `json:"cell_content"`
	Position       *int   `json:"position"`
	CellIndex      *int   `json:"cell_index"`
	NewContent     string `json:"new_content"`
	NewType        string `json:"new_type"`
	FromIndex      *int   `json:"from_index"`
	ToIndex        *int   `json:"to_index"`
	Content        string `json:"content"`
	CellType       string `json:"cell_type"`
	PreviewLength  *int   `json:"preview_length"`
	Filename       string `json:"filename"`
	InitialContent string `json:"initial_content"`
}

// ToolsList serves the tool registry.
func (r *jsonRPCRouter) ToolsList(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return reply(ctx, mcp.ListToolsResult{Tools: _tools}, nil)
}

// ToolsCall routes one tool invocation. Tool failures never become JSON-RPC
// errors; they are reported as a textual result with the error flag set.
func (r *jsonRPCRouter) ToolsCall(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCallToolParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.callTool(ctx, params)
	if err != nil {
		r.stats.Tagged(map[string]string{"tool": params.Name}).Counter("tool_errors").Inc(1)
		return reply(ctx, mcp.CallToolResult{
			Content: []mcp.TextContent{mcp.NewTextContent(fmt.Sprintf("Error executing tool %s: %s", params.Name, err))},
			IsError: true,
		}, nil)
	}

	return reply(ctx, mcp.CallToolResult{
		Content: []mcp.TextContent{mcp.NewTextContent(result)},
	}, nil)
}

func (r *jsonRPCRouter) callTool(ctx context.Context, params *mcp.CallToolParams) (string, error) {
	var args toolArguments
	if len(params.Arguments) > 0 {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			return "", fmt.Errorf("decoding tool arguments: %w", err)
		}
	}

	switch params.Name {
	case "add_execute_code_cell":
		return r.jmcpdaemon.AddExecuteCodeCell(ctx, args.CellContent, args.Position)

	case "add_markdown_cell":
		return r.jmcpdaemon.AddMarkdownCell(ctx, args.CellContent, args.Position)

	case "delete_cell":
		index, err := requiredIndex(args.CellIndex, "cell_index")
		if err != nil {
			return "", err
		}
		return r.jmcpdaemon.DeleteCell(ctx, index)

	case "modify_cell":
		index, err := requiredIndex(args.CellIndex, "cell_index")
		if err != nil {
			return "", err
		}
		return r.jmcpdaemon.ModifyCell(ctx, index, args.NewContent)

	case "change_cell_type":
		index, err := requiredIndex(args.CellIndex, "cell_index")
		if err != nil {
			return "", err
		}
		return r.jmcpdaemon.ChangeCellType(ctx, index, cellTypeOrDefault(args.NewType))

	case "move_cell":
		from, err := requiredIndex(args.FromIndex, "from_index")
		if err != nil {
			return "", err
		}
		to, err := requiredIndex(args.ToIndex, "to_index")
		if err != nil {
			return "", err
		}
		return r.jmcpdaemon.MoveCell(ctx, from, to)

	case "clear_notebook":
		return r.jmcpdaemon.ClearNotebook(ctx, args.Content, cellTypeOrDefault(args.CellType))

	case "get_notebook_info":
		return r.jmcpdaemon.NotebookInfo(ctx)

	case "list_cells":
		previewLength := _defaultPreviewLength
		if args.PreviewLength != nil {
			previewLength = *args.PreviewLength
		}
		return r.jmcpdaemon.ListCells(ctx, previewLength)

	case "read_cell":
		index, err := requiredIndex(args.CellIndex, "cell_index")
		if err != nil {
			return "", err
		}
		return r.jmcpdaemon.ReadCell(ctx, index)

	case "create_notebook":
		if args.Filename == "" {
			return "", fmt.Errorf("missing required argument %q", "filename")
		}
		return r.jmcpdaemon.CreateNotebook(ctx, args.Filename, args.InitialContent, cellTypeOrDefault(args.CellType))

	case "delete_notebook":
		if args.Filename == "" {
			return "", fmt.Errorf("missing required argument %q", "filename")
		}
		return r.jmcpdaemon.DeleteNotebook(ctx, args.Filename)

	case "list_notebooks":
		return r.jmcpdaemon.ListNotebooks(ctx)

	case "switch_notebook":
		if args.Filename == "" {
			return "", fmt.Errorf("missing required argument %q", "filename")
		}
		return r.jmcpdaemon.SwitchNotebook(ctx, args.Filename)

	case "get_current_notebook":
		return r.jmcpdaemon.CurrentNotebook(ctx)

	case "get_cell_image_output":
		index, err := requiredIndex(args.CellIndex, "cell_index")
		if err != nil {
			return "", err
		}
		return r.jmcpdaemon.CellImageOutput(ctx, index)

	case "get_cell_text_output":
		index, err := requiredIndex(args.CellIndex, "cell_index")
		if err != nil {
			return "", err
		}
		return r.jmcpdaemon.CellTextOutput(ctx, index)

	default:
		return fmt.Sprintf("Unknown tool: %s", params.Name), nil
	}
}

func requiredIndex(value *int, name string) (int, error) {
	if value == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}
	return *value, nil
}

func cellTypeOrDefault(raw string) model.CellType {
	if raw == "" {
		return model.CellTypeMarkdown
	}
	return model.CellType(raw)
}
