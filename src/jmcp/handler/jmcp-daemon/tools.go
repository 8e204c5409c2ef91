package jmcpdaemon

import (
	"encoding/json"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
)

// _tools is the registry served by tools/list. Argument schemas are plain
// JSON Schema objects; tools/call validates required fields while decoding.
var _tools = []mcp.Tool{
	{
		Name:        "add_execute_code_cell",
		Description: "Add and execute a code cell in a Jupyter notebook",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cell_content": {"type": "string", "description": "Code content to execute"},
				"position": {"type": "integer", "description": "Position to insert cell (optional, defaults to end)"}
			},
			"required": ["cell_content"]
		}`),
	},
	{
		Name:        "add_markdown_cell",
		Description: "Add a markdown cell in a Jupyter notebook",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cell_content": {"type": "string", "description": "Markdown content"},
				"position": {"type": "integer", "description": "Position to insert cell (optional, defaults to end)"}
			},
			"required": ["cell_content"]
		}`),
	},
	{
		Name:        "delete_cell",
		Description: "Delete a specific cell from the notebook by index",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cell_index": {"type": "integer", "description": "Index of cell to delete (0-based)"}
			},
			"required": ["cell_index"]
		}`),
	},
	{
		Name:        "modify_cell",
		Description: "Modify the content of an existing cell",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cell_index": {"type": "integer", "description": "Index of cell to modify (0-based)"},
				"new_content": {"type": "string", "description": "New content for the cell"}
			},
			"required": ["cell_index", "new_content"]
		}`),
	},
	{
		Name:        "change_cell_type",
		Description: "Change the type of a cell (markdown/code)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cell_index": {"type": "integer", "description": "Index of cell to change (0-based)"},
				"new_type": {"type": "string", "enum": ["markdown", "code"], "description": "New cell type"}
			},
			"required": ["cell_index", "new_type"]
		}`),
	},
	{
		Name:        "move_cell",
		Description: "Move a cell to a different position",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"from_index": {"type": "integer", "description": "Current index of cell to move (0-based)"},
				"to_index": {"type": "integer", "description": "Target index position (0-based)"}
			},
			"required": ["from_index", "to_index"]
		}`),
	},
	{
		Name:        "clear_notebook",
		Description: "Clear all cells from the notebook except one and replace with custom content",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"content": {"type": "string", "description": "Content for the single remaining cell"},
				"cell_type": {"type": "string", "enum": ["markdown", "code"], "description": "Type of the remaining cell (default: markdown)"}
			},
			"required": ["content"]
		}`),
	},
	{
		Name:        "get_notebook_info",
		Description: "Get comprehensive information about the current notebook",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	},
	{
		Name:        "list_cells",
		Description: "List all cells in the notebook with their types and content preview",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"preview_length": {"type": "integer", "description": "Length of content preview (default: 100)"}
			}
		}`),
	},
	{
		Name:        "read_cell",
		Description: "Read the full content of a specific cell",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cell_index": {"type": "integer", "description": "Index of cell to read (0-based)"}
			},
			"required": ["cell_index"]
		}`),
	},
	{
		Name:        "create_notebook",
		Description: "Create a new Jupyter notebook file",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"filename": {"type": "string", "description": "Name of the notebook file (with .ipynb extension)"},
				"initial_content": {"type": "string", "description": "Initial content for the first cell (optional)"},
				"cell_type": {"type": "string", "enum": ["markdown", "code"], "description": "Type of the initial cell (default: markdown)"}
			},
			"required": ["filename"]
		}`),
	},
	{
		Name:        "delete_notebook",
		Description: "Delete a notebook file from the filesystem",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"filename": {"type": "string", "description": "Name of the notebook file to delete"}
			},
			"required": ["filename"]
		}`),
	},
	{
		Name:        "list_notebooks",
		Description: "List all notebook files in the current directory",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	},
	{
		Name:        "switch_notebook",
		Description: "Switch to working with a different notebook file",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"filename": {"type": "string", "description": "Name of the notebook file to switch to"}
			},
			"required": ["filename"]
		}`),
	},
	{
		Name:        "get_current_notebook",
		Description: "Get the name of the currently active notebook",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	},
	{
		Name:        "get_cell_image_output",
		Description: "Get the image output of a specific cell",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cell_index": {"type": "integer", "description": "Index of cell to get image output from (0-based)"}
			},
			"required": ["cell_index"]
		}`),
	},
	{
		Name:        "get_cell_text_output",
		Description: "Get the text output of a specific cell",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cell_index": {"type": "integer", "description": "Index of cell to get text output from (0-based)"}
			},
			"required": ["cell_index"]
		}`),
	},
}
