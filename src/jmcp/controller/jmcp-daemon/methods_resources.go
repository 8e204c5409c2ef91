package jmcpdaemon

import (
	"context"
	"fmt"
	"strings"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
)

const (
	_notebookURIScheme = "notebook://"
	_notebookMimeType  = "application/x-ipynb+json"
)

// ListResources exposes the active notebook as a resource.
func (c *controller) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	path, err := c.notebooks.ActivePath(ctx)
	if err != nil {
		return []mcp.Resource{}, nil
	}

	return []mcp.Resource{
		{
			URI:         _notebookURIScheme + path,
			Name:        "Current Notebook",
			Description: "The current Jupyter notebook being managed",
			MimeType:    _notebookMimeType,
		},
	}, nil
}

// ReadResource returns the active notebook's nbformat JSON for notebook URIs.
func (c *controller) ReadResource(ctx context.Context, uri string) (string, error) {
	if !strings.HasPrefix(uri, _notebookURIScheme) {
		return fmt.Sprintf("Unsupported resource URI: %s", uri), nil
	}
	return c.notebooks.Export(ctx)
}

// ListPrompts names the prompts this server offers.
func (c *controller) ListPrompts(ctx context.Context) ([]mcp.Prompt, error) {
	return []mcp.Prompt{
		{
			Name:        "notebook_status",
			Description: "Get the current status of the Jupyter notebook",
		},
		{
			Name:        "create_notebook",
			Description: "Create a new Jupyter notebook with initial cells",
		},
	}, nil
}
