package jmcpdaemon

import (
	"context"
	"fmt"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
)

// AddExecuteCodeCell adds a code cell, runs it on the session's kernel, and
// returns the execution transcript. A receive timeout still commits partial
// outputs before surfacing the failure.
func (c *controller) AddExecuteCodeCell(ctx context.Context, content string, position *int) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.executor.AddAndExecute(ctx, content, position)
}

// AddMarkdownCell adds a markdown cell at the given position (append when nil).
func (c *controller) AddMarkdownCell(ctx context.Context, content string, position *int) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	if err := c.notebooks.InsertCell(ctx, position, model.NewMarkdownCell(content)); err != nil {
		return "", err
	}
	return "Markdown cell added successfully", nil
}

// DeleteCell removes the cell at index.
func (c *controller) DeleteCell(ctx context.Context, index int) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	if err := c.notebooks.DeleteCell(ctx, index); err != nil {
		return "", err
	}
	return fmt.Sprintf("Cell %d deleted successfully", index), nil
}

// ModifyCell replaces the source of the cell at index, preserving its kind
// and outputs.
func (c *controller) ModifyCell(ctx context.Context, index int, content string) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	if err := c.notebooks.ModifyCell(ctx, index, content); err != nil {
		return "", err
	}
	return fmt.Sprintf("Cell %d modified successfully", index), nil
}

// ChangeCellType converts the cell at index to the given kind.
func (c *controller) ChangeCellType(ctx context.Context, index int, kind model.CellType) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	if !kind.Valid() {
		return "", fmt.Errorf("invalid cell type %q, must be 'code' or 'markdown'", kind)
	}
	if err := c.notebooks.SetCellKind(ctx, index, kind); err != nil {
		return "", err
	}
	return fmt.Sprintf("Cell %d changed to %s successfully", index, kind), nil
}

// MoveCell relocates the cell at from to position to.
func (c *controller) MoveCell(ctx context.Context, from, to int) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	if err := c.notebooks.MoveCell(ctx, from, to); err != nil {
		return "", err
	}
	return fmt.Sprintf("Cell moved from position %d to position %d successfully", from, to), nil
}

// ClearNotebook replaces all cells with a single cell of the given kind.
func (c *controller) ClearNotebook(ctx context.Context, content string, kind model.CellType) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	if err := c.notebooks.Clear(ctx, content, kind); err != nil {
		return "", err
	}
	return "Notebook cleared successfully", nil
}

// ListCells returns an indexed listing of every cell with a source preview.
func (c *controller) ListCells(ctx context.Context, previewLength int) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.notebooks.ListCells(ctx, previewLength)
}

// ReadCell returns the full source and metadata of the cell at index.
func (c *controller) ReadCell(ctx context.Context, index int) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.notebooks.ReadCell(ctx, index)
}

// CellTextOutput returns the textual outputs of the cell at index.
func (c *controller) CellTextOutput(ctx context.Context, index int) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.notebooks.TextOutputs(ctx, index)
}

// CellImageOutput returns a description of the image outputs of the cell at index.
func (c *controller) CellImageOutput(ctx context.Context, index int) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.notebooks.ImageOutputs(ctx, index)
}
