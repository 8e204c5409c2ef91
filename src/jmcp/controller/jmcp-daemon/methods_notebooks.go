package jmcpdaemon

import (
	"context"
	"fmt"
	"strings"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
)

// NotebookInfo describes the active notebook and the session's kernel.
func (c *controller) NotebookInfo(ctx context.Context) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}

	info, err := c.notebooks.Describe(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(info)

	s, err := c.sessions.GetFromContext(ctx)
	if err == nil && s.HasKernel() {
		kernel, err := c.gateway.GetKernel(ctx, s.KernelID)
		if err != nil {
			fmt.Fprintf(&b, "Kernel: %s (not responding)\n", s.KernelID)
		} else {
			fmt.Fprintf(&b, "Kernel: %s (%s, %s)\n", kernel.ID, kernel.Name, kernel.ExecutionState)
		}
	} else {
		b.WriteString("Kernel: none (created on first execution)\n")
	}

	if kernels, err := c.gateway.ListKernels(ctx); err == nil {
		fmt.Fprintf(&b, "Server kernels running: %d\n", len(kernels))
	}

	return b.String(), nil
}

// CreateNotebook creates a new notebook file with one initial cell.
func (c *controller) CreateNotebook(ctx context.Context, filename, initialContent string, kind model.CellType) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.catalog.Create(ctx, filename, initialContent, kind)
}

// DeleteNotebook removes a notebook file. The active notebook is protected.
func (c *controller) DeleteNotebook(ctx context.Context, filename string) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.catalog.Delete(ctx, filename)
}

// ListNotebooks lists the notebooks on storage.
func (c *controller) ListNotebooks(ctx context.Context) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.catalog.List(ctx)
}

// SwitchNotebook makes another notebook the active document.
func (c *controller) SwitchNotebook(ctx context.Context, filename string) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	return c.catalog.SwitchActive(ctx, filename)
}

// CurrentNotebook names the active notebook.
func (c *controller) CurrentNotebook(ctx context.Context) (string, error) {
	if err := c.guard(ctx); err != nil {
		return "", err
	}
	name, err := c.catalog.ActiveName(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Current notebook: %s", name), nil
}
