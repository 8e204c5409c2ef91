// Package notebook implements the document store: it owns the active
// notebook document, its cell editing operations, and its persisted
// representation on disk.
package notebook

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	jmcperrors "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/fs"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/mapper"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "notebook"

	_introCellSource = "# MCP Jupyter Notebook\n\nThis notebook is being created and managed by the Jupyter MCP Server."
)

// Controller is the document store. Exactly one notebook is active at a time
// per daemon process; every mutation is persisted immediately.
type Controller interface {
	// Load makes path the active document, reading it from storage if
	// present, else initializing it with one descriptive markdown cell.
	Load(ctx context.Context, path string) error

	// ActivePath returns the path of the active document.
	ActivePath(ctx context.Context) (string, error)

	// Save rewrites the persisted document.
	Save(ctx context.Context) error

	// InsertCell places cell at position, or appends when position is nil or
	// outside the current range. Appending is a defined fallback, not an error.
	InsertCell(ctx context.Context, position *int, cell *model.Cell) error

	DeleteCell(ctx context.Context, index int) error
	ModifyCell(ctx context.Context, index int, source string) error
	SetCellKind(ctx context.Context, index int, kind model.CellType) error
	MoveCell(ctx context.Context, from, to int) error

	// Clear replaces the entire cell sequence with exactly one cell.
	Clear(ctx context.Context, content string, kind model.CellType) error

	Describe(ctx context.Context) (string, error)
	ListCells(ctx context.Context, previewLength int) (string, error)
	ReadCell(ctx context.Context, index int) (string, error)
	TextOutputs(ctx context.Context, index int) (string, error)
	ImageOutputs(ctx context.Context, index int) (string, error)
	CellCount(ctx context.Context) (int, error)

	// Export returns the active document as indented nbformat JSON.
	Export(ctx context.Context) (string, error)
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	Stats  tally.Scope
	FS     fs.JmcpFS
}

type controller struct {
	mu     sync.Mutex
	doc    *model.Notebook
	path   string
	logger *zap.SugaredLogger
	stats  tally.Scope
	fs     fs.JmcpFS
}

// New creates a new document store controller.
func New(p Params) Controller {
	return &controller{
		logger: p.Logger.With("plugin", _nameKey),
		stats:  p.Stats.SubScope(_nameKey),
		fs:     p.FS,
	}
}

func (c *controller) Load(ctx context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	exists, err := c.fs.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking notebook %q: %w", path, err)
	}

	if exists {
		data, err := c.fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading notebook %q: %w", path, err)
		}
		doc := model.NewNotebook()
		if err := json.Unmarshal(data, doc); err != nil {
			c.logger.Errorw("notebook on disk is not valid nbformat, starting fresh", "path", path, "error", err)
			doc = model.NewNotebook()
		}
		c.doc = doc
		c.path = path
		c.logger.Infow("loaded existing notebook", "path", path, "cells", len(doc.Cells))
		return nil
	}

	doc := model.NewNotebook()
	doc.Cells = append(doc.Cells, model.NewMarkdownCell(_introCellSource))
	c.doc = doc
	c.path = path
	c.logger.Infow("created new notebook", "path", path)
	return c.persistLocked()
}

func (c *controller) ActivePath(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		return "", jmcperrors.NoActiveNotebookError
	}
	return c.path, nil
}

func (c *controller) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		return jmcperrors.NoActiveNotebookError
	}
	return c.persistLocked()
}

func (c *controller) InsertCell(ctx context.Context, position *int, cell *model.Cell) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		return jmcperrors.NoActiveNotebookError
	}

	if position != nil && *position >= 0 && *position < len(c.doc.Cells) {
		i := *position
		c.doc.Cells = append(c.doc.Cells[:i], append([]*model.Cell{cell}, c.doc.Cells[i:]...)...)
	} else {
		c.doc.Cells = append(c.doc.Cells, cell)
	}
	c.stats.Counter("cells_inserted").Inc(1)
	return c.persistLocked()
}

func (c *controller) DeleteCell(ctx context.Context, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndexLocked(index); err != nil {
		return err
	}
	c.doc.Cells = append(c.doc.Cells[:index], c.doc.Cells[index+1:]...)
	c.stats.Counter("cells_deleted").Inc(1)
	return c.persistLocked()
}

func (c *controller) ModifyCell(ctx context.Context, index int, source string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndexLocked(index); err != nil {
		return err
	}
	c.doc.Cells[index].Source = source
	return c.persistLocked()
}

// SetCellKind changes a cell's kind. Converting code to markdown discards the
// execution count and outputs; converting markdown to code initializes them.
func (c *controller) SetCellKind(ctx context.Context, index int, kind model.CellType) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndexLocked(index); err != nil {
		return err
	}
	if !kind.Valid() {
		return fmt.Errorf("unsupported cell type %q", kind)
	}

	cell := c.doc.Cells[index]
	if cell.Type == kind {
		return c.persistLocked()
	}

	cell.Type = kind
	if kind == model.CellTypeMarkdown {
		cell.ExecutionCount = nil
		cell.Outputs = nil
	} else {
		cell.ExecutionCount = nil
		cell.Outputs = []model.Output{}
	}
	return c.persistLocked()
}

func (c *controller) MoveCell(ctx context.Context, from, to int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndexLocked(from); err != nil {
		return err
	}
	if err := c.checkIndexLocked(to); err != nil {
		return err
	}

	cell := c.doc.Cells[from]
	c.doc.Cells = append(c.doc.Cells[:from], c.doc.Cells[from+1:]...)
	c.doc.Cells = append(c.doc.Cells[:to], append([]*model.Cell{cell}, c.doc.Cells[to:]...)...)
	return c.persistLocked()
}

func (c *controller) Clear(ctx context.Context, content string, kind model.CellType) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		return jmcperrors.NoActiveNotebookError
	}

	var cell *model.Cell
	if kind == model.CellTypeCode {
		cell = model.NewCodeCell(content)
	} else {
		cell = model.NewMarkdownCell(content)
	}
	c.doc.Cells = []*model.Cell{cell}
	return c.persistLocked()
}

func (c *controller) Describe(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		return "", jmcperrors.NoActiveNotebookError
	}

	markdownCount, codeCount := 0, 0
	for _, cell := range c.doc.Cells {
		switch cell.Type {
		case model.CellTypeMarkdown:
			markdownCount++
		case model.CellTypeCode:
			codeCount++
		}
	}

	var b strings.Builder
	b.WriteString("Notebook Information:\n")
	fmt.Fprintf(&b, "- Path: %s\n", c.path)
	fmt.Fprintf(&b, "- Total cells: %d\n", len(c.doc.Cells))
	fmt.Fprintf(&b, "- Markdown cells: %d\n", markdownCount)
	fmt.Fprintf(&b, "- Code cells: %d\n", codeCount)

	kernelName, language := "unknown", "unknown"
	if c.doc.Metadata.Kernelspec != nil && c.doc.Metadata.Kernelspec.Name != "" {
		kernelName = c.doc.Metadata.Kernelspec.Name
	}
	if c.doc.Metadata.LanguageInfo != nil && c.doc.Metadata.LanguageInfo.Name != "" {
		language = c.doc.Metadata.LanguageInfo.Name
	}
	fmt.Fprintf(&b, "- Kernel: %s\n", kernelName)
	fmt.Fprintf(&b, "- Language: %s\n", language)

	return b.String(), nil
}

func (c *controller) ListCells(ctx context.Context, previewLength int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		return "", jmcperrors.NoActiveNotebookError
	}
	if len(c.doc.Cells) == 0 {
		return "No cells in notebook", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Notebook cells (%d total):\n\n", len(c.doc.Cells))
	for i, cell := range c.doc.Cells {
		fmt.Fprintf(&b, "[%d] Type: %s\n", i, cell.Type)
		fmt.Fprintf(&b, "    Content: %q\n", mapper.CellPreview(cell.Source, previewLength))
		if cell.Type == model.CellTypeCode && cell.ExecutionCount != nil {
			fmt.Fprintf(&b, "    Execution count: %d\n", *cell.ExecutionCount)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (c *controller) ReadCell(ctx context.Context, index int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndexLocked(index); err != nil {
		return "", err
	}
	cell := c.doc.Cells[index]
	return fmt.Sprintf("Type: %s, Content: %s", cell.Type, cell.Source), nil
}

func (c *controller) TextOutputs(ctx context.Context, index int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndexLocked(index); err != nil {
		return "", err
	}

	cell := c.doc.Cells[index]
	if cell.Type != model.CellTypeCode || len(cell.Outputs) == 0 {
		return "No outputs found for this cell", nil
	}

	var texts []string
	for _, output := range cell.Outputs {
		if text, ok := mapper.OutputToText(output); ok {
			texts = append(texts, text)
		}
	}
	if len(texts) == 0 {
		return fmt.Sprintf("No text outputs found in cell %d", index), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Text outputs for cell %d:\n", index)
	for i, text := range texts {
		if len(texts) > 1 {
			fmt.Fprintf(&b, "\nOutput %d:\n", i+1)
		}
		b.WriteString(text)
		if i < len(texts)-1 {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func (c *controller) ImageOutputs(ctx context.Context, index int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndexLocked(index); err != nil {
		return "", err
	}

	cell := c.doc.Cells[index]
	if cell.Type != model.CellTypeCode || len(cell.Outputs) == 0 {
		return "No outputs found for this cell", nil
	}

	type image struct {
		format string
		data   string
	}
	var images []image
	for _, output := range cell.Outputs {
		if output.Type != model.OutputTypeExecuteResult && output.Type != model.OutputTypeDisplayData {
			continue
		}
		if png, ok := output.Data[model.MimeImagePNG].(string); ok {
			images = append(images, image{format: "PNG", data: png})
		}
		if jpeg, ok := output.Data[model.MimeImageJPEG].(string); ok {
			images = append(images, image{format: "JPEG", data: jpeg})
		}
	}
	if len(images) == 0 {
		return fmt.Sprintf("No image outputs found in cell %d", index), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d image(s) in cell %d:\n", len(images), index)
	for i, img := range images {
		// Image payloads are already base64 encoded in the document.
		fmt.Fprintf(&b, "\nImage %d (%s):\n%s\n", i+1, img.format, img.data)
	}
	return b.String(), nil
}

func (c *controller) CellCount(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		return 0, jmcperrors.NoActiveNotebookError
	}
	return len(c.doc.Cells), nil
}

func (c *controller) Export(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		return "", jmcperrors.NoActiveNotebookError
	}
	data, err := json.MarshalIndent(c.doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding notebook: %w", err)
	}
	return string(data), nil
}

// checkIndexLocked validates an index against the active document without
// modifying any state.
func (c *controller) checkIndexLocked(index int) error {
	if c.doc == nil {
		return jmcperrors.NoActiveNotebookError
	}
	if index < 0 || index >= len(c.doc.Cells) {
		return &jmcperrors.CellOutOfRangeError{Index: index, Count: len(c.doc.Cells)}
	}
	return nil
}

// persistLocked rewrites the whole document. A failure is reported but the
// in-memory mutation is not rolled back.
func (c *controller) persistLocked() error {
	data, err := json.MarshalIndent(c.doc, "", " ")
	if err != nil {
		return &jmcperrors.PersistenceError{Path: c.path, Err: err}
	}
	if err := c.fs.MkdirAll(filepath.Dir(c.path)); err != nil {
		return &jmcperrors.PersistenceError{Path: c.path, Err: err}
	}
	if err := c.fs.WriteFile(c.path, append(data, '\n')); err != nil {
		c.stats.Counter("persist_failures").Inc(1)
		return &jmcperrors.PersistenceError{Path: c.path, Err: err}
	}
	c.logger.Debugw("saved notebook", "path", c.path)
	return nil
}
