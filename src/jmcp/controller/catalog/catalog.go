// Package catalog manages the collection of notebook documents on storage:
// listing, creation, deletion, and switching the active document.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/notebook"
	jmcperrors "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/fs"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "catalog"

	_configKeyDir = "notebooks.dir"

	// NotebookExtension is the canonical document extension, appended to
	// filenames that lack it.
	NotebookExtension = ".ipynb"

	// DefaultNotebookName is the document loaded at startup.
	DefaultNotebookName = "mcp_notebook" + NotebookExtension
)

// Controller lists, creates, deletes, and switches notebook documents.
type Controller interface {
	List(ctx context.Context) (string, error)
	Create(ctx context.Context, filename, initialContent string, kind model.CellType) (string, error)
	Delete(ctx context.Context, filename string) (string, error)
	SwitchActive(ctx context.Context, filename string) (string, error)
	ActiveName(ctx context.Context) (string, error)

	// Dir returns the notebooks directory.
	Dir() string
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Config    config.Provider
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	FS        fs.JmcpFS
	Notebooks notebook.Controller
	Lifecycle fx.Lifecycle
}

type controller struct {
	dir       string
	logger    *zap.SugaredLogger
	stats     tally.Scope
	fs        fs.JmcpFS
	notebooks notebook.Controller
}

// New creates the catalog controller and schedules loading of the default
// notebook on startup.
func New(p Params) (Controller, error) {
	var dir string
	if err := p.Config.Get(_configKeyDir).Populate(&dir); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyDir, err)
	}
	if dir == "" {
		dir = "notebooks"
	}

	c := &controller{
		dir:       dir,
		logger:    p.Logger.With("plugin", _nameKey),
		stats:     p.Stats.SubScope(_nameKey),
		fs:        p.FS,
		notebooks: p.Notebooks,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.FS.MkdirAll(dir); err != nil {
				return fmt.Errorf("creating notebooks directory %q: %w", dir, err)
			}
			return c.notebooks.Load(ctx, filepath.Join(dir, DefaultNotebookName))
		},
	})

	return c, nil
}

func (c *controller) Dir() string {
	return c.dir
}

// List returns the notebooks on storage with size, modification time, and a
// marker on the active document.
func (c *controller) List(ctx context.Context) (string, error) {
	entries, err := c.fs.ReadDir(c.dir)
	if err != nil {
		return "", fmt.Errorf("listing notebooks in %q: %w", c.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), NotebookExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "No notebooks found in the current directory", nil
	}
	sort.Strings(names)

	activeName, err := c.ActiveName(ctx)
	if err != nil {
		activeName = ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available notebooks (current: %s):\n\n", activeName)
	for _, name := range names {
		marker := ""
		if name == activeName {
			marker = " *CURRENT*"
		}
		fmt.Fprintf(&b, "- %s%s\n", name, marker)

		if info, err := c.fs.Stat(filepath.Join(c.dir, name)); err == nil {
			fmt.Fprintf(&b, "  Size: %d bytes\n", info.Size())
			fmt.Fprintf(&b, "  Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Create writes a new notebook with one initial cell. An existing document at
// the target path is never overwritten.
func (c *controller) Create(ctx context.Context, filename, initialContent string, kind model.CellType) (string, error) {
	name := normalizeName(filename)
	path := filepath.Join(c.dir, name)

	exists, err := c.fs.FileExists(path)
	if err != nil {
		return "", fmt.Errorf("checking notebook %q: %w", name, err)
	}
	if exists {
		return "", &jmcperrors.NotebookExistsError{Name: name}
	}

	doc := model.NewNotebook()
	var cell *model.Cell
	if kind == model.CellTypeCode {
		cell = model.NewCodeCell(initialContent)
	} else {
		cell = model.NewMarkdownCell(initialContent)
	}
	doc.Cells = append(doc.Cells, cell)

	data, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return "", fmt.Errorf("encoding notebook %q: %w", name, err)
	}
	if err := c.fs.WriteFile(path, append(data, '\n')); err != nil {
		return "", &jmcperrors.PersistenceError{Path: path, Err: err}
	}

	c.stats.Counter("notebooks_created").Inc(1)
	c.logger.Infow("created notebook", "path", path)
	return fmt.Sprintf("Notebook created successfully: %s", name), nil
}

// Delete removes a notebook file. The active document is protected; it must
// be switched away from before deletion.
func (c *controller) Delete(ctx context.Context, filename string) (string, error) {
	name := normalizeName(filename)
	path := filepath.Join(c.dir, name)

	exists, err := c.fs.FileExists(path)
	if err != nil {
		return "", fmt.Errorf("checking notebook %q: %w", name, err)
	}
	if !exists {
		return "", &jmcperrors.NotebookNotFoundError{Name: name}
	}

	if activeName, err := c.ActiveName(ctx); err == nil && activeName == name {
		return "", &jmcperrors.ActiveNotebookError{Name: name}
	}

	if err := c.fs.Remove(path); err != nil {
		return "", fmt.Errorf("deleting notebook %q: %w", name, err)
	}

	c.stats.Counter("notebooks_deleted").Inc(1)
	c.logger.Infow("deleted notebook", "path", path)
	return fmt.Sprintf("Notebook deleted successfully: %s", name), nil
}

// SwitchActive re-runs the document store's load-or-initialize logic against
// the new path, replacing the in-memory active document.
func (c *controller) SwitchActive(ctx context.Context, filename string) (string, error) {
	name := normalizeName(filename)
	path := filepath.Join(c.dir, name)

	if err := c.notebooks.Load(ctx, path); err != nil {
		return "", fmt.Errorf("switching to notebook %q: %w", name, err)
	}

	c.logger.Infow("switched active notebook", "path", path)
	return fmt.Sprintf("Switched to notebook: %s", name), nil
}

// ActiveName returns the filename of the currently active document.
func (c *controller) ActiveName(ctx context.Context) (string, error) {
	path, err := c.notebooks.ActivePath(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Base(path), nil
}

func normalizeName(filename string) string {
	if !strings.HasSuffix(filename, NotebookExtension) {
		return filename + NotebookExtension
	}
	return filename
}
