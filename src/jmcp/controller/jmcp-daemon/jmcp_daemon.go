// Package jmcpdaemon implements the jmcp-daemon business logic: the MCP
// lifecycle and the tool operations exposed to clients.
package jmcpdaemon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/catalog"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/executor"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/notebook"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/gateway/jupyter"
	jmcperrors "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	sessionrepository "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/repository/session"
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"
)

// Controller orchestrates the business logic for each request.
type Controller interface {
	// MCP lifecycle methods.
	Initialize(ctx context.Context, params *mcp.InitializeParams) (*mcp.InitializeResult, error)
	Initialized(ctx context.Context) error
	Ping(ctx context.Context) error

	// Cell tool operations.
	AddExecuteCodeCell(ctx context.Context, content string, position *int) (string, error)
	AddMarkdownCell(ctx context.Context, content string, position *int) (string, error)
	DeleteCell(ctx context.Context, index int) (string, error)
	ModifyCell(ctx context.Context, index int, content string) (string, error)
	ChangeCellType(ctx context.Context, index int, kind model.CellType) (string, error)
	MoveCell(ctx context.Context, from, to int) (string, error)
	ClearNotebook(ctx context.Context, content string, kind model.CellType) (string, error)
	ListCells(ctx context.Context, previewLength int) (string, error)
	ReadCell(ctx context.Context, index int) (string, error)
	CellTextOutput(ctx context.Context, index int) (string, error)
	CellImageOutput(ctx context.Context, index int) (string, error)

	// Notebook catalog tool operations.
	NotebookInfo(ctx context.Context) (string, error)
	CreateNotebook(ctx context.Context, filename, initialContent string, kind model.CellType) (string, error)
	DeleteNotebook(ctx context.Context, filename string) (string, error)
	ListNotebooks(ctx context.Context) (string, error)
	SwitchNotebook(ctx context.Context, filename string) (string, error)
	CurrentNotebook(ctx context.Context) (string, error)

	// Resource and prompt discovery.
	ListResources(ctx context.Context) ([]mcp.Resource, error)
	ReadResource(ctx context.Context, uri string) (string, error)
	ListPrompts(ctx context.Context) ([]mcp.Prompt, error)

	// Custom methods for use within this service.
	RequestFullShutdown(ctx context.Context) error
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, uuid uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner fx.Shutdowner
	Sessions   sessionrepository.Repository
	Gateway    jupyter.Gateway
	Logger     *zap.SugaredLogger
	Config     config.Provider

	Notebooks notebook.Controller
	Catalog   catalog.Controller
	Executor  executor.Controller
}

type controller struct {
	sessions           sessionrepository.Repository
	shutdowner         fx.Shutdowner
	fullShutdown       bool
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
	idleTimeoutMinutes time.Duration
	logger             *zap.SugaredLogger
	gateway            jupyter.Gateway
	notebooks          notebook.Controller
	catalog            catalog.Controller
	executor           executor.Controller
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	ctx := context.Background()

	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil || timeoutMinutesRaw == 0 {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}

	c := &controller{
		sessions:   p.Sessions,
		shutdowner: p.Shutdowner,
		logger:     p.Logger,
		gateway:    p.Gateway,
		notebooks:  p.Notebooks,
		catalog:    p.Catalog,
		executor:   p.Executor,

		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,
	}
	c.refreshIdleTimer(ctx)

	return c, nil
}

// guard short-circuits tool operations when the Jupyter server does not
// answer the liveness probe.
func (c *controller) guard(ctx context.Context) error {
	if !c.gateway.EnsureReachable(ctx) {
		return &jmcperrors.ServerUnreachableError{URL: c.gateway.BaseURL()}
	}
	return nil
}
