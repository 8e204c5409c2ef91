package jmcpdaemon

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity/mcp"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/mapper"
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// Initialize stores information about a new connection and returns the
// server's identity and capabilities.
func (c *controller) Initialize(ctx context.Context, params *mcp.InitializeParams) (*mcp.InitializeResult, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting session from context: %w", err)
	}

	s.Initialized = true
	if params != nil {
		s.ClientName = params.ClientInfo.Name
	}
	if err := c.sessions.Set(ctx, s); err != nil {
		return nil, fmt.Errorf("setting updated session state: %w", err)
	}

	c.logger.Infow("client initialized", "client", s.ClientName, "uuid", s.UUID)

	return &mcp.InitializeResult{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities: mcp.ServerCapabilities{
			Tools:     &mcp.ToolsCapability{},
			Resources: &mcp.ResourcesCapability{},
			Prompts:   &mcp.PromptsCapability{},
		},
		ServerInfo: mcp.Implementation{
			Name:    "Jupyter Notebook MCP Server",
			Version: "1.0.0",
		},
	}, nil
}

// Initialized handles the client's post-handshake notification.
func (c *controller) Initialized(ctx context.Context) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}
	c.logger.Debugw("initialized notification received", "uuid", s.UUID)
	return nil
}

// Ping is a liveness check from the client.
func (c *controller) Ping(ctx context.Context) error {
	return nil
}

// RequestFullShutdown will set the controller to treat the next session end
// as a request to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.fullShutdown = true

	return nil
}

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	session := mapper.UUIDToSession(id, conn)
	if err := c.sessions.Set(ctx, session); err != nil {
		return uuid.Nil, err
	}

	c.logger.Infow("session started", "uuid", id)
	return id, nil
}

// EndSession releases the session's kernel and removes its state, during or
// after the last JSON-RPC request.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	s, err := c.sessions.Get(ctx, id)
	if err == nil && s.HasKernel() {
		if err := c.gateway.ShutdownKernel(ctx, s.KernelID); err != nil {
			c.logger.Warnw("shutting down session kernel", "kernelId", s.KernelID, "error", err)
		}
	}

	if err := c.sessions.Delete(ctx, id); err != nil {
		return err
	}
	c.logger.Infow("session ended", "uuid", id)

	if c.fullShutdown {
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimerMu.Lock()
		c.idleTimer.Reset(0)
		c.idleTimerMu.Unlock()
		return nil
	}
	return c.refreshIdleTimer(ctx)
}

// refreshIdleTimer ensures that the service shuts down after a defined
// inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes new timer and leaves it running prior to first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeoutMinutes)
		go func() {
			<-c.idleTimer.C
			c.logger.Info("Shutdown signal received.")
			if err := c.shutdowner.Shutdown(); err != nil {
				os.Exit(1)
			}
		}()
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	currentSessions, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if currentSessions == 0 {
		c.idleTimer.Reset(c.idleTimeoutMinutes)
	}
	return nil
}
