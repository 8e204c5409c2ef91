package jsonrpcfx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/serverinfofile"
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_configKeyMode    = "jsonrpc.mode"
	_configKeyAddress = "jsonrpc.address"
	_outputKeyMode    = "mcp-mode"
	_outputKeyAddress = "mcp-address"

	// ModeStdio serves a single client over stdin/stdout. This is the
	// standard MCP transport; logs must stay off stdout in this mode.
	ModeStdio = "stdio"
	// ModeTCP serves clients over a TCP listener.
	ModeTCP = "tcp"
)

// Module is an fx module to handle JSON-RPC requests.
var Module = fx.Provide(New)

// JSONRPCModule represents a module to manage JSON-RPC requests.
type JSONRPCModule interface {
	OnStart(ctx context.Context) error
	ServeStream(ctx context.Context, conn jsonrpc2.Conn) error
	RegisterConnectionManager(connectionManager ConnectionManager) error
}

// Router serves as the interface through which handling of requests will be implemented.
type Router interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	UUID() uuid.UUID
}

// ConnectionManager will manage each active connection and its corresponding Router throughout the lifecycle of a connection.
type ConnectionManager interface {
	NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router Router, err error)
	RemoveConnection(ctx context.Context, id uuid.UUID)
}

type module struct {
	Mode    string `json:"mode"`
	Address string `json:"address"`

	connectionMgr  ConnectionManager
	ln             *net.TCPListener
	logger         *zap.SugaredLogger
	serverInfoFile serverinfofile.ServerInfoFile
	shutdowner     fx.Shutdowner
}

// Params define values to be used by JsonRpcHandler.
type Params struct {
	fx.In

	Config         config.Provider
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	ServerInfoFile serverinfofile.ServerInfoFile
	Shutdowner     fx.Shutdowner
}

// New creates a new server to handle JSON-RPC requests over stdio or TCP.
func New(p Params) (JSONRPCModule, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := module{
		logger:         p.Logger,
		serverInfoFile: p.ServerInfoFile,
		shutdowner:     p.Shutdowner,
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.OnStart,
	})

	return &m, nil
}

// OnStart begins handling incoming connections on the configured transport.
func (m *module) OnStart(ctx context.Context) error {
	switch m.Mode {
	case ModeStdio:
		go m.startStdio()
		return nil
	case ModeTCP:
		if err := m.setupTCP(); err != nil {
			return err
		}
		go m.startTCP()
		return nil
	default:
		return fmt.Errorf("unknown jsonrpc mode %q", m.Mode)
	}
}

// ServeStream is called when a new connection is initiated. Requests received via the connection will be routed to the handler, and answered via the connection's replier.
func (m *module) ServeStream(ctx context.Context, conn jsonrpc2.Conn) error {
	if m.connectionMgr == nil {
		m.logger.Errorf("cannot serve connection, no connection manager set")
		return errors.New("cannot serve connection, no connection manager set")
	}

	// Start handling the connection.
	handler, err := m.connectionMgr.NewConnection(ctx, &conn)
	if err != nil {
		return err
	}
	m.logger.Infow("client connected", zap.Stringer("uuid", handler.UUID()))
	conn.Go(ctx, handler.HandleReq)

	// Block indefinitely until connection closed.
	<-conn.Done()

	// Cleanup after connection.
	m.connectionMgr.RemoveConnection(ctx, handler.UUID())
	m.logger.Infow("client disconnected", zap.Stringer("uuid", handler.UUID()))

	return conn.Err()
}

// RegisterConnectionManager sets the connection manager, which keeps track of current active connections and provides a Router implementation.
func (m *module) RegisterConnectionManager(connectionMgr ConnectionManager) error {
	if m.connectionMgr != nil {
		return errors.New("cannot register a duplicate connection manager")
	}
	m.connectionMgr = connectionMgr
	return nil
}

// startStdio serves the single stdio client. MCP messages are exchanged as
// newline-delimited JSON, without LSP-style framing headers. The process
// shuts down when the client closes stdin.
func (m *module) startStdio() {
	if err := m.serverInfoFile.UpdateField(_outputKeyMode, ModeStdio); err != nil {
		panic(err)
	}
	m.logger.Infow("started JSON-RPC inbound", zap.String("mode", ModeStdio))

	stream := jsonrpc2.NewRawStream(stdioPipe{})
	conn := jsonrpc2.NewConn(stream)

	if err := m.ServeStream(context.Background(), conn); err != nil && !errors.Is(err, io.EOF) {
		m.logger.Warnw("stdio stream closed", "error", err)
	}

	if err := m.shutdowner.Shutdown(); err != nil {
		os.Exit(1)
	}
}

// setupTCP should be called before startTCP to bind the listener.
func (m *module) setupTCP() error {
	if m.Address == "" {
		return errors.New("setup called before address is set")
	}

	addr, err := net.ResolveTCPAddr("tcp", m.Address)
	if err != nil {
		return err
	}

	m.ln, err = net.ListenTCP("tcp", addr)
	return err
}

// startTCP will begin serving connections, and panic on error.
func (m *module) startTCP() {
	if err := m.serverInfoFile.UpdateField(_outputKeyMode, ModeTCP); err != nil {
		panic(err)
	}
	if err := m.serverInfoFile.UpdateField(_outputKeyAddress, m.Address); err != nil {
		panic(err)
	}

	m.logger.Infow("started JSON-RPC inbound", zap.String("address", m.Address))
	if err := jsonrpc2.Serve(context.Background(), m.ln, m, 0); err != nil {
		panic(err)
	}
}

// processConfig will parse the configuration for any values required by this module.
func (m *module) processConfig(cfg config.Provider) error {
	if err := cfg.Get(_configKeyMode).Populate(&m.Mode); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyMode, err)
	}
	if m.Mode == "" {
		m.Mode = ModeStdio
	}

	if err := cfg.Get(_configKeyAddress).Populate(&m.Address); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyAddress, err)
	}
	if m.Mode == ModeTCP && m.Address == "" {
		// yaml is missing either the key or value
		return fmt.Errorf("missing field %q in config", _configKeyAddress)
	}

	return nil
}

// stdioPipe adapts the process's stdin/stdout into a single ReadWriteCloser
// for the raw JSON-RPC stream.
type stdioPipe struct{}

func (stdioPipe) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioPipe) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdioPipe) Close() error {
	return multierr.Append(os.Stdin.Close(), os.Stdout.Close())
}
