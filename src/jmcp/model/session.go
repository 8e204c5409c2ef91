package model

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// Session is the stored representation of one MCP client connection.
type Session struct {
	UUID         uuid.UUID
	Conn         *jsonrpc2.Conn
	KernelID     string
	NotebookPath string
	Initialized  bool
	ClientName   string
}
