// Package entity contains the domain types for the jmcp daemon.
package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

type keyType string

// SessionContextKey indicates the key used to identify the session UUID in
// the context of every inbound request.
const SessionContextKey keyType = "SessionUUID"

// Session represents a single MCP client connection and the remote state
// attached to it. At most one kernel is active per session; the kernel is
// created lazily on first execution and released when the session ends.
type Session struct {
	UUID         uuid.UUID      `json:"uuid" zap:"uuid"`
	Conn         *jsonrpc2.Conn `json:"-" zap:"-"`
	KernelID     string         `json:"kernelId" zap:"kernelId"`
	NotebookPath string         `json:"notebookPath" zap:"notebookPath"`
	Initialized  bool           `json:"initialized" zap:"initialized"`
	ClientName   string         `json:"clientName" zap:"clientName"`
}

// HasKernel reports whether a kernel has been created for this session.
func (s *Session) HasKernel() bool {
	return s.KernelID != ""
}
