// Package mapper converts between entities, stored models, and textual
// projections returned at the tool boundary.
package mapper

import (
	"context"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// SessionToModel maps a Session entity to its model equivalent.
func SessionToModel(s *entity.Session) *model.Session {
	return &model.Session{
		UUID:         s.UUID,
		Conn:         s.Conn,
		KernelID:     s.KernelID,
		NotebookPath: s.NotebookPath,
		Initialized:  s.Initialized,
		ClientName:   s.ClientName,
	}
}

// ModelToSession maps a model Session to its entity equivalent.
func ModelToSession(s *model.Session) (*entity.Session, error) {
	return &entity.Session{
		UUID:         s.UUID,
		Conn:         s.Conn,
		KernelID:     s.KernelID,
		NotebookPath: s.NotebookPath,
		Initialized:  s.Initialized,
		ClientName:   s.ClientName,
	}, nil
}

// UUIDToSession initializes a new Session entity with the assigned uuid and connection.
func UUIDToSession(u uuid.UUID, c *jsonrpc2.Conn) *entity.Session {
	return &entity.Session{
		UUID: u,
		Conn: c,
	}
}

// ContextToSessionUUID extracts the session UUID from a context.
func ContextToSessionUUID(c context.Context) (uuid.UUID, error) {
	s, ok := c.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.NoSessionOnWireError
	}
	return s, nil
}
