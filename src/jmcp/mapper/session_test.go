package mapper

import (
	"context"
	"testing"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionModelRoundTrip(t *testing.T) {
	e := UUIDToSession(factory.UUID(), nil)
	e.KernelID = "kernel-1"
	e.ClientName = "client"

	back, err := ModelToSession(SessionToModel(e))
	require.NoError(t, err)
	assert.Equal(t, e, back)
}

func TestContextToSessionUUID(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		id := factory.UUID()
		ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)
		got, err := ContextToSessionUUID(ctx)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := ContextToSessionUUID(context.Background())
		assert.Error(t, err)
	})
}
