package jupyter

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	jmcperrors "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"github.com/gorilla/websocket"
)

const _writeTimeout = 10 * time.Second

// KernelChannel is one open streaming connection to a kernel's channels
// endpoint. It is scoped to a single execution call: opened, used for one
// request/receive cycle, and closed on every exit path.
type KernelChannel interface {
	// Send writes one structured message to the channel.
	Send(ctx context.Context, msg *model.KernelMessage) error

	// Receive blocks for the next message, at most wait. Exceeding the bound
	// returns an ExecutionTimeoutError.
	Receive(ctx context.Context, wait time.Duration) (*model.KernelMessage, error)

	Close() error
}

// channelDialer abstracts websocket dialing so tests can substitute a fake.
type channelDialer interface {
	Dial(ctx context.Context, url string) (KernelChannel, error)
}

type websocketDialer struct{}

func (websocketDialer) Dial(ctx context.Context, url string) (KernelChannel, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing kernel channels: %w", err)
	}
	return &kernelChannel{ws: ws}, nil
}

type kernelChannel struct {
	ws *websocket.Conn
}

func (c *kernelChannel) Send(ctx context.Context, msg *model.KernelMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding kernel message: %w", err)
	}
	c.ws.SetWriteDeadline(time.Now().Add(_writeTimeout))
	if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("sending kernel message: %w", err)
	}
	return nil
}

func (c *kernelChannel) Receive(ctx context.Context, wait time.Duration) (*model.KernelMessage, error) {
	c.ws.SetReadDeadline(time.Now().Add(wait))
	_, payload, err := c.ws.ReadMessage()
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, &jmcperrors.ExecutionTimeoutError{Wait: wait}
		}
		return nil, fmt.Errorf("receiving kernel message: %w", err)
	}

	var msg model.KernelMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("decoding kernel message: %w", err)
	}
	return &msg, nil
}

func (c *kernelChannel) Close() error {
	return c.ws.Close()
}
