package jupyter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jmcperrors "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _upgrader = websocket.Upgrader{}

// echoKernel upgrades the connection and echoes every message back with the
// incoming header mirrored into parent_header.
func echoKernel(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := _upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer ws.Close()

		for {
			var msg model.KernelMessage
			if err := ws.ReadJSON(&msg); err != nil {
				return
			}
			parent, _ := json.Marshal(msg.Header)
			reply := model.KernelMessage{
				Header:       model.MessageHeader{MsgID: "reply-1", MsgType: model.MsgTypeExecuteReply, Session: msg.Header.Session},
				ParentHeader: parent,
				Content:      json.RawMessage(`{"status": "ok", "execution_count": 1}`),
			}
			if err := ws.WriteJSON(reply); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return strings.Replace(srv.URL, "http://", "ws://", 1)
}

func TestChannelSendReceive(t *testing.T) {
	srv := echoKernel(t)
	defer srv.Close()

	ctx := context.Background()
	ch, err := websocketDialer{}.Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer ch.Close()

	msg := &model.KernelMessage{
		Header: model.MessageHeader{
			MsgID:   "msg-1",
			MsgType: model.MsgTypeExecuteRequest,
			Session: "sess-1",
			Version: model.KernelProtocolVersion,
		},
		Channel: "shell",
		Content: json.RawMessage(`{"code": "1+1"}`),
	}
	require.NoError(t, ch.Send(ctx, msg))

	got, err := ch.Receive(ctx, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, model.MsgTypeExecuteReply, got.Header.MsgType)

	var parent model.MessageHeader
	require.NoError(t, json.Unmarshal(got.ParentHeader, &parent))
	assert.Equal(t, "msg-1", parent.MsgID)
}

func TestChannelReceiveTimeout(t *testing.T) {
	// Upgrade but never send anything back.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := _upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer ws.Close()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	ch, err := websocketDialer{}.Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer ch.Close()

	_, err = ch.Receive(ctx, 50*time.Millisecond)
	require.Error(t, err)
	assert.True(t, jmcperrors.IsExecutionTimeout(err))
}

func TestDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := websocketDialer{}.Dial(context.Background(), wsURL(srv))
	assert.Error(t, err)
}
