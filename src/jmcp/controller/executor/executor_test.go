package executor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/notebook/notebookmock"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/entity"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/factory"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/gateway/jupyter/jupytermock"
	jmcperrors "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/repository/session/repositorymock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type sampleConfig map[string]interface{}

type testDeps struct {
	gateway   *jupytermock.MockGateway
	notebooks *notebookmock.MockController
	sessions  *repositorymock.MockRepository
}

func newController(t *testing.T) (Controller, *testDeps, *entity.Session, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		gateway:   jupytermock.NewMockGateway(ctrl),
		notebooks: notebookmock.NewMockController(ctrl),
		sessions:  repositorymock.NewMockRepository(ctrl),
	}

	cfg, err := config.NewStaticProvider(sampleConfig{
		"jupyter": map[string]string{"kernelName": "python3"},
	})
	require.NoError(t, err)

	c, err := New(Params{
		Config:    cfg,
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NewTestScope("", nil),
		Gateway:   deps.gateway,
		Notebooks: deps.notebooks,
		Sessions:  deps.sessions,
	})
	require.NoError(t, err)

	s := factory.Session()
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, s.UUID)
	return c, deps, s, ctx
}

// fakeChannel replies to one Send with a scripted message sequence, then
// times out once the script is exhausted.
type fakeChannel struct {
	script func(sent *model.KernelMessage) []*model.KernelMessage
	queue  []*model.KernelMessage
	closed bool
}

func (f *fakeChannel) Send(ctx context.Context, msg *model.KernelMessage) error {
	f.queue = f.script(msg)
	return nil
}

func (f *fakeChannel) Receive(ctx context.Context, wait time.Duration) (*model.KernelMessage, error) {
	if len(f.queue) == 0 {
		return nil, &jmcperrors.ExecutionTimeoutError{Wait: wait}
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func childMessage(t *testing.T, parent model.MessageHeader, msgType string, content string) *model.KernelMessage {
	t.Helper()
	parentRaw, err := json.Marshal(parent)
	require.NoError(t, err)
	return &model.KernelMessage{
		Header:       model.MessageHeader{MsgID: factory.UUID().String(), MsgType: msgType, Session: parent.Session},
		ParentHeader: parentRaw,
		Content:      json.RawMessage(content),
	}
}

func TestEnsureKernel(t *testing.T) {
	t.Run("creates kernel when session has none", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		deps.sessions.EXPECT().GetFromContext(ctx).Return(s, nil)
		deps.gateway.EXPECT().CreateKernel(ctx, "python3").Return(model.KernelInfo{ID: "k1", Name: "python3"}, nil)
		deps.sessions.EXPECT().Set(ctx, s).Return(nil)

		info, err := c.EnsureKernel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "k1", info.ID)
		assert.Equal(t, "k1", s.KernelID)
	})

	t.Run("reuses live kernel", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		s.KernelID = "k1"
		deps.sessions.EXPECT().GetFromContext(ctx).Return(s, nil)
		deps.gateway.EXPECT().GetKernel(ctx, "k1").Return(model.KernelInfo{ID: "k1", ExecutionState: "idle"}, nil)

		info, err := c.EnsureKernel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "idle", info.ExecutionState)
	})

	t.Run("replaces dead kernel", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		s.KernelID = "gone"
		deps.sessions.EXPECT().GetFromContext(ctx).Return(s, nil)
		deps.gateway.EXPECT().GetKernel(ctx, "gone").Return(model.KernelInfo{}, errors.New("404"))
		deps.gateway.EXPECT().CreateKernel(ctx, "python3").Return(model.KernelInfo{ID: "k2"}, nil)
		deps.sessions.EXPECT().Set(ctx, s).Return(nil)

		info, err := c.EnsureKernel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "k2", info.ID)
		assert.Equal(t, "k2", s.KernelID)
	})

	t.Run("create failure", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		deps.sessions.EXPECT().GetFromContext(ctx).Return(s, nil)
		deps.gateway.EXPECT().CreateKernel(ctx, "python3").Return(model.KernelInfo{}, &jmcperrors.KernelCreationError{Status: 403})

		_, err := c.EnsureKernel(ctx)
		assert.Error(t, err)
	})
}

func TestAddAndExecute(t *testing.T) {
	setupKernel := func(deps *testDeps, s *entity.Session, ctx context.Context) {
		s.KernelID = "k1"
		deps.sessions.EXPECT().GetFromContext(ctx).Return(s, nil).Times(2)
		deps.gateway.EXPECT().GetKernel(ctx, "k1").Return(model.KernelInfo{ID: "k1"}, nil)
	}

	t.Run("successful execution", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		setupKernel(deps, s, ctx)

		var sentRequest *model.KernelMessage
		channel := &fakeChannel{script: func(sent *model.KernelMessage) []*model.KernelMessage {
			sentRequest = sent
			other := model.MessageHeader{MsgID: "someone-else", Session: "other"}
			return []*model.KernelMessage{
				childMessage(t, other, model.MsgTypeStream, `{"name": "stdout", "text": "noise\n"}`),
				childMessage(t, sent.Header, model.MsgTypeStream, `{"name": "stdout", "text": "hello\n"}`),
				childMessage(t, sent.Header, model.MsgTypeExecuteResult, `{"execution_count": 2, "data": {"text/plain": "4"}, "metadata": {}}`),
				childMessage(t, sent.Header, model.MsgTypeExecuteReply, `{"status": "ok", "execution_count": 2}`),
			}
		}}
		deps.gateway.EXPECT().DialChannels(ctx, "k1").Return(channel, nil)

		var inserted *model.Cell
		deps.notebooks.EXPECT().InsertCell(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *int, cell *model.Cell) error {
				inserted = cell
				return nil
			})

		got, err := c.AddAndExecute(ctx, "2+2", nil)
		require.NoError(t, err)
		assert.Equal(t, "In [2]: 2+2\n\nOutput:\nhello\n\n4", got)

		require.NotNil(t, inserted)
		assert.Equal(t, model.CellTypeCode, inserted.Type)
		require.NotNil(t, inserted.ExecutionCount)
		assert.Equal(t, 2, *inserted.ExecutionCount)
		// The unrelated message is filtered; two outputs remain.
		assert.Len(t, inserted.Outputs, 2)
		assert.True(t, channel.closed)

		// The server rejects request frames without a parent_header object.
		require.NotNil(t, sentRequest)
		frame, err := json.Marshal(sentRequest)
		require.NoError(t, err)
		assert.Contains(t, string(frame), `"parent_header":{}`)
	})

	t.Run("error status without error output", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		setupKernel(deps, s, ctx)

		channel := &fakeChannel{script: func(sent *model.KernelMessage) []*model.KernelMessage {
			return []*model.KernelMessage{
				childMessage(t, sent.Header, model.MsgTypeExecuteReply,
					`{"status": "error", "execution_count": 3, "ename": "NameError", "evalue": "name 'x' is not defined"}`),
			}
		}}
		deps.gateway.EXPECT().DialChannels(ctx, "k1").Return(channel, nil)

		var inserted *model.Cell
		deps.notebooks.EXPECT().InsertCell(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *int, cell *model.Cell) error {
				inserted = cell
				return nil
			})

		got, err := c.AddAndExecute(ctx, "x", nil)
		require.NoError(t, err)
		assert.Contains(t, got, "Error: NameError")
		assert.Contains(t, got, "Message: name 'x' is not defined")

		require.Len(t, inserted.Outputs, 1)
		assert.Equal(t, model.OutputTypeError, inserted.Outputs[0].Type)
	})

	t.Run("timeout commits partial outputs", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		setupKernel(deps, s, ctx)

		channel := &fakeChannel{script: func(sent *model.KernelMessage) []*model.KernelMessage {
			return []*model.KernelMessage{
				childMessage(t, sent.Header, model.MsgTypeStream, `{"name": "stdout", "text": "partial\n"}`),
			}
		}}
		deps.gateway.EXPECT().DialChannels(ctx, "k1").Return(channel, nil)

		var inserted *model.Cell
		deps.notebooks.EXPECT().InsertCell(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *int, cell *model.Cell) error {
				inserted = cell
				return nil
			})

		got, err := c.AddAndExecute(ctx, "while True: pass", nil)
		require.Error(t, err)
		assert.True(t, jmcperrors.IsExecutionTimeout(err))
		assert.Contains(t, got, "partial\n")

		require.NotNil(t, inserted)
		assert.Len(t, inserted.Outputs, 1)
		assert.True(t, channel.closed)
	})

	t.Run("dial failure falls back to degraded path", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		setupKernel(deps, s, ctx)

		deps.gateway.EXPECT().DialChannels(ctx, "k1").Return(nil, errors.New("dial refused"))
		deps.notebooks.EXPECT().InsertCell(ctx, nil, gomock.Any()).Return(nil)
		deps.gateway.EXPECT().GetKernel(ctx, "k1").Return(model.KernelInfo{ID: "k1"}, nil)

		got, err := c.AddAndExecute(ctx, "print(1)", nil)
		require.NoError(t, err)
		assert.Contains(t, got, "Kernel k1 is alive")
		assert.Contains(t, got, "Code:\nprint(1)")
	})

	t.Run("dial failure with dead kernel", func(t *testing.T) {
		c, deps, s, ctx := newController(t)
		setupKernel(deps, s, ctx)

		deps.gateway.EXPECT().DialChannels(ctx, "k1").Return(nil, errors.New("dial refused"))
		deps.notebooks.EXPECT().InsertCell(ctx, nil, gomock.Any()).Return(nil)
		deps.gateway.EXPECT().GetKernel(ctx, "k1").Return(model.KernelInfo{}, errors.New("404"))

		got, err := c.AddAndExecute(ctx, "print(1)", nil)
		require.NoError(t, err)
		assert.Contains(t, got, "kernel k1 is not responding")
	})
}
