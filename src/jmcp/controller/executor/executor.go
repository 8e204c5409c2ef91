// Package executor runs code cells on a Jupyter kernel. One execution is one
// pass through the engine: obtain a kernel, open its channels websocket, send
// a single execute_request, drain the reply stream, and commit the outputs
// into the active notebook.
package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/controller/notebook"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/gateway/jupyter"
	jmcperrors "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/errors"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/mapper"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	sessionrepository "github.com/JosephLin11/jupyter-mcp-server/src/jmcp/repository/session"
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "executor"

	_configKeyKernelName = "jupyter.kernelName"

	// _receiveTimeout bounds each individual websocket receive. A kernel that
	// goes quiet for this long fails the execution with whatever outputs have
	// arrived so far.
	_receiveTimeout = 30 * time.Second
)

// Controller executes code against a Jupyter kernel and records the results
// in the active notebook.
type Controller interface {
	// AddAndExecute inserts a new code cell at position (nil or out of range
	// appends), executes it, commits outputs and execution count to the cell,
	// and returns a transcript. On receive timeout the partial outputs are
	// still committed and the returned error is a *errors.ExecutionTimeoutError.
	AddAndExecute(ctx context.Context, source string, position *int) (string, error)

	// EnsureKernel returns the session's kernel, creating one if the session
	// has none or its recorded kernel is gone.
	EnsureKernel(ctx context.Context) (model.KernelInfo, error)
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Config    config.Provider
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Gateway   jupyter.Gateway
	Notebooks notebook.Controller
	Sessions  sessionrepository.Repository
}

type controller struct {
	kernelName string
	logger     *zap.SugaredLogger
	stats      tally.Scope
	gateway    jupyter.Gateway
	notebooks  notebook.Controller
	sessions   sessionrepository.Repository
}

// New creates the execution controller from configuration.
func New(p Params) (Controller, error) {
	var kernelName string
	if err := p.Config.Get(_configKeyKernelName).Populate(&kernelName); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyKernelName, err)
	}
	if kernelName == "" {
		kernelName = "python3"
	}

	return &controller{
		kernelName: kernelName,
		logger:     p.Logger.With("plugin", _nameKey),
		stats:      p.Stats.SubScope(_nameKey),
		gateway:    p.Gateway,
		notebooks:  p.Notebooks,
		sessions:   p.Sessions,
	}, nil
}

// EnsureKernel reuses the kernel recorded in the current session when the
// server still knows it, and starts a fresh one otherwise.
func (c *controller) EnsureKernel(ctx context.Context) (model.KernelInfo, error) {
	session, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return model.KernelInfo{}, err
	}

	if session.HasKernel() {
		info, err := c.gateway.GetKernel(ctx, session.KernelID)
		if err == nil {
			return info, nil
		}
		c.logger.Infow("recorded kernel is gone, starting a new one", "kernelId", session.KernelID, "error", err)
	}

	info, err := c.gateway.CreateKernel(ctx, c.kernelName)
	if err != nil {
		return model.KernelInfo{}, err
	}

	session.KernelID = info.ID
	if err := c.sessions.Set(ctx, session); err != nil {
		return model.KernelInfo{}, err
	}
	c.stats.Counter("kernels_started").Inc(1)
	return info, nil
}

// AddAndExecute is the single entry point for running code.
func (c *controller) AddAndExecute(ctx context.Context, source string, position *int) (string, error) {
	kernel, err := c.EnsureKernel(ctx)
	if err != nil {
		return "", err
	}

	session, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return "", err
	}

	channel, err := c.gateway.DialChannels(ctx, kernel.ID)
	if err != nil {
		c.logger.Warnw("channels dial failed, falling back to HTTP", "kernelId", kernel.ID, "error", err)
		return c.executeDegraded(ctx, kernel.ID, source, position)
	}
	defer channel.Close()

	msgID := uuid.Must(uuid.NewV4()).String()
	request := &model.KernelMessage{
		Header: model.MessageHeader{
			MsgID:    msgID,
			MsgType:  model.MsgTypeExecuteRequest,
			Session:  session.UUID.String(),
			Username: "jmcp",
			Version:  model.KernelProtocolVersion,
		},
		// The server deserializes parent_header unconditionally; it must be
		// present as an empty object on request messages.
		ParentHeader: json.RawMessage("{}"),
		Metadata:     map[string]any{},
		Channel:      "shell",
	}
	content, err := json.Marshal(model.ExecuteRequestContent{
		Code:            source,
		Silent:          false,
		StoreHistory:    true,
		UserExpressions: map[string]any{},
		AllowStdin:      false,
		StopOnError:     true,
	})
	if err != nil {
		return "", fmt.Errorf("encoding execute request: %w", err)
	}
	request.Content = content

	if err := channel.Send(ctx, request); err != nil {
		return "", fmt.Errorf("sending execute request: %w", err)
	}

	outputs, executionCount, drainErr := c.drain(ctx, channel, msgID)

	cell := model.NewCodeCell(source)
	cell.Outputs = outputs
	cell.ExecutionCount = executionCount
	if err := c.notebooks.InsertCell(ctx, position, cell); err != nil {
		return "", err
	}

	transcript := mapper.OutputsToTranscript(source, executionCount, outputs)
	if drainErr != nil {
		c.stats.Counter("executions_timed_out").Inc(1)
		return transcript, drainErr
	}

	c.stats.Counter("executions_completed").Inc(1)
	return transcript, nil
}

// drain consumes messages until the execute_reply for msgID arrives. Messages
// parented to other requests are skipped. A receive timeout returns whatever
// outputs have been collected alongside the timeout error.
func (c *controller) drain(ctx context.Context, channel jupyter.KernelChannel, msgID string) ([]model.Output, *int, error) {
	var outputs []model.Output
	var executionCount *int

	for {
		msg, err := channel.Receive(ctx, _receiveTimeout)
		if err != nil {
			if jmcperrors.IsExecutionTimeout(err) {
				c.logger.Warnw("execution timed out waiting for kernel", "msgId", msgID)
				return outputs, executionCount, err
			}
			return outputs, executionCount, fmt.Errorf("receiving kernel message: %w", err)
		}

		if parentMsgID(msg) != msgID {
			continue
		}

		switch msg.Header.MsgType {
		case model.MsgTypeStream:
			var sc model.StreamContent
			if err := json.Unmarshal(msg.Content, &sc); err != nil {
				c.logger.Debugw("dropping malformed stream content", "error", err)
				continue
			}
			outputs = append(outputs, model.NewStreamOutput(sc.Name, string(sc.Text)))

		case model.MsgTypeExecuteResult:
			var rc model.ExecuteResultContent
			if err := json.Unmarshal(msg.Content, &rc); err != nil {
				c.logger.Debugw("dropping malformed execute_result content", "error", err)
				continue
			}
			outputs = append(outputs, model.NewExecuteResultOutput(rc.ExecutionCount, rc.Data, rc.Metadata))
			if rc.ExecutionCount != nil {
				executionCount = rc.ExecutionCount
			}

		case model.MsgTypeDisplayData:
			var dc model.DisplayDataContent
			if err := json.Unmarshal(msg.Content, &dc); err != nil {
				c.logger.Debugw("dropping malformed display_data content", "error", err)
				continue
			}
			outputs = append(outputs, model.NewDisplayDataOutput(dc.Data, dc.Metadata))

		case model.MsgTypeError:
			var ec model.ErrorContent
			if err := json.Unmarshal(msg.Content, &ec); err != nil {
				c.logger.Debugw("dropping malformed error content", "error", err)
				continue
			}
			outputs = append(outputs, model.NewErrorOutput(ec.EName, ec.EValue, ec.Traceback))

		case model.MsgTypeExecuteReply:
			var rc model.ExecuteReplyContent
			if err := json.Unmarshal(msg.Content, &rc); err != nil {
				return outputs, executionCount, fmt.Errorf("decoding execute reply: %w", err)
			}
			if rc.ExecutionCount != nil {
				executionCount = rc.ExecutionCount
			}
			if rc.Status == "error" && !hasErrorOutput(outputs) {
				outputs = append(outputs, model.NewErrorOutput(rc.EName, rc.EValue, rc.Traceback))
			}
			return outputs, executionCount, nil
		}
	}
}

// executeDegraded is the reduced-fidelity path when the channels websocket
// cannot be opened. The cell is still added, without outputs, and the result
// states whether the kernel is alive.
func (c *controller) executeDegraded(ctx context.Context, kernelID, source string, position *int) (string, error) {
	cell := model.NewCodeCell(source)
	if err := c.notebooks.InsertCell(ctx, position, cell); err != nil {
		return "", err
	}

	c.stats.Counter("executions_degraded").Inc(1)

	if _, err := c.gateway.GetKernel(ctx, kernelID); err != nil {
		return fmt.Sprintf(
			"Code cell added but could not be executed: kernel %s is not responding.\n\nCode:\n%s",
			kernelID, source), nil
	}
	return fmt.Sprintf(
		"Code cell added. Kernel %s is alive but the streaming channel could not be opened, so the code was submitted without output capture.\n\nCode:\n%s",
		kernelID, source), nil
}

func parentMsgID(msg *model.KernelMessage) string {
	if len(msg.ParentHeader) == 0 {
		return ""
	}
	var parent model.MessageHeader
	if err := json.Unmarshal(msg.ParentHeader, &parent); err != nil {
		return ""
	}
	return parent.MsgID
}

func hasErrorOutput(outputs []model.Output) bool {
	for _, o := range outputs {
		if o.Type == model.OutputTypeError {
			return true
		}
	}
	return false
}
