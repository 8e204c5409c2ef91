package model

import "encoding/json"

// Kernel message types exchanged on the channels websocket.
const (
	MsgTypeExecuteRequest = "execute_request"
	MsgTypeExecuteReply   = "execute_reply"
	MsgTypeExecuteResult  = "execute_result"
	MsgTypeStream         = "stream"
	MsgTypeDisplayData    = "display_data"
	MsgTypeError          = "error"
)

// KernelProtocolVersion is the Jupyter messaging protocol version stamped on
// outgoing headers.
const KernelProtocolVersion = "5.3"

// MessageHeader is the header block of a kernel channel message.
type MessageHeader struct {
	MsgID    string `json:"msg_id"`
	MsgType  string `json:"msg_type"`
	Session  string `json:"session"`
	Username string `json:"username,omitempty"`
	Version  string `json:"version,omitempty"`
}

// KernelMessage is one structured message on the channels websocket. Content
// is kind-specific and decoded lazily by msg_type.
type KernelMessage struct {
	Header       MessageHeader   `json:"header"`
	ParentHeader json.RawMessage `json:"parent_header,omitempty"`
	Metadata     map[string]any  `json:"metadata"`
	Content      json.RawMessage `json:"content"`
	Channel      string          `json:"channel,omitempty"`
}

// ExecuteRequestContent is the content block of an execute_request.
type ExecuteRequestContent struct {
	Code            string         `json:"code"`
	Silent          bool           `json:"silent"`
	StoreHistory    bool           `json:"store_history"`
	UserExpressions map[string]any `json:"user_expressions"`
	AllowStdin      bool           `json:"allow_stdin"`
	StopOnError     bool           `json:"stop_on_error"`
}

// ExecuteReplyContent is the terminal reply to an execute_request.
type ExecuteReplyContent struct {
	Status         string   `json:"status"`
	ExecutionCount *int     `json:"execution_count"`
	EName          string   `json:"ename,omitempty"`
	EValue         string   `json:"evalue,omitempty"`
	Traceback      []string `json:"traceback,omitempty"`
}

// StreamContent carries stdout/stderr text.
type StreamContent struct {
	Name string          `json:"name"`
	Text multilineString `json:"text"`
}

// ExecuteResultContent carries the value of the final expression.
type ExecuteResultContent struct {
	ExecutionCount *int           `json:"execution_count"`
	Data           map[string]any `json:"data"`
	Metadata       map[string]any `json:"metadata"`
}

// DisplayDataContent carries rich display output.
type DisplayDataContent struct {
	Data     map[string]any `json:"data"`
	Metadata map[string]any `json:"metadata"`
}

// ErrorContent carries a mid-stream execution error.
type ErrorContent struct {
	EName     string   `json:"ename"`
	EValue    string   `json:"evalue"`
	Traceback []string `json:"traceback"`
}

// KernelInfo is the REST representation of a kernel under /api/kernels.
type KernelInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ExecutionState string `json:"execution_state,omitempty"`
}
