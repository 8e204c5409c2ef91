package model

import (
	"encoding/json"
	"fmt"
)

// OutputType discriminates the nbformat output variants.
type OutputType string

const (
	// OutputTypeStream is stdout/stderr text produced during execution.
	OutputTypeStream OutputType = "stream"
	// OutputTypeExecuteResult is the value of the final expression.
	OutputTypeExecuteResult OutputType = "execute_result"
	// OutputTypeDisplayData is rich output published via display().
	OutputTypeDisplayData OutputType = "display_data"
	// OutputTypeError is a raised exception.
	OutputTypeError OutputType = "error"
)

// MIME types the daemon projects into text and image views.
const (
	MimeTextPlain = "text/plain"
	MimeImagePNG  = "image/png"
	MimeImageJPEG = "image/jpeg"
)

// Output is one event produced during a code execution. Exactly one variant's
// fields are populated, selected by Type. Outputs are immutable once attached
// to a cell; re-execution replaces them wholesale.
type Output struct {
	Type OutputType

	// stream
	Name string
	Text string

	// execute_result, display_data
	ExecutionCount *int
	Data           map[string]any
	Metadata       map[string]any

	// error
	EName     string
	EValue    string
	Traceback []string
}

// NewStreamOutput returns a stream output for the named channel.
func NewStreamOutput(name, text string) Output {
	return Output{Type: OutputTypeStream, Name: name, Text: text}
}

// NewExecuteResultOutput returns an execute_result output.
func NewExecuteResultOutput(count *int, data, metadata map[string]any) Output {
	return Output{Type: OutputTypeExecuteResult, ExecutionCount: count, Data: data, Metadata: metadata}
}

// NewDisplayDataOutput returns a display_data output.
func NewDisplayDataOutput(data, metadata map[string]any) Output {
	return Output{Type: OutputTypeDisplayData, Data: data, Metadata: metadata}
}

// NewErrorOutput returns an error output.
func NewErrorOutput(ename, evalue string, traceback []string) Output {
	return Output{Type: OutputTypeError, EName: ename, EValue: evalue, Traceback: traceback}
}

// TextPlain returns the text/plain projection of a rich output's data map,
// tolerating the line-array encoding, or "" if absent.
func (o Output) TextPlain() string {
	return mimeText(o.Data, MimeTextPlain)
}

// mimeText extracts a string-valued mime entry, joining line arrays.
func mimeText(data map[string]any, mime string) string {
	v, ok := data[mime]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []any:
		joined := ""
		for _, line := range t {
			if s, ok := line.(string); ok {
				joined += s
			}
		}
		return joined
	default:
		return ""
	}
}

type streamOutputJSON struct {
	OutputType OutputType      `json:"output_type"`
	Name       string          `json:"name"`
	Text       multilineString `json:"text"`
}

type executeResultJSON struct {
	OutputType     OutputType     `json:"output_type"`
	ExecutionCount *int           `json:"execution_count"`
	Data           map[string]any `json:"data"`
	Metadata       map[string]any `json:"metadata"`
}

type displayDataJSON struct {
	OutputType OutputType     `json:"output_type"`
	Data       map[string]any `json:"data"`
	Metadata   map[string]any `json:"metadata"`
}

type errorOutputJSON struct {
	OutputType OutputType `json:"output_type"`
	EName      string     `json:"ename"`
	EValue     string     `json:"evalue"`
	Traceback  []string   `json:"traceback"`
}

// MarshalJSON writes the nbformat shape for the output's variant.
func (o Output) MarshalJSON() ([]byte, error) {
	switch o.Type {
	case OutputTypeStream:
		return json.Marshal(streamOutputJSON{OutputType: o.Type, Name: o.Name, Text: multilineString(o.Text)})
	case OutputTypeExecuteResult:
		return json.Marshal(executeResultJSON{OutputType: o.Type, ExecutionCount: o.ExecutionCount, Data: orEmpty(o.Data), Metadata: orEmpty(o.Metadata)})
	case OutputTypeDisplayData:
		return json.Marshal(displayDataJSON{OutputType: o.Type, Data: orEmpty(o.Data), Metadata: orEmpty(o.Metadata)})
	case OutputTypeError:
		tb := o.Traceback
		if tb == nil {
			tb = []string{}
		}
		return json.Marshal(errorOutputJSON{OutputType: o.Type, EName: o.EName, EValue: o.EValue, Traceback: tb})
	default:
		return nil, fmt.Errorf("unknown output type %q", o.Type)
	}
}

// UnmarshalJSON decodes one output by its output_type tag. Unknown tags are
// rejected so that malformed documents surface at the boundary.
func (o *Output) UnmarshalJSON(data []byte) error {
	var tag struct {
		OutputType OutputType `json:"output_type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("decoding output tag: %w", err)
	}

	switch tag.OutputType {
	case OutputTypeStream:
		var raw streamOutputJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*o = Output{Type: raw.OutputType, Name: raw.Name, Text: string(raw.Text)}
	case OutputTypeExecuteResult:
		var raw executeResultJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*o = Output{Type: raw.OutputType, ExecutionCount: raw.ExecutionCount, Data: raw.Data, Metadata: raw.Metadata}
	case OutputTypeDisplayData:
		var raw displayDataJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*o = Output{Type: raw.OutputType, Data: raw.Data, Metadata: raw.Metadata}
	case OutputTypeError:
		var raw errorOutputJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*o = Output{Type: raw.OutputType, EName: raw.EName, EValue: raw.EValue, Traceback: raw.Traceback}
	default:
		return fmt.Errorf("unknown output type %q", tag.OutputType)
	}
	return nil
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
