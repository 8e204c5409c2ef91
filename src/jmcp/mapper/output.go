package mapper

import (
	"fmt"
	"strings"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
)

// Placeholders substituted for image payloads in textual projections.
const (
	imagePlaceholderPNG  = "[Image Output (PNG)]"
	imagePlaceholderJPEG = "[Image Output (JPEG)]"
)

// OutputProjections returns the textual projections of one output, in the
// order they would be shown to the caller. Image payloads are replaced with
// placeholder markers rather than inlined.
func OutputProjections(o model.Output) []string {
	switch o.Type {
	case model.OutputTypeStream:
		return []string{o.Text}
	case model.OutputTypeExecuteResult, model.OutputTypeDisplayData:
		var out []string
		if text := o.TextPlain(); text != "" {
			out = append(out, text)
		}
		if _, ok := o.Data[model.MimeImagePNG]; ok {
			out = append(out, imagePlaceholderPNG)
		}
		if _, ok := o.Data[model.MimeImageJPEG]; ok {
			out = append(out, imagePlaceholderJPEG)
		}
		return out
	case model.OutputTypeError:
		return []string{
			fmt.Sprintf("Error: %s", o.EName),
			fmt.Sprintf("Message: %s", o.EValue),
		}
	default:
		return nil
	}
}

// OutputsToTranscript assembles the human-readable transcript of one
// execution: the execution index, the submitted source, and the concatenated
// textual projections of every output.
func OutputsToTranscript(code string, executionCount *int, outputs []model.Output) string {
	var b strings.Builder
	if executionCount != nil {
		fmt.Fprintf(&b, "In [%d]: %s\n\n", *executionCount, code)
	}

	var projections []string
	for _, o := range outputs {
		projections = append(projections, OutputProjections(o)...)
	}

	if len(projections) > 0 {
		b.WriteString("Output:\n")
		b.WriteString(strings.Join(projections, "\n"))
	} else {
		b.WriteString("Code executed successfully (no output)")
	}
	return b.String()
}

// OutputToText returns the full text projection of one output for the
// cell-text-output view. Unlike the transcript projection, error outputs
// include their traceback.
func OutputToText(o model.Output) (string, bool) {
	switch o.Type {
	case model.OutputTypeStream:
		return o.Text, true
	case model.OutputTypeExecuteResult, model.OutputTypeDisplayData:
		if text := o.TextPlain(); text != "" {
			return text, true
		}
		return "", false
	case model.OutputTypeError:
		var b strings.Builder
		fmt.Fprintf(&b, "Error: %s\n", o.EName)
		fmt.Fprintf(&b, "Message: %s\n", o.EValue)
		if len(o.Traceback) > 0 {
			b.WriteString("Traceback:\n")
			b.WriteString(strings.Join(o.Traceback, "\n"))
		}
		return b.String(), true
	default:
		return "", false
	}
}

// CellPreview truncates cell source to the given length for listings.
func CellPreview(source string, previewLength int) string {
	if previewLength <= 0 || len(source) <= previewLength {
		return source
	}
	return source[:previewLength] + "..."
}
