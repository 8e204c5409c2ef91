// Package model contains the persisted and wire representations used by the
// jmcp daemon: the nbformat v4 notebook document and the kernel channel
// messages exchanged with Jupyter Server.
package model

import (
	"encoding/json"
	"fmt"
)

// CellType identifies the kind of a notebook cell.
type CellType string

const (
	// CellTypeCode is an executable cell.
	CellTypeCode CellType = "code"
	// CellTypeMarkdown is a narrative cell.
	CellTypeMarkdown CellType = "markdown"
)

// Valid reports whether the cell type is one of the supported kinds.
func (t CellType) Valid() bool {
	return t == CellTypeCode || t == CellTypeMarkdown
}

// Notebook is an in-memory nbformat v4 document.
type Notebook struct {
	Cells         []*Cell          `json:"cells"`
	Metadata      NotebookMetadata `json:"metadata"`
	NBFormat      int              `json:"nbformat"`
	NBFormatMinor int              `json:"nbformat_minor"`
}

// NotebookMetadata holds the document-level metadata fields that the daemon
// reads. Unknown fields are preserved on load via Extra.
type NotebookMetadata struct {
	Kernelspec   *Kernelspec
	LanguageInfo *LanguageInfo

	// Extra carries document metadata written by other tools, round-tripped
	// untouched.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON decodes the known metadata fields and stashes everything else
// in Extra.
func (m *NotebookMetadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["kernelspec"]; ok {
		if err := json.Unmarshal(v, &m.Kernelspec); err != nil {
			return err
		}
		delete(raw, "kernelspec")
	}
	if v, ok := raw["language_info"]; ok {
		if err := json.Unmarshal(v, &m.LanguageInfo); err != nil {
			return err
		}
		delete(raw, "language_info")
	}
	if len(raw) > 0 {
		m.Extra = raw
	}
	return nil
}

// MarshalJSON re-emits the known fields alongside the preserved ones.
func (m NotebookMetadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+2)
	for k, v := range m.Extra {
		out[k] = v
	}
	if m.Kernelspec != nil {
		out["kernelspec"] = m.Kernelspec
	}
	if m.LanguageInfo != nil {
		out["language_info"] = m.LanguageInfo
	}
	return json.Marshal(out)
}

// Kernelspec names the kernel a notebook was authored against.
type Kernelspec struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Language    string `json:"language,omitempty"`
}

// LanguageInfo describes the language of the notebook's code cells.
type LanguageInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// NewNotebook returns an empty v4 document.
func NewNotebook() *Notebook {
	return &Notebook{
		Cells:         []*Cell{},
		NBFormat:      4,
		NBFormatMinor: 5,
	}
}

// Cell is one unit of a notebook document. Markdown cells never carry an
// execution count or outputs; the custom JSON codec below enforces the
// nbformat v4 shape for each kind.
type Cell struct {
	Type           CellType
	Source         string
	ExecutionCount *int
	Outputs        []Output
	Metadata       map[string]any
}

// NewCodeCell returns a code cell with empty outputs and no execution count.
func NewCodeCell(source string) *Cell {
	return &Cell{
		Type:     CellTypeCode,
		Source:   source,
		Outputs:  []Output{},
		Metadata: map[string]any{},
	}
}

// NewMarkdownCell returns a markdown cell.
func NewMarkdownCell(source string) *Cell {
	return &Cell{
		Type:     CellTypeMarkdown,
		Source:   source,
		Metadata: map[string]any{},
	}
}

// codeCellJSON is the on-disk shape of a code cell.
type codeCellJSON struct {
	CellType       CellType        `json:"cell_type"`
	Source         multilineString `json:"source"`
	Metadata       map[string]any  `json:"metadata"`
	ExecutionCount *int            `json:"execution_count"`
	Outputs        []Output        `json:"outputs"`
}

// markdownCellJSON is the on-disk shape of a markdown (or raw) cell.
type markdownCellJSON struct {
	CellType CellType        `json:"cell_type"`
	Source   multilineString `json:"source"`
	Metadata map[string]any  `json:"metadata"`
}

// MarshalJSON writes the nbformat v4 representation for the cell's kind.
func (c *Cell) MarshalJSON() ([]byte, error) {
	meta := c.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	if c.Type == CellTypeCode {
		outputs := c.Outputs
		if outputs == nil {
			outputs = []Output{}
		}
		return json.Marshal(codeCellJSON{
			CellType:       c.Type,
			Source:         multilineString(c.Source),
			Metadata:       meta,
			ExecutionCount: c.ExecutionCount,
			Outputs:        outputs,
		})
	}
	return json.Marshal(markdownCellJSON{
		CellType: c.Type,
		Source:   multilineString(c.Source),
		Metadata: meta,
	})
}

// UnmarshalJSON accepts both the string and line-array source encodings that
// nbformat permits.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw struct {
		CellType       CellType        `json:"cell_type"`
		Source         multilineString `json:"source"`
		Metadata       map[string]any  `json:"metadata"`
		ExecutionCount *int            `json:"execution_count"`
		Outputs        []Output        `json:"outputs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding cell: %w", err)
	}

	c.Type = raw.CellType
	c.Source = string(raw.Source)
	c.Metadata = raw.Metadata
	if c.Metadata == nil {
		c.Metadata = map[string]any{}
	}
	if raw.CellType == CellTypeCode {
		c.ExecutionCount = raw.ExecutionCount
		c.Outputs = raw.Outputs
		if c.Outputs == nil {
			c.Outputs = []Output{}
		}
	} else {
		c.ExecutionCount = nil
		c.Outputs = nil
	}
	return nil
}

// multilineString is a string that decodes from either a JSON string or an
// array of line strings, matching nbformat's source and text fields.
type multilineString string

func (m multilineString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *multilineString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = multilineString(s)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("source is neither string nor string array: %w", err)
	}
	joined := ""
	for _, l := range lines {
		joined += l
	}
	*m = multilineString(joined)
	return nil
}
