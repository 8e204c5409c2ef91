package notebook

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/internal/fs"
	"github.com/JosephLin11/jupyter-mcp-server/src/jmcp/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

func newController(t *testing.T) (Controller, string) {
	t.Helper()
	c := New(Params{
		Logger: zap.NewNop().Sugar(),
		Stats:  tally.NewTestScope("", nil),
		FS:     fs.New(),
	})
	return c, filepath.Join(t.TempDir(), "test.ipynb")
}

func intPtr(i int) *int {
	return &i
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("new notebook gets intro cell", func(t *testing.T) {
		c, path := newController(t)
		require.NoError(t, c.Load(ctx, path))

		count, err := c.CellCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := c.ReadCell(ctx, 0)
		require.NoError(t, err)
		assert.Contains(t, got, "Type: markdown")

		// Freshly created documents are persisted immediately.
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("existing notebook round trip", func(t *testing.T) {
		c, path := newController(t)
		require.NoError(t, c.Load(ctx, path))
		require.NoError(t, c.InsertCell(ctx, nil, model.NewCodeCell("print('x')")))

		c2, _ := newController(t)
		require.NoError(t, c2.Load(ctx, path))
		count, err := c2.CellCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("corrupt notebook starts fresh", func(t *testing.T) {
		c, path := newController(t)
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
		require.NoError(t, c.Load(ctx, path))
		count, err := c.CellCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestNoActiveNotebook(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(t)

	_, err := c.ActivePath(ctx)
	assert.Error(t, err)
	assert.Error(t, c.Save(ctx))
	assert.Error(t, c.InsertCell(ctx, nil, model.NewCodeCell("x")))
	assert.Error(t, c.DeleteCell(ctx, 0))
	_, err = c.Export(ctx)
	assert.Error(t, err)
}

func TestInsertCell(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))

	t.Run("append when position nil", func(t *testing.T) {
		require.NoError(t, c.InsertCell(ctx, nil, model.NewCodeCell("a")))
		got, err := c.ReadCell(ctx, 1)
		require.NoError(t, err)
		assert.Contains(t, got, "Content: a")
	})

	t.Run("insert at position", func(t *testing.T) {
		require.NoError(t, c.InsertCell(ctx, intPtr(0), model.NewCodeCell("b")))
		got, err := c.ReadCell(ctx, 0)
		require.NoError(t, err)
		assert.Contains(t, got, "Content: b")
	})

	t.Run("out of range position appends", func(t *testing.T) {
		require.NoError(t, c.InsertCell(ctx, intPtr(99), model.NewCodeCell("c")))
		count, err := c.CellCount(ctx)
		require.NoError(t, err)
		got, err := c.ReadCell(ctx, count-1)
		require.NoError(t, err)
		assert.Contains(t, got, "Content: c")
	})
}

func TestDeleteCell(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))
	require.NoError(t, c.InsertCell(ctx, nil, model.NewCodeCell("keep")))

	require.NoError(t, c.DeleteCell(ctx, 0))
	count, err := c.CellCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Error(t, c.DeleteCell(ctx, 5))
	assert.Error(t, c.DeleteCell(ctx, -1))
}

func TestModifyCell(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))

	require.NoError(t, c.ModifyCell(ctx, 0, "updated"))
	got, err := c.ReadCell(ctx, 0)
	require.NoError(t, err)
	assert.Contains(t, got, "Content: updated")

	assert.Error(t, c.ModifyCell(ctx, 9, "x"))
}

func TestSetCellKind(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))

	code := model.NewCodeCell("1+1")
	code.ExecutionCount = intPtr(4)
	code.Outputs = []model.Output{model.NewStreamOutput("stdout", "2")}
	require.NoError(t, c.InsertCell(ctx, nil, code))

	t.Run("code to markdown drops outputs", func(t *testing.T) {
		require.NoError(t, c.SetCellKind(ctx, 1, model.CellTypeMarkdown))
		got, err := c.ReadCell(ctx, 1)
		require.NoError(t, err)
		assert.Contains(t, got, "Type: markdown")
		assert.Nil(t, code.Outputs)
		assert.Nil(t, code.ExecutionCount)
	})

	t.Run("markdown to code initializes outputs", func(t *testing.T) {
		require.NoError(t, c.SetCellKind(ctx, 1, model.CellTypeCode))
		assert.NotNil(t, code.Outputs)
		assert.Len(t, code.Outputs, 0)
	})

	t.Run("invalid kind", func(t *testing.T) {
		assert.Error(t, c.SetCellKind(ctx, 1, model.CellType("raw")))
	})
}

func TestMoveCell(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))
	require.NoError(t, c.Clear(ctx, "a", model.CellTypeCode))
	require.NoError(t, c.InsertCell(ctx, nil, model.NewCodeCell("b")))
	require.NoError(t, c.InsertCell(ctx, nil, model.NewCodeCell("c")))

	require.NoError(t, c.MoveCell(ctx, 0, 2))
	got, err := c.ReadCell(ctx, 2)
	require.NoError(t, err)
	assert.Contains(t, got, "Content: a")

	// Moving back restores the original order.
	require.NoError(t, c.MoveCell(ctx, 2, 0))
	got, err = c.ReadCell(ctx, 0)
	require.NoError(t, err)
	assert.Contains(t, got, "Content: a")

	assert.Error(t, c.MoveCell(ctx, 0, 9))
	assert.Error(t, c.MoveCell(ctx, 9, 0))
}

func TestOutOfRangeLeavesDocumentUnchanged(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))
	require.NoError(t, c.InsertCell(ctx, nil, model.NewCodeCell("1+1")))

	before, err := c.Export(ctx)
	require.NoError(t, err)

	assert.Error(t, c.DeleteCell(ctx, 5))
	assert.Error(t, c.DeleteCell(ctx, -1))
	assert.Error(t, c.ModifyCell(ctx, 5, "x"))
	assert.Error(t, c.MoveCell(ctx, 0, 9))
	assert.Error(t, c.MoveCell(ctx, 9, 0))
	assert.Error(t, c.SetCellKind(ctx, 5, model.CellTypeCode))

	after, err := c.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))
	require.NoError(t, c.InsertCell(ctx, nil, model.NewCodeCell("x")))

	require.NoError(t, c.Clear(ctx, "# Fresh", model.CellTypeMarkdown))
	count, err := c.CellCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := c.ReadCell(ctx, 0)
	require.NoError(t, err)
	assert.Contains(t, got, "Type: markdown")
	assert.Contains(t, got, "# Fresh")
}

func TestDescribe(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))
	require.NoError(t, c.InsertCell(ctx, nil, model.NewCodeCell("1")))

	got, err := c.Describe(ctx)
	require.NoError(t, err)
	assert.Contains(t, got, "Notebook Information:")
	assert.Contains(t, got, "- Total cells: 2\n")
	assert.Contains(t, got, "- Markdown cells: 1\n")
	assert.Contains(t, got, "- Code cells: 1\n")
	assert.Contains(t, got, "- Kernel: unknown\n")
}

func TestListCells(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))

	t.Run("empty notebook", func(t *testing.T) {
		require.NoError(t, c.Clear(ctx, "", model.CellTypeMarkdown))
		require.NoError(t, c.DeleteCell(ctx, 0))
		got, err := c.ListCells(ctx, 50)
		require.NoError(t, err)
		assert.Equal(t, "No cells in notebook", got)
	})

	t.Run("previews truncated", func(t *testing.T) {
		cell := model.NewCodeCell("0123456789")
		cell.ExecutionCount = intPtr(7)
		require.NoError(t, c.InsertCell(ctx, nil, cell))

		got, err := c.ListCells(ctx, 4)
		require.NoError(t, err)
		assert.Contains(t, got, "Notebook cells (1 total):")
		assert.Contains(t, got, `Content: "0123..."`)
		assert.Contains(t, got, "Execution count: 7")
	})
}

func TestTextOutputs(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))

	t.Run("markdown cell has no outputs", func(t *testing.T) {
		got, err := c.TextOutputs(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "No outputs found for this cell", got)
	})

	t.Run("single text output", func(t *testing.T) {
		cell := model.NewCodeCell("print('hi')")
		cell.Outputs = []model.Output{model.NewStreamOutput("stdout", "hi\n")}
		require.NoError(t, c.InsertCell(ctx, nil, cell))

		got, err := c.TextOutputs(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Text outputs for cell 1:\nhi\n", got)
	})

	t.Run("image only outputs", func(t *testing.T) {
		cell := model.NewCodeCell("plot()")
		cell.Outputs = []model.Output{model.NewDisplayDataOutput(map[string]any{model.MimeImagePNG: "abc"}, nil)}
		require.NoError(t, c.InsertCell(ctx, nil, cell))

		got, err := c.TextOutputs(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "No text outputs found in cell 2", got)
	})
}

func TestImageOutputs(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))

	cell := model.NewCodeCell("plot()")
	cell.Outputs = []model.Output{
		model.NewStreamOutput("stdout", "drawing\n"),
		model.NewDisplayDataOutput(map[string]any{model.MimeImagePNG: "cGF5bG9hZA=="}, nil),
	}
	require.NoError(t, c.InsertCell(ctx, nil, cell))

	got, err := c.ImageOutputs(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, got, "Found 1 image(s) in cell 1:")
	assert.Contains(t, got, "Image 1 (PNG):\ncGF5bG9hZA==")

	got, err = c.ImageOutputs(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "No outputs found for this cell", got)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	c, path := newController(t)
	require.NoError(t, c.Load(ctx, path))

	got, err := c.Export(ctx)
	require.NoError(t, err)

	var doc model.Notebook
	require.NoError(t, json.Unmarshal([]byte(got), &doc))
	assert.Equal(t, 4, doc.NBFormat)
	assert.Len(t, doc.Cells, 1)
}
