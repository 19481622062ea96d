package render_test

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/render"
)

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func TestSurfacePoint_Quadrants(t *testing.T) {
	const r = 10.0
	cases := []struct {
		name         string
		x2, y2       float64
		wantX, wantY float64
	}{
		{"right", 100, 0, r, 0},
		{"left", -100, 0, -r, 0},
		{"below", 0, 100, 0, r},
		{"above", 0, -100, 0, -r},
		{"diagonal", 100, 100, r / math.Sqrt2, r / math.Sqrt2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := render.SurfacePoint(0, 0, tc.x2, tc.y2, r)
			assert.InDelta(t, tc.wantX, x, 1e-9)
			assert.InDelta(t, tc.wantY, y, 1e-9)
			assert.InDelta(t, r, render.Distance(0, 0, x, y), 1e-9)
		})
	}
}

func TestSurfacePoint_Coincident(t *testing.T) {
	x, y := render.SurfacePoint(5, 7, 5, 7, 19)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 7.0, y)
}

func TestBuilder_EdgesCutAtSurfaces(t *testing.T) {
	var b render.Builder
	b.ClearScene()
	b.PlaceNode(0, 100, 100, 19, "a", "white")
	b.PlaceNode(1, 300, 100, 19, "b", "white")
	b.PlaceEdge(0, 1, "black", 2, true, "4, 7")
	b.PlaceEdge(0, 9, "black", 2, false, "") // 9 was never placed

	f := b.Frame()
	require.Len(t, f.Nodes, 2)
	require.Len(t, f.Edges, 1)
	e := f.Edges[0]
	assert.InDelta(t, 119, e.X1, 1e-9)
	assert.InDelta(t, 281, e.X2, 1e-9)
	assert.InDelta(t, 100, e.Y1, 1e-9)
	assert.True(t, e.Directed)
	assert.Equal(t, 1, b.Dropped())

	b.ClearScene()
	assert.Empty(t, b.Frame().Nodes)
	assert.Zero(t, b.Dropped())
}

func TestBuilder_ReplaceNode(t *testing.T) {
	var b render.Builder
	b.PlaceNode(3, 1, 1, 5, "x", "white")
	b.PlaceNode(3, 2, 2, 5, "x", "yellow")
	f := b.Frame()
	require.Len(t, f.Nodes, 1)
	assert.Equal(t, "yellow", f.Nodes[0].Fill)
}

func TestEncodeSVG(t *testing.T) {
	var b render.Builder
	b.PlaceNode(0, 50, 50, 19, "<A>", "lightBlue")
	b.PlaceNode(1, 150, 50, 19, "B", "white")
	b.PlaceEdge(0, 1, "black", 4, true, "3")

	var out bytes.Buffer
	require.NoError(t, render.EncodeSVG(&out, b.Frame(), render.DefaultSVGOptions()))
	doc := out.String()

	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))
	assert.Contains(t, doc, `width="800" height="600"`)
	assert.Contains(t, doc, `fill="lightBlue"`)
	assert.Contains(t, doc, `marker-end="url(#arrow)"`)
	assert.Contains(t, doc, `stroke-width="4"`)
	assert.Contains(t, doc, "&lt;A&gt;")
	assert.Equal(t, 2, strings.Count(doc, "<circle"))
}

func TestSVG_FlushPerFrame(t *testing.T) {
	var docs []*bytes.Buffer
	s := render.NewSVG(func(seq int) (io.WriteCloser, error) {
		buf := &bytes.Buffer{}
		docs = append(docs, buf)
		return nopCloser{buf}, nil
	}, render.DefaultSVGOptions())

	for i := 0; i < 3; i++ {
		s.ClearScene()
		s.PlaceNode(0, float64(20+i), 20, 19, "a", "white")
		require.NoError(t, s.Flush())
	}
	assert.Equal(t, 3, s.Frames())
	require.Len(t, docs, 3)
	assert.Contains(t, docs[2].String(), `cx="22.00"`)

	assert.ErrorIs(t, render.NewSVG(nil, render.DefaultSVGOptions()).Flush(), render.ErrNoSink)
}

func TestSVGDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	s, err := render.NewSVGDir(dir, render.DefaultSVGOptions())
	require.NoError(t, err)

	s.ClearScene()
	s.PlaceNode(0, 20, 20, 19, "a", "white")
	require.NoError(t, render.Flush(s))
	require.NoError(t, render.Flush(s))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "frame-00001.svg", entries[0].Name())
}

func TestRecorder(t *testing.T) {
	r := &render.Recorder{Keep: 2}
	for i := 0; i < 3; i++ {
		r.ClearScene()
		r.PlaceNode(i, 1, 1, 1, "", "white")
		require.NoError(t, render.Flush(r))
	}

	assert.Equal(t, int64(6), r.Calls())
	assert.Equal(t, int64(3), r.Clears())
	assert.Equal(t, int64(3), r.Flushes())
	frames := r.Frames()
	require.Len(t, frames, 2)
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, 2, last.Nodes[0].ID)
}

func TestFlush_NonFlusher(t *testing.T) {
	assert.NoError(t, render.Flush(&render.Builder{}))
}
