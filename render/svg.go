package render

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoSink is returned by Flush when an SVG has no frame opener.
var ErrNoSink = errors.New("render: svg sink has no output")

// SVGOptions controls the document envelope.
type SVGOptions struct {
	Width      float64
	Height     float64
	Background string
}

// DefaultSVGOptions matches the default canvas: 800×600 on white.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 800, Height: 600, Background: "white"}
}

// EncodeSVG writes f as a standalone SVG document.
// Edges are drawn under the nodes; directed edges end in an arrow marker.
func EncodeSVG(w io.Writer, f Frame, opts SVGOptions) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%g" height="%g" viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">
<rect width="%g" height="%g" fill="%s" stroke="black" stroke-width="10"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Width, opts.Height, html.EscapeString(opts.Background))

	buf.WriteString(`<defs>
  <marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5"
      markerWidth="6" markerHeight="6" orient="auto-start-reverse">
    <path d="M0,0 L10,5 L0,10 z" fill="black"/>
  </marker>
</defs>
`)

	for _, e := range f.Edges {
		marker := ""
		if e.Directed {
			marker = ` marker-end="url(#arrow)"`
		}
		fmt.Fprintf(&buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%g"%s/>
`, e.X1, e.Y1, e.X2, e.Y2, html.EscapeString(e.Stroke), e.Width, marker)

		if e.Label != "" {
			fmt.Fprintf(&buf, `<text x="%.2f" y="%.2f" font-family="sans-serif" font-size="12" text-anchor="middle">%s</text>
`, (e.X1+e.X2)/2, (e.Y1+e.Y2)/2-4, html.EscapeString(e.Label))
		}
	}

	for _, n := range f.Nodes {
		fmt.Fprintf(&buf, `<circle cx="%.2f" cy="%.2f" r="%g" fill="%s" stroke-width="2" stroke="black"/>
<text x="%.2f" y="%.2f" text-anchor="middle" alignment-baseline="middle" stroke="#000">%s</text>
`, n.X, n.Y, n.Radius, html.EscapeString(n.Fill), n.X, n.Y, html.EscapeString(n.Label))
	}

	buf.WriteString("</svg>\n")
	_, err := w.Write(buf.Bytes())

	return err
}

// SVG is a Renderer that encodes every flushed frame as its own document.
type SVG struct {
	Builder

	opts SVGOptions
	open func(seq int) (io.WriteCloser, error)

	mu  sync.Mutex
	seq int
}

// NewSVG returns an SVG sink; open is called once per flushed frame with
// a 1-based sequence number.
func NewSVG(open func(seq int) (io.WriteCloser, error), opts SVGOptions) *SVG {
	return &SVG{opts: opts, open: open}
}

// NewSVGDir writes frames as dir/frame-00001.svg, dir/frame-00002.svg, ...
func NewSVGDir(dir string, opts SVGOptions) (*SVG, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: creating frame dir: %w", err)
	}

	return NewSVG(func(seq int) (io.WriteCloser, error) {
		return os.Create(filepath.Join(dir, fmt.Sprintf("frame-%05d.svg", seq)))
	}, opts), nil
}

// Flush encodes the current frame to a newly opened output.
func (s *SVG) Flush() error {
	if s.open == nil {
		return ErrNoSink
	}
	frame := s.Frame()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	wc, err := s.open(s.seq)
	if err != nil {
		return fmt.Errorf("render: opening frame %d: %w", s.seq, err)
	}
	bw := bufio.NewWriter(wc)
	if err = EncodeSVG(bw, frame, s.opts); err == nil {
		err = bw.Flush()
	}
	if cerr := wc.Close(); err == nil {
		err = cerr
	}

	return err
}

// Frames reports how many frames were flushed.
func (s *SVG) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seq
}
