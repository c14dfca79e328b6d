// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package svg

import (
	"bytes"
	"fmt"
	"html"
	"io"

	svgo "github.com/ajstarks/svgo"
)

// WriteTo writes the surface as a standalone SVG document.
func (s *Surface) WriteTo(w io.Writer) (n int64, err error) {

	cw := &countingWriter{w: w}
	canvas := svgo.New(cw)
	canvas.Startraw(attrList(s.root.attrs)...)
	for _, child := range s.root.children {
		writeNode(canvas, child)
	}
	canvas.End()
	return cw.n, cw.err
}

// Markup returns the SVG document as a string.
func (s *Surface) Markup() string {

	var buf bytes.Buffer
	_, _ = s.WriteTo(&buf)
	return buf.String()
}

func writeNode(canvas *svgo.SVG, n *Node) {

	switch n.name {
	case ElementGroup:
		canvas.Group(attrList(n.attrs)...)
		for _, child := range n.children {
			writeNode(canvas, child)
		}
		canvas.Gend()
	case ElementPath:
		d, _ := n.Attr("d")
		var rest []Attr
		for _, a := range n.attrs {
			if a.Name != "d" {
				rest = append(rest, a)
			}
		}
		canvas.Path(d, attrList(rest)...)
	default:
		writeGeneric(canvas.Writer, n)
	}
}

// writeGeneric covers element kinds svgo has no dedicated call for.
func writeGeneric(w io.Writer, n *Node) {

	fmt.Fprintf(w, "<%s", n.name)
	for _, a := range attrList(n.attrs) {
		fmt.Fprintf(w, " %s", a)
	}
	if len(n.children) == 0 {
		fmt.Fprint(w, "/>\n")
		return
	}
	fmt.Fprint(w, ">\n")
	for _, child := range n.children {
		writeGeneric(w, child)
	}
	fmt.Fprintf(w, "</%s>\n", n.name)
}

// attrList renders attributes as name="value" pairs, the form svgo passes through verbatim.
func attrList(attrs []Attr) []string {

	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, fmt.Sprintf(`%s="%s"`, a.Name, html.EscapeString(a.Value)))
	}
	return out
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {

	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
