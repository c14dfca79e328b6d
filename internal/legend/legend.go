// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package legend renders a markdown legend for pie chart slices: a table of
// labels, colors, values and percents followed by a mermaid pie block.
package legend

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"piemarker/internal/markdown"
	"piemarker/internal/markdown/mermaid/piechart"
	"piemarker/internal/pie"
)

const (
	// defaultTitle is the heading used when no title is set.
	defaultTitle = "Legend"
	// unlabeled stands in for slices without a label.
	unlabeled = "-"
)

type config struct {
	// title is the document heading.
	title string
	// precision is the number of decimals shown for percents.
	precision int
	// mermaid adds a mermaid pie block after the table.
	mermaid bool
	// iconURL adds an image link to the rendered icon.
	iconURL string
}

func newConfig() *config {
	return &config{
		title:     defaultTitle,
		precision: 2,
		mermaid:   true,
	}
}

type Option func(*config)

func WithTitle(title string) Option {
	return func(c *config) {
		if title != "" {
			c.title = title
		}
	}
}

func WithPrecision(precision int) Option {
	return func(c *config) {
		if precision >= 0 {
			c.precision = precision
		}
	}
}

func WithMermaid(enabled bool) Option {
	return func(c *config) {
		c.mermaid = enabled
	}
}

func WithIconURL(url string) Option {
	return func(c *config) {
		c.iconURL = url
	}
}

type Legend struct {
	config *config
	slices []pie.SliceOutput
}

func New(slices []pie.SliceOutput, opts ...Option) *Legend {

	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}
	return &Legend{config: c, slices: slices}
}

// Render returns the legend document.
func (l *Legend) Render() (text string, err error) {

	var buf bytes.Buffer
	if _, err = l.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (l *Legend) WriteTo(w io.Writer) (n int64, err error) {

	cw := &countingWriter{w: w}
	md := markdown.NewMarkdown(cw)

	md.H1(l.config.title)
	if l.config.iconURL != "" {
		md.PlainText(markdown.Image(l.config.title, l.config.iconURL))
		md.LF()
	}

	if len(l.slices) == 0 {
		md.Note("The chart has no data.")
		err = md.Build()
		return cw.n, err
	}

	md.Table(l.table())
	if l.config.mermaid {
		md.LF()
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, l.chart())
		if empty := l.emptySlices(); empty > 0 {
			md.LF()
			md.Warning(fmt.Sprintf("%d slice(s) without value are not shown in the chart.", empty))
		}
	}

	if err = md.Build(); err != nil {
		return cw.n, fmt.Errorf("%s: %w", "failed to render legend", err)
	}
	return cw.n, nil
}

func (l *Legend) table() markdown.TableSet {

	rows := make([][]string, 0, len(l.slices))
	for _, s := range l.slices {
		rows = append(rows, []string{
			markdown.EscapeCell(labelOf(s)),
			markdown.Code(markdown.EscapeCell(s.Color)),
			strconv.FormatFloat(s.Value, 'f', -1, 64),
			pie.FormatNum(s.Percent, l.config.precision) + "%",
		})
	}
	return markdown.TableSet{
		Header:    []string{"Label", "Color", "Value", "Percent"},
		Rows:      rows,
		Alignment: []markdown.TableAlignment{markdown.AlignLeft, markdown.AlignLeft, markdown.AlignRight, markdown.AlignRight},
	}
}

func (l *Legend) chart() string {

	var colors []string
	for _, s := range l.slices {
		if s.Value > 0 {
			colors = append(colors, s.Color)
		}
	}
	chart := piechart.NewPieChart(io.Discard, piechart.WithShowData(true), piechart.WithColors(colors...))
	for _, s := range l.slices {
		if s.Value > 0 {
			chart.LabelAndValue(labelOf(s), s.Value)
		}
	}
	return chart.String()
}

func (l *Legend) emptySlices() (n int) {

	for _, s := range l.slices {
		if s.Value <= 0 {
			n++
		}
	}
	return n
}

func labelOf(s pie.SliceOutput) string {

	if s.Label == "" {
		return unlabeled
	}
	return s.Label
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {

	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
