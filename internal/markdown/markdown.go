// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package markdown is a small markdown document builder.
package markdown

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// LineFeed separates document blocks.
const LineFeed = "\n"

type SyntaxHighlight string

const (
	SyntaxHighlightNone    SyntaxHighlight = ""
	SyntaxHighlightJSON    SyntaxHighlight = "json"
	SyntaxHighlightYAML    SyntaxHighlight = "yaml"
	SyntaxHighlightXML     SyntaxHighlight = "xml"
	SyntaxHighlightMermaid SyntaxHighlight = "mermaid"
)

type Markdown struct {
	body []string
	dest io.Writer
	err  error
}

func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{
		body: []string{},
		dest: w,
	}
}

func (m *Markdown) String() string {
	return strings.Join(m.body, LineFeed)
}

// Error returns the first problem met while building.
func (m *Markdown) Error() error {
	return m.err
}

func (m *Markdown) Build() error {

	if _, err := fmt.Fprint(m.dest, m.String()); err != nil {
		return errors.Join(fmt.Errorf("failed to write markdown text: %w", err), m.err)
	}
	return m.err
}

func (m *Markdown) PlainText(text string) *Markdown {
	m.body = append(m.body, text)
	return m
}

func (m *Markdown) PlainTextf(format string, args ...any) *Markdown {
	return m.PlainText(fmt.Sprintf(format, args...))
}

func (m *Markdown) H1(text string) *Markdown {
	m.body = append(m.body, "# "+text)
	return m
}

func (m *Markdown) H2(text string) *Markdown {
	m.body = append(m.body, "## "+text)
	return m
}

func (m *Markdown) BulletList(text ...string) *Markdown {
	for _, v := range text {
		m.body = append(m.body, "- "+v)
	}
	return m
}

func (m *Markdown) CodeBlocks(lang SyntaxHighlight, text string) *Markdown {
	m.body = append(m.body, fmt.Sprintf("```%s%s%s%s```", lang, LineFeed, text, LineFeed))
	return m
}

// LF adds an empty block.
func (m *Markdown) LF() *Markdown {
	m.body = append(m.body, "")
	return m
}

type TableAlignment int

const (
	AlignDefault TableAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

type TableSet struct {
	Header    []string
	Rows      [][]string
	Alignment []TableAlignment
}

func (t *TableSet) ValidateColumns() error {

	headerColumns := len(t.Header)
	for _, record := range t.Rows {
		if len(record) != headerColumns {
			return ErrMismatchColumn
		}
	}
	return nil
}

func (t *TableSet) columnAlignment() []tw.Align {

	aligns := make([]tw.Align, len(t.Header))
	for i := range aligns {
		aligns[i] = tw.AlignNone
		if i >= len(t.Alignment) {
			continue
		}
		switch t.Alignment[i] {
		case AlignLeft:
			aligns[i] = tw.AlignLeft
		case AlignCenter:
			aligns[i] = tw.AlignCenter
		case AlignRight:
			aligns[i] = tw.AlignRight
		}
	}
	return aligns
}

// Table renders t as a pipe table. Headers are kept as given.
func (m *Markdown) Table(t TableSet) *Markdown {

	if err := t.ValidateColumns(); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to validate columns: %w", err))
		return m
	}
	if len(t.Header) == 0 {
		return m
	}

	buf := &strings.Builder{}
	table := tablewriter.NewTable(
		buf,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(
				tw.Rendition{
					Symbols: tw.NewSymbolCustom("Markdown").
						WithHeaderLeft("|").
						WithHeaderRight("|").
						WithColumn("|").
						WithMidLeft("|").
						WithMidRight("|").
						WithCenter("|"),
					Borders: tw.Border{
						Left:   tw.On,
						Top:    tw.Off,
						Right:  tw.On,
						Bottom: tw.Off,
					},
				},
			),
		),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Fail},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap:   tw.WrapNone,
					AutoFormat: tw.Fail,
				},
				Alignment: tw.CellAlignment{Global: tw.AlignNone, PerColumn: t.columnAlignment()},
			},
		}),
	)

	table.Header(t.Header)
	if err := table.Bulk(t.Rows); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to add rows to table: %w", err))
		return m
	}
	if err := table.Render(); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to render table: %w", err))
		return m
	}

	m.body = append(m.body, strings.TrimRight(buf.String(), LineFeed))
	return m
}
