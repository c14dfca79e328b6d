// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package piechart is mermaid pie chart builder.
package piechart

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"piemarker/internal/markdown"
)

type PieChart struct {
	// body is pie chart body.
	body []string
	// dest is output destination for pie chart body.
	dest io.Writer
	// err manages errors that occur in all parts of the pie chart building.
	err error
	// config is the configuration for the pie chart.
	config *config
}

type initDirective struct {
	Pie struct {
		TextPosition float64 `json:"textPosition"`
	} `json:"pie"`
	ThemeVariables map[string]string `json:"themeVariables"`
}

func NewPieChart(w io.Writer, opts ...Option) *PieChart {

	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}

	p := &PieChart{dest: w, config: c}
	p.body = append(p.body, p.initLine())

	baseLine := "pie"
	if c.showData {
		baseLine += " showData"
	}
	p.body = append(p.body, baseLine)
	if c.title != "" {
		p.body = append(p.body, "    title "+c.title)
	}
	return p
}

func (p *PieChart) initLine() string {

	var directive initDirective
	directive.Pie.TextPosition = p.config.textPosition
	directive.ThemeVariables = map[string]string{"pieOuterStrokeWidth": outerStrokeWidth}
	for i, color := range p.config.colors {
		directive.ThemeVariables["pie"+strconv.Itoa(i+1)] = color
	}

	data, err := json.Marshal(directive)
	if err != nil {
		p.err = fmt.Errorf("failed to encode init directive: %w", err)
		return "%%{init: {}}%%"
	}
	return "%%{init: " + string(data) + "}%%"
}

func (p *PieChart) String() string {
	return strings.Join(p.body, markdown.LineFeed)
}

func (p *PieChart) Error() error {
	return p.err
}

func (p *PieChart) Build() error {

	if _, err := fmt.Fprint(p.dest, p.String()); err != nil {
		if p.err != nil {
			return fmt.Errorf("failed to write: %w: %s", err, p.err.Error())
		}
		return fmt.Errorf("failed to write: %w", err)
	}
	return p.err
}

// LabelAndValue adds a slice. Mermaid draws positive values only, callers skip the rest.
func (p *PieChart) LabelAndValue(label string, value float64) *PieChart {
	p.body = append(p.body, fmt.Sprintf("    %q : %s", escapeLabel(label), strconv.FormatFloat(value, 'f', -1, 64)))
	return p
}

func escapeLabel(label string) string {
	return strings.NewReplacer(`"`, "#quot;", "\n", " ").Replace(label)
}
