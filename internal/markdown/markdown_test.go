// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"errors"
	"strings"
	"testing"
)

func TestMarkdown_blocks(t *testing.T) {

	t.Parallel()

	var buf strings.Builder
	err := NewMarkdown(&buf).
		H1("Title").
		PlainTextf("%d slices", 2).
		BulletList("a", "b").
		CodeBlocks(SyntaxHighlightYAML, "k: v").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := "# Title\n2 slices\n- a\n- b\n```yaml\nk: v\n```"
	if got := buf.String(); got != want {
		t.Errorf("Build() wrote %q, want %q", got, want)
	}
}

func TestMarkdown_Table(t *testing.T) {

	t.Parallel()

	md := NewMarkdown(nil).Table(TableSet{
		Header:    []string{"Label", "Percent"},
		Rows:      [][]string{{"alpha", "25%"}, {"beta", "75%"}},
		Alignment: []TableAlignment{AlignLeft, AlignRight},
	})
	if err := md.Error(); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	got := md.String()
	lines := strings.Split(got, LineFeed)
	if len(lines) != 4 {
		t.Fatalf("table has %d lines, want 4:\n%s", len(lines), got)
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
			t.Errorf("line %d is not a pipe row: %q", i, line)
		}
	}
	for _, want := range []string{"Label", "alpha", "75%"} {
		if !strings.Contains(got, want) {
			t.Errorf("table does not contain %q:\n%s", want, got)
		}
	}
}

func TestMarkdown_TableMismatch(t *testing.T) {

	t.Parallel()

	md := NewMarkdown(nil).Table(TableSet{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"only one"}},
	})
	if !errors.Is(md.Error(), ErrMismatchColumn) {
		t.Errorf("Error() = %v, want %v", md.Error(), ErrMismatchColumn)
	}
	if md.String() != "" {
		t.Errorf("String() = %q, want empty", md.String())
	}
}

func TestEscapeCell(t *testing.T) {

	t.Parallel()

	if got := EscapeCell("a|b\nc"); got != `a\|b c` {
		t.Errorf("EscapeCell() = %q", got)
	}
}
