// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"fmt"
	"strings"
)

func Image(text, url string) string {
	return fmt.Sprintf("![%s](%s)", text, url)
}

func Code(text string) string {
	return fmt.Sprintf("`%s`", text)
}

// EscapeCell makes text safe to put into a pipe table cell.
func EscapeCell(text string) string {
	return strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ").Replace(text)
}
