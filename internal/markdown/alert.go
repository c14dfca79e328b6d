// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import "fmt"

func (m *Markdown) Note(text string) *Markdown {
	m.body = append(m.body, fmt.Sprintf("> [!NOTE]  %s> %s", LineFeed, text))
	return m
}

func (m *Markdown) Warning(text string) *Markdown {
	m.body = append(m.body, fmt.Sprintf("> [!WARNING]  %s> %s", LineFeed, text))
	return m
}
