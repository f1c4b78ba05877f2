package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces up to the next tab stop.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		if ru != '\t' {
			builder.WriteRune(ru)
			column += max(runewidth.RuneWidth(ru), 1)
			continue
		}
		spaces := tabWidth - column%tabWidth
		builder.WriteString(strings.Repeat(" ", spaces))
		column += spaces
	}
	return builder.String()
}

// DisplayWidth reports how many terminal columns text occupies. Grapheme
// clusters (emoji sequences, flags, combining marks) count as one unit.
func DisplayWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate shortens text to fit width columns, marking the cut with an
// ellipsis. Clusters are never split.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}

	const ellipsis = "…"
	if width == 1 {
		return ellipsis
	}

	budget := width - 1
	used, end := 0, 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if used+w > budget {
			break
		}
		used += w
		_, end = g.Positions()
	}
	return text[:end] + ellipsis
}
