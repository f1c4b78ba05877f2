package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// drawTextLine draws text from startX on row y, one grapheme cluster per
// cell, stopping before maxWidth columns are exceeded. It returns the column
// after the last drawn cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := max(g.Width(), 1)
		if x-startX+w > maxWidth {
			break
		}
		runes := g.Runes()
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

// drawWrapped draws text across rows [0, rows), breaking it wherever the
// width runs out.
func (r *Renderer) drawWrapped(text string, width, rows int, style tcell.Style) {
	if width <= 0 {
		return
	}
	x, y := 0, 0
	g := uniseg.NewGraphemes(text)
	for g.Next() && y < rows {
		w := max(g.Width(), 1)
		if x+w > width {
			x = 0
			y++
			if y >= rows {
				return
			}
		}
		runes := g.Runes()
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
