package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/catter/internal/document"
	statepkg "github.com/kk-code-lab/catter/internal/state"
	textutil "github.com/kk-code-lab/catter/internal/textutil"
)

// TooSmallMessage is shown instead of a page when the terminal cannot fit a
// header, a footer, and at least one line.
const TooSmallMessage = "Terminal is too small to display the file, resize the terminal or press q to quit"

// Renderer draws viewer pages onto a tcell screen.
type Renderer struct {
	screen   tcell.Screen
	theme    ColorTheme
	tabWidth int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, tabWidth int) *Renderer {
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}
	return &Renderer{
		screen:   screen,
		theme:    GetColorTheme(),
		tabWidth: tabWidth,
	}
}

// Render redraws the whole screen for the page described by view.Geometry.
// The header, body, and footer are each flushed as they are completed so a
// slow terminal never shows a half-written group.
func (r *Renderer) Render(doc document.Document, view *statepkg.ViewportState) {
	r.screen.Clear()
	r.screen.Show()

	w, _ := r.screen.Size()
	g := view.Geometry
	if g.Degenerate() {
		r.drawWrapped(TooSmallMessage, w, g.TerminalHeight, tcell.StyleDefault.Foreground(r.theme.NoticeFg))
		r.screen.Show()
		return
	}

	r.drawHeader(g, w)
	r.screen.Show()

	r.drawBody(doc, g, w)
	r.screen.Show()

	r.drawFooter(w, g.TerminalHeight)
	r.screen.Show()
}

func (r *Renderer) drawHeader(g statepkg.Geometry, w int) {
	style := tcell.StyleDefault.Foreground(r.theme.HeaderFg)
	text := fmt.Sprintf("Page %d of %d", g.Offset+1, g.PageCount)
	r.drawTextLine(0, 0, w, textutil.Truncate(text, w), style)
}

func (r *Renderer) drawBody(doc document.Document, g statepkg.Geometry, w int) {
	style := tcell.StyleDefault.Foreground(r.theme.BodyFg)
	for i, line := range doc.Slice(g.Start, g.End) {
		r.drawTextLine(0, i+1, w, textutil.SanitizeLine(line, r.tabWidth), style)
	}
}

func (r *Renderer) drawFooter(w, h int) {
	style := tcell.StyleDefault.Foreground(r.theme.FooterFg)
	r.drawTextLine(0, h-1, w, buildFooterHelpText(w), style)
}
