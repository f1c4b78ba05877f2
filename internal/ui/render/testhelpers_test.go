package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}

// screenRow returns row y of the simulated screen with trailing blanks removed.
func screenRow(scr tcell.SimulationScreen, y int) string {
	cells, w, _ := scr.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(cell.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func cellForeground(scr tcell.SimulationScreen, x, y int) tcell.Color {
	cells, w, _ := scr.GetContents()
	fg, _, _ := cells[y*w+x].Style.Decompose()
	return fg
}
