package state

// Rows taken by the header and footer on every page.
const reservedRows = 2

// MinTerminalHeight is the smallest height that leaves room for at least one
// body row; anything lower is rendered as a "too small" notice.
const MinTerminalHeight = reservedRows + 1

// Geometry is the page layout for one frame.
type Geometry struct {
	TerminalHeight int
	LinesPerPage   int
	PageCount      int
	Offset         int // clamped page index
	Start          int // first visible line
	End            int // one past the last visible line
}

// ComputeGeometry lays out totalLines on a terminal terminalHeight rows high
// with the given page offset. It must be called for every frame with a
// freshly queried height: the terminal can be resized between frames and no
// resize subscription exists to invalidate a stored result.
func ComputeGeometry(totalLines, terminalHeight, offset int) Geometry {
	totalLines = max(totalLines, 0)
	linesPerPage := max(terminalHeight-reservedRows, 1)

	pageCount := (totalLines + linesPerPage - 1) / linesPerPage
	pageCount = max(pageCount, 1)

	offset = clampOffset(offset, pageCount)
	start := offset * linesPerPage
	end := start + linesPerPage
	if offset == pageCount-1 {
		end = totalLines
	}

	return Geometry{
		TerminalHeight: terminalHeight,
		LinesPerPage:   linesPerPage,
		PageCount:      pageCount,
		Offset:         offset,
		Start:          start,
		End:            end,
	}
}

// InitialOffset returns the page a session opens on: the first page, or the
// last one when startAtEnd is set. The last page comes from the same page
// count formula navigation uses.
func InitialOffset(totalLines, terminalHeight int, startAtEnd bool) int {
	if !startAtEnd {
		return 0
	}
	return ComputeGeometry(totalLines, terminalHeight, 0).PageCount - 1
}

// Degenerate reports whether the terminal is too short to show any line.
func (g Geometry) Degenerate() bool {
	return g.TerminalHeight < MinTerminalHeight
}

func clampOffset(offset, pageCount int) int {
	if offset > pageCount-1 {
		offset = pageCount - 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
