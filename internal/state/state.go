package state

// SessionState is the state of the input state machine.
type SessionState int

const (
	Running SessionState = iota
	Exiting
)

func (s SessionState) String() string {
	switch s {
	case Running:
		return "running"
	case Exiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// ViewportState is the single-owner mutable state of one interactive session.
// Geometry holds the values derived at the most recent render; it is never
// reused as a cache for the next frame.
type ViewportState struct {
	Offset   int
	Session  SessionState
	Geometry Geometry
}

// NewViewportState returns the state a session starts in.
func NewViewportState(offset int) *ViewportState {
	return &ViewportState{Offset: offset, Session: Running}
}

// ApplyGeometry records a freshly computed geometry and adopts its clamped
// offset, so a shrinking document view never leaves Offset past the last page.
func (s *ViewportState) ApplyGeometry(g Geometry) {
	s.Geometry = g
	s.Offset = g.Offset
}

// PageCount returns the page count of the last computed geometry, never less
// than one.
func (s *ViewportState) PageCount() int {
	return max(s.Geometry.PageCount, 1)
}

// laidOut reports whether a non-degenerate geometry was ever computed. Until
// then the page count is unknown and the offset cannot be clamped.
func (s *ViewportState) laidOut() bool {
	return s.Geometry.PageCount > 0
}

// Layout computes this frame's geometry for a terminal terminalHeight rows
// high. On a degenerate terminal no line window is computed: the offset and
// last known page count are kept so navigation and a later resize carry on
// from the same page.
func (s *ViewportState) Layout(totalLines, terminalHeight int) {
	if terminalHeight < MinTerminalHeight {
		s.Geometry.TerminalHeight = terminalHeight
		return
	}
	s.ApplyGeometry(ComputeGeometry(totalLines, terminalHeight, s.Offset))
}
