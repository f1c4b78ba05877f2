package state

// Reduce applies one action to the viewport and reports whether the screen
// must be redrawn. Actions arriving after the session started exiting are
// ignored, and so is navigation before any page layout exists.
func Reduce(s *ViewportState, action Action) (redraw bool) {
	if s == nil || s.Session == Exiting {
		return false
	}

	switch action.(type) {
	case NextPageAction:
		if !s.laidOut() {
			return false
		}
		s.Offset = clampOffset(s.Offset+1, s.PageCount())
		return true
	case PrevPageAction:
		if !s.laidOut() {
			return false
		}
		s.Offset = clampOffset(s.Offset-1, s.PageCount())
		return true
	case ResizeAction:
		return true
	case QuitAction:
		s.Session = Exiting
		return false
	default:
		return false
	}
}
