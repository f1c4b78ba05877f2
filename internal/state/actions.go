package state

// Action is the base interface for viewport mutations.
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NextPageAction struct{}
type PrevPageAction struct{}

// ===== SESSION ACTIONS =====

type QuitAction struct{}

// ===== VIEW ACTIONS =====

// ResizeAction only asks for a redraw; geometry always comes from a fresh
// size query at render time.
type ResizeAction struct{}
