package app

import (
	"github.com/kk-code-lab/catter/internal/config"
	"github.com/kk-code-lab/catter/internal/document"
)

// Mode is how a document is presented.
type Mode int

const (
	LineCountOnly Mode = iota
	PlainPrint
	Interactive
)

func (m Mode) String() string {
	switch m {
	case LineCountOnly:
		return "line-count"
	case PlainPrint:
		return "plain"
	case Interactive:
		return "interactive"
	default:
		return "unknown"
	}
}

// SelectMode picks the presentation for doc. Content shorter than the
// terminal is printed directly and never enters the alternate screen.
func SelectMode(doc document.Document, cfg config.ViewerConfig, terminalHeight int) Mode {
	switch {
	case cfg.LineCountOnly:
		return LineCountOnly
	case doc.LineCount() < terminalHeight || cfg.ForceInline:
		return PlainPrint
	default:
		return Interactive
	}
}
