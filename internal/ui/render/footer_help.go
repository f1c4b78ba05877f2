package render

import textutil "github.com/kk-code-lab/catter/internal/textutil"

var footerHelpSegments = []string{
	"j/↓: next page",
	"k/↑: previous page",
	"q: quit",
}

// buildFooterHelpText joins as many help segments as fit in width. When not
// even the first one fits, it is truncated with an ellipsis.
func buildFooterHelpText(width int) string {
	if width <= 0 {
		return ""
	}

	text := footerHelpSegments[0]
	for _, segment := range footerHelpSegments[1:] {
		candidate := text + "  " + segment
		if textutil.DisplayWidth(candidate) > width {
			break
		}
		text = candidate
	}
	return textutil.Truncate(text, width)
}
