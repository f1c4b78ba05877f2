package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines viewer colors.
type ColorTheme struct {
	HeaderFg tcell.Color
	BodyFg   tcell.Color
	FooterFg tcell.Color
	NoticeFg tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderFg: tcell.ColorYellow,
		BodyFg:   tcell.ColorDefault,
		FooterFg: tcell.ColorYellow,
		NoticeFg: tcell.ColorDefault,
	}
}
