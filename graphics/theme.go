package graphics

import "github.com/gdamore/tcell/v2"

// Theme is the color set for chrome drawn around game imagery
type Theme struct {
	Foreground tcell.Color
	Background tcell.Color
	Accent     tcell.Color
}

// DefaultTheme is a dark palette
func DefaultTheme() Theme {
	return Theme{
		Foreground: tcell.NewRGBColor(192, 202, 245),
		Background: tcell.NewRGBColor(26, 27, 38),
		Accent:     tcell.NewRGBColor(122, 162, 247),
	}
}

// Style returns the base foreground/background style
func (t Theme) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Background)
}

// AccentStyle returns the style for highlighted chrome
func (t Theme) AccentStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Accent).Background(t.Background).Bold(true)
}
