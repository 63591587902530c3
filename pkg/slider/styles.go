package slider

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme collects the slider's visual knobs. Colors are hex strings so
// the gradient fill can blend between them.
type Theme struct {
	Active   lipgloss.Color // fill color (near end of the gradient)
	Peak     lipgloss.Color // far end of the gradient fill
	Inactive lipgloss.Color
	Thumb    lipgloss.Color
	Disabled lipgloss.Color
	Label    lipgloss.Color

	FillChar  string
	RailChar  string
	ThumbChar string

	// Gradient blends the fill from Active to Peak across the track.
	Gradient bool
}

// DefaultTheme returns the Dracula-flavored defaults.
func DefaultTheme() Theme {
	return Theme{
		Active:   lipgloss.Color("#BD93F9"),
		Peak:     lipgloss.Color("#FF79C6"),
		Inactive: lipgloss.Color("#44475A"),
		Thumb:    lipgloss.Color("#F8F8F2"),
		Disabled: lipgloss.Color("#6272A4"),
		Label:    lipgloss.Color("#BFBFBF"),

		FillChar:  "█",
		RailChar:  "░",
		ThumbChar: "●",

		Gradient: true,
	}
}

// fillColor returns the color for fill cell i of a span of n cells,
// blending toward Peak when the gradient is on.
func (t Theme) fillColor(i, n int) lipgloss.Color {
	if !t.Gradient || n <= 1 {
		return t.Active
	}
	from, err1 := colorful.Hex(string(t.Active))
	to, err2 := colorful.Hex(string(t.Peak))
	if err1 != nil || err2 != nil {
		return t.Active
	}
	frac := float64(i) / float64(n-1)
	return lipgloss.Color(from.BlendLuv(to, frac).Clamped().Hex())
}
