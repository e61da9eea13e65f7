package render

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - heat, success
	colorYellow = lipgloss.Color("220") // Amber - stars
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// Heat levels, GitHub-style greens.
var heatColors = map[wrapped.Level]lipgloss.Color{
	wrapped.LevelEmpty: lipgloss.Color("236"),
	wrapped.LevelLow:   lipgloss.Color("22"),
	wrapped.LevelMed:   lipgloss.Color("28"),
	wrapped.LevelHigh:  lipgloss.Color("40"),
}

// Fixed language colors; anything else is hashed.
var languageColors = map[string]string{
	"JavaScript": "#f7df1e",
	"Python":     "#3776ab",
	"TypeScript": "#3178c6",
	"Go":         "#00add8",
	"Rust":       "#dea584",
}

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel    = lipgloss.NewStyle().Foreground(colorGray)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleStar     = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleEmpty    = lipgloss.NewStyle().Italic(true).Foreground(colorDim)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	stylePersona  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleBorder   = lipgloss.NewStyle().Foreground(colorDim)
	styleScoreBig = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

// LanguageColor returns a stable hex color for a language name.
func LanguageColor(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return hslToHex(float64(h.Sum32()%360), 0.70, 0.55)
}

func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return fmt.Sprintf("#%02x%02x%02x", int((r+m)*255+0.5), int((g+m)*255+0.5), int((b+m)*255+0.5))
}

// PersonaEmoji returns the badge shown next to a persona title.
func PersonaEmoji(persona string) string {
	switch persona {
	case "Code Wizard":
		return "✨"
	case "UI Master":
		return "🎨"
	case "Dev Ninja":
		return "⚡"
	default:
		return "🚀"
	}
}

// FormatInt formats n with thousands separators.
func FormatInt(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
