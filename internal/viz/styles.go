package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	chartStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	// Status indicators
	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusStopped = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	StatusDone = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
)

// GradientText blends each rune from start to end in Lab space.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(string(start))
	b, errB := colorful.Hex(string(end))
	if errA != nil || errB != nil {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}

	var out strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := a.BlendLab(b, t).Clamped()
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return out.String()
}

var spinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// AnimatedSpinner is the spinner glyph for tick number frame.
func AnimatedSpinner(frame int) string { return spinner[frame%len(spinner)] }

// ProgressBar renders fraction (clamped to [0,1]) as a bar whose filled
// part is drawn in fill.
func ProgressBar(fraction float64, width int, fill lipgloss.Color) string {
	n := int(fraction*float64(width) + 0.5)
	n = max(0, min(n, width))
	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("━", n)) +
		hintStyle.Render(strings.Repeat("─", width-n))
}

// KeyHints renders "key action" pairs on one line.
func KeyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(hintStyle.Render("  "))
		}
		b.WriteString(keyStyle.Render(pairs[i]))
		b.WriteString(hintStyle.Render(" " + pairs[i+1]))
	}
	return b.String()
}
