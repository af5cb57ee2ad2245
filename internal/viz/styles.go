package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	tableStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent)
}

func barStyle(transformed bool) lipgloss.Style {
	if transformed {
		return lipgloss.NewStyle().Foreground(CurrentTheme.Transformed)
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme.Original)
}

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent)
}

func statusStyle(running bool) lipgloss.Style {
	if running {
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Success)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Warning)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Error)
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	if frame < 0 {
		frame = -frame
	}
	return spinners[frame%len(spinners)]
}

// ProgressBar renders a bar filled to percent of width.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.8 {
		return SparkHigh.Render(bar)
	} else if percent > 0.4 {
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline maps each value to a block character, one per value, without color.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	out := make([]rune, len(values))
	for i, v := range values {
		idx := int((v - min) / rng * float64(len(sparkChars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		out[i] = sparkChars[idx]
	}
	return string(out)
}

// SparklineChart renders a colored sparkline, sampling values to fit width.
func SparklineChart(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}
	sampled := make([]float64, 0, width)
	for i := 0; i < width && i*step < len(values); i++ {
		sampled = append(sampled, values[i*step])
	}

	var result strings.Builder
	for _, c := range Sparkline(sampled) {
		norm := float64(indexOfRune(sparkChars, c)) / float64(len(sparkChars)-1)
		switch {
		case norm > 0.7:
			result.WriteString(SparkHigh.Render(string(c)))
		case norm > 0.3:
			result.WriteString(SparkMid.Render(string(c)))
		default:
			result.WriteString(SparkLow.Render(string(c)))
		}
	}
	return result.String()
}

func indexOfRune(rs []rune, r rune) int {
	for i, x := range rs {
		if x == r {
			return i
		}
	}
	return 0
}

// Separator draws a decorative rule of the given width.
func Separator(width int) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(left + " ◆ " + right)
}
