// ABOUTME: Shared lipgloss styles for CLI command output
// ABOUTME: Defines the color palette and status indicators used across commands

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(Muted)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)
)

// Feasibility renders a FEASIBLE or INFEASIBLE badge
func Feasibility(feasible bool) string {
	if feasible {
		return StatusOK.Render("FEASIBLE")
	}
	return StatusCritical.Render("INFEASIBLE")
}

// Severity renders a warning severity tag with matching color
func Severity(severity string) string {
	switch severity {
	case "critical":
		return StatusCritical.Render(severity)
	case "warning":
		return StatusWarning.Render(severity)
	default:
		return Label.Render(severity)
	}
}

// ProgressBar returns a styled utilization bar string
func ProgressBar(percent float64, width int) string {
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	color := Secondary
	if percent >= 80 {
		color = Warning
	}
	if percent >= 95 {
		color = Danger
	}

	return lipgloss.NewStyle().Foreground(color).Render(bar)
}
