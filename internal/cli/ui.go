package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorRed    = lipgloss.Color("167") // Soft red - violations
	colorYellow = lipgloss.Color("220") // Amber - emphasis
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleSuccess for the all-clear marker line.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleFailure for the violation report header.
	styleFailure = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

	// styleViolation for the per-edge violation statement.
	styleViolation = lipgloss.NewStyle().Foreground(colorRed)

	// styleCount for the trailing summary count.
	styleCount = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)

	// styleDim for the static rule reference table.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)
