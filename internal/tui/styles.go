package tui

import "github.com/charmbracelet/lipgloss"

// MinLeftWidth is the minimum character width for the contact list pane.
const MinLeftWidth = 24

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// TitleStyle renders pane and screen titles.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

// FlashStyle renders the transient status line.
func FlashStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
}

// ErrorStyle renders validation failures inside the form.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
}

// UpcomingMark flags contacts whose birthday falls inside the configured window.
func UpcomingMark() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}).
		Render(" *")
}

// PaneWidths calculates the list and detail pane widths from a total width.
// The list gets 1/3 (minimum MinLeftWidth), the detail pane gets the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 3
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}
