package tui

import (
	"fmt"
	"strings"
)

// confirmState holds the data for the delete confirmation screen.
type confirmState struct {
	name string
}

// View renders the confirmation screen.
func (cs confirmState) View() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Remove contact %q?\n", cs.name)
	sb.WriteString("\nThe contact and all its phones and birthday are dropped from this session.")
	sb.WriteString("\n\n  [Enter] Confirm   [Esc] Cancel")
	return sb.String()
}
