package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitle centers the configured title across the screen.
func renderTitle(m *Model) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		titleStyle.Render(truncate(m.cfg.Title, m.width)))
}

// renderInputRow draws the text field and the Add Task control on one
// line, at the columns hitTest expects.
func renderInputRow(m *Model) string {
	style := inputFieldStyle
	if m.focus == FocusInput {
		style = inputFieldFocusedStyle
	}

	w := fieldWidth(m.width)
	field := style.Width(w).MaxWidth(w).Render(m.input.View())
	button := addButtonStyle.Render(addLabel)

	return strings.Repeat(" ", sidePad) + field + " " + button
}
