package tui

import (
	"fmt"
	"strings"
)

// renderTaskList renders the visible window of task rows, each as
// "N. text" followed by its Delete control.
func renderTaskList(m *Model) string {
	n := m.list.Len()
	if n == 0 {
		return strings.Repeat(" ", sidePad) +
			emptyStateStyle.Render(truncate("No tasks yet. Type one above and press enter.", m.width-sidePad))
	}

	visible := listHeight(m.height)
	start := m.offset
	end := min(start+visible, n)

	textWidth := rowTextWidth(m.width)
	pad := strings.Repeat(" ", sidePad)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item, _ := m.list.Item(i)
		selected := m.focus == FocusList && i == m.selected

		index := fmt.Sprintf("%d. ", i+1)
		label := truncate(index+item, textWidth)

		var text, button string
		if selected {
			text = rowSelectedStyle.Width(textWidth).MaxWidth(textWidth).Render(label)
			button = deleteButtonActiveStyle.Render(deleteLabel)
		} else {
			// Dim the position prefix unless truncation already ate into it.
			if strings.HasPrefix(label, index) {
				label = rowIndexStyle.Render(index) + rowStyle.Render(strings.TrimPrefix(label, index))
			} else {
				label = rowStyle.Render(label)
			}
			text = rowStyle.Width(textWidth).MaxWidth(textWidth).Render(label)
			button = deleteButtonStyle.Render(deleteLabel)
		}

		lines = append(lines, pad+text+" "+button)
	}

	return strings.Join(lines, "\n")
}
