package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderHeader produces the top bar:
//
//	TASKS  |  3 tasks  |  showing 1-3
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("TASKS")
	sep := headerSepStyle.Render(" │ ")

	n := m.list.Len()
	parts := []string{
		brand,
		sep,
		headerMetaStyle.Render(fmt.Sprintf("%d %s", n, plural(n, "task", "tasks"))),
	}

	visible := listHeight(m.height)
	if n > visible {
		last := min(m.offset+visible, n)
		parts = append(parts, sep,
			headerMetaStyle.Render(fmt.Sprintf("showing %d-%d", m.offset+1, last)))
	}

	content := ansi.Truncate(strings.Join(parts, ""), max(m.width-2, 0), "")
	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	if m.statusMsg != "" {
		left = statusStyle.Render(m.statusMsg)
	}

	bindings := m.keys.inputHints()
	if m.focus == FocusList {
		bindings = m.keys.listHints()
	}
	right := renderHints(bindings)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	bar := ansi.Truncate(left+strings.Repeat(" ", gap)+right, m.width, "")
	return footerBarStyle.
		Width(m.width).
		MaxWidth(m.width).
		Render(bar)
}

func renderHints(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts,
			hintKeyStyle.Render(h.Key)+" "+hintDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
