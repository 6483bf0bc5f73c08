package tui

import "github.com/charmbracelet/lipgloss"

// Screen rows, counted from the top of the terminal. Every element is
// exactly one line tall so rendering and mouse hit tests share the same
// arithmetic.
const (
	headerRow  = 0
	titleRow   = 2
	inputRow   = 4
	dividerRow = 5
	listTop    = 6

	footerLines = 1
	sidePad     = 2
)

// Below this size the input row would wrap and rows would no longer sit
// where hitTest looks for them.
const (
	minFieldWidth = 10
	minWidth      = sidePad*2 + len(addLabel) + 1 + minFieldWidth
	minHeight     = listTop + 1 + footerLines
)

func tooSmall(width, height int) bool {
	return width < minWidth || height < minHeight
}

const (
	addLabel    = " Add Task "
	deleteLabel = " Delete "
)

// span is a half-open column range [x0, x1).
type span struct {
	x0, x1 int
}

func (s span) contains(x int) bool {
	return x >= s.x0 && x < s.x1
}

// addButtonSpan is where the Add Task control sits on the input row.
func addButtonSpan(width int) span {
	x1 := width - sidePad
	return span{x0: x1 - lipgloss.Width(addLabel), x1: x1}
}

// fieldWidth is the width of the text field, including its prompt.
func fieldWidth(width int) int {
	return max(addButtonSpan(width).x0-1-sidePad, 1)
}

// deleteButtonSpan is where each row's Delete control sits.
func deleteButtonSpan(width int) span {
	x1 := width - sidePad
	return span{x0: x1 - lipgloss.Width(deleteLabel), x1: x1}
}

// rowTextWidth is the room left for "N. text" on a task row.
func rowTextWidth(width int) int {
	return max(deleteButtonSpan(width).x0-1-sidePad, 1)
}

// listHeight is how many task rows fit between the divider and footer.
func listHeight(height int) int {
	return max(height-listTop-footerLines, 1)
}

// hitTarget names the control under a mouse position.
type hitTarget int

const (
	hitNone hitTarget = iota
	hitInput
	hitAddButton
	hitRow
	hitDeleteButton
)

// hitTest resolves a screen cell to a control. For rows it also returns
// the task index shown on that line.
func (m Model) hitTest(x, y int) (hitTarget, int) {
	if tooSmall(m.width, m.height) {
		return hitNone, -1
	}
	if y == inputRow {
		if addButtonSpan(m.width).contains(x) {
			return hitAddButton, -1
		}
		return hitInput, -1
	}

	if y < listTop || y >= listTop+listHeight(m.height) {
		return hitNone, -1
	}
	index := m.offset + (y - listTop)
	if index >= m.list.Len() {
		return hitNone, -1
	}
	if deleteButtonSpan(m.width).contains(x) {
		return hitDeleteButton, index
	}
	return hitRow, index
}
