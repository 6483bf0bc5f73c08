package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/tasks/internal/config"
	"github.com/Mr-Dark-debug/tasks/internal/logging"
	"github.com/Mr-Dark-debug/tasks/internal/tasks"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Focus
// ────────────────────────────────────────────────────────────

// Focus identifies which region receives keyboard input.
type Focus int

const (
	// FocusInput means keystrokes edit the text field.
	FocusInput Focus = iota
	// FocusList means navigation keys move the row selection.
	FocusList
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the task list.
// It owns the task state for its whole lifetime; rendering is
// delegated to component functions in separate files.
type Model struct {
	list  *tasks.List
	input textinput.Model
	keys  keyMap
	cfg   config.UIConfig
	log   *logging.Logger

	// UI state
	focus    Focus
	selected int
	offset   int
	width    int
	height   int

	// Status
	statusMsg string
}

// NewModel creates a model with an empty task list.
func NewModel(cfg config.UIConfig, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Nop()
	}

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = cfg.CharLimit
	ti.Prompt = "> "
	ti.PromptStyle = inputPromptStyle
	ti.TextStyle = inputFieldFocusedStyle
	ti.PlaceholderStyle = inputPlaceholderStyle
	ti.Focus()

	return Model{
		list:  tasks.New(),
		input: ti,
		keys:  defaultKeyMap(),
		cfg:   cfg,
		log:   logger,
		focus: FocusInput,
	}
}

// Items returns the tasks currently shown, in display order.
func (m Model) Items() []string {
	return m.list.Items()
}

// Input returns the current contents of the input buffer.
func (m Model) Input() string {
	return m.list.Input()
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(fieldWidth(m.width)-lipgloss.Width(m.input.Prompt)-1, 1)
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blink and other textinput-internal messages.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes keyboard input based on the focused region.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ── Global ──

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.log.Info("quit", "tasks", m.list.Len())
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == FocusInput && m.list.Len() > 0 {
			return m.focusList()
		}
		return m.focusInput()
	}

	if m.focus == FocusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Add) {
		m.addTask()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.list.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Info("quit", "tasks", m.list.Len())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.selected = max(m.selected-1, 0)
		m.ensureVisible()

	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+1, 0, max(m.list.Len()-1, 0))
		m.ensureVisible()

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.ensureVisible()

	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(m.list.Len()-1, 0)
		m.ensureVisible()

	case key.Matches(msg, m.keys.Delete):
		return m.removeTask(m.selected)

	case key.Matches(msg, m.keys.Back):
		return m.focusInput()
	}

	return m, nil
}

// handleMouse maps left clicks onto the Add Task and Delete controls
// and, while the list has focus, the wheel onto row selection.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.focus == FocusList && m.list.Len() > 0 {
			m.selected = max(m.selected-1, 0)
			m.ensureVisible()
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.focus == FocusList && m.list.Len() > 0 {
			m.selected = clamp(m.selected+1, 0, m.list.Len()-1)
			m.ensureVisible()
		}
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	target, index := m.hitTest(msg.X, msg.Y)
	switch target {
	case hitAddButton:
		m.addTask()
		if m.focus != FocusInput {
			return m.focusInput()
		}
	case hitInput:
		return m.focusInput()
	case hitDeleteButton:
		return m.removeTask(index)
	case hitRow:
		m.selected = index
		m.ensureVisible()
		return m.focusList()
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// Mutations
// ────────────────────────────────────────────────────────────

// addTask appends the input buffer to the list. Blank input is
// rejected without any visible message.
func (m *Model) addTask() {
	text := m.list.Input()
	if !m.list.Add() {
		m.log.Debug("add rejected: blank input", "length", len(text))
		return
	}
	m.input.SetValue("")
	n := m.list.Len()
	m.statusMsg = fmt.Sprintf("Added task %d", n)
	m.log.Debug("task added", "position", n, "tasks", n)
}

// removeTask deletes the task at index and keeps the selection on a
// valid row. Out-of-range indexes are ignored.
func (m Model) removeTask(index int) (tea.Model, tea.Cmd) {
	if !m.list.Remove(index) {
		m.log.Debug("remove ignored: index out of range", "index", index, "tasks", m.list.Len())
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("Removed task %d", index+1)
	m.log.Debug("task removed", "position", index+1, "tasks", m.list.Len())

	if m.list.Len() == 0 {
		m.selected = 0
		m.offset = 0
		return m.focusInput()
	}
	m.selected = clamp(m.selected, 0, m.list.Len()-1)
	m.ensureVisible()
	return m, nil
}

// ────────────────────────────────────────────────────────────
// Focus + scrolling
// ────────────────────────────────────────────────────────────

func (m Model) focusInput() (tea.Model, tea.Cmd) {
	m.focus = FocusInput
	m.input.TextStyle = inputFieldFocusedStyle
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) focusList() (tea.Model, tea.Cmd) {
	m.focus = FocusList
	m.input.Blur()
	m.input.TextStyle = inputFieldStyle
	m.selected = clamp(m.selected, 0, max(m.list.Len()-1, 0))
	m.ensureVisible()
	return m, nil
}

// ensureVisible adjusts the scroll offset so the selected row is on
// screen and no empty rows are left below the last task.
func (m *Model) ensureVisible() {
	visible := listHeight(m.height)
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	m.offset = clamp(m.offset, 0, max(m.list.Len()-visible, 0))
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if tooSmall(m.width, m.height) {
		return truncate(fmt.Sprintf("Terminal too small (need %dx%d)", minWidth, minHeight), m.width)
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	body := lipgloss.JoinVertical(lipgloss.Left,
		"",
		renderTitle(&m),
		"",
		renderInputRow(&m),
		dividerStyle.Render(strings.Repeat("─", m.width)),
		renderTaskList(&m),
	)

	// Pad the body so the footer sits on the last line.
	bodyHeight := max(m.height-1-footerLines, 0)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
