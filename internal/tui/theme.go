package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette (GitHub Dark)
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgPanel   = lipgloss.Color("#161b22")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue    = lipgloss.Color("#58a6ff")
	colorBlueDim = lipgloss.Color("#1f6feb")
	colorRed     = lipgloss.Color("#f85149")
	colorRedDim  = lipgloss.Color("#da3633")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Title and input row
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	inputFieldStyle = lipgloss.NewStyle().
			Background(colorBgPanel).
			Foreground(colorTextDim)

	inputFieldFocusedStyle = lipgloss.NewStyle().
				Background(colorBgSurface).
				Foreground(colorText)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	addButtonStyle = lipgloss.NewStyle().
			Background(colorBlueDim).
			Foreground(colorText).
			Bold(true)
)

// Task rows
var (
	rowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	rowSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)

	rowIndexStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	deleteButtonStyle = lipgloss.NewStyle().
				Background(colorRedDim).
				Foreground(colorText)

	deleteButtonActiveStyle = lipgloss.NewStyle().
				Background(colorRed).
				Foreground(colorBg).
				Bold(true)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Footer / status bar
var (
	footerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorDivider)
)
