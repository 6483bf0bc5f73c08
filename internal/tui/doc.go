// Package tui implements the task list terminal user interface.
//
// It is built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles
// libraries. Every mutation of the task list happens inside Update, and
// BubbleTea renders View after each Update, so the frame on screen always
// reflects the most recent completed mutation.
//
// Component architecture:
//
//	model.go   : root model, message routing, Init/Update/View
//	keys.go    : key bindings and their footer hints
//	theme.go   : centralized color + style definitions
//	header.go  : top bar with task count, footer with status + hints
//	inputrow.go: title, text field and the Add Task control
//	tasklist.go: one row per task with its Delete control
//	layout.go  : screen geometry shared by rendering and mouse hit tests
//	helpers.go : truncation, clamping
package tui
