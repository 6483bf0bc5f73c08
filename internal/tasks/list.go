// Package tasks holds the state behind the task list screen: the text
// being typed and the ordered list of tasks already added.
//
// A List is not safe for concurrent use. The TUI mutates it only from
// inside the Bubble Tea update loop, which is the single writer.
package tasks

import "strings"

// List is the input buffer plus the item list.
//
// Items have no identity beyond their position. Duplicates are allowed
// and insertion order is display order.
type List struct {
	input string
	items []string
}

// New returns an empty List.
func New() *List {
	return &List{}
}

// Input returns the current input buffer.
func (l *List) Input() string {
	return l.input
}

// SetInput replaces the input buffer.
func (l *List) SetInput(text string) {
	l.input = text
}

// Add appends the input buffer to the end of the list and clears it.
// A buffer that is empty or only whitespace is rejected silently and
// Add reports false. The accepted text is stored as typed, surrounding
// whitespace included.
func (l *List) Add() bool {
	if strings.TrimSpace(l.input) == "" {
		return false
	}
	l.items = append(l.items, l.input)
	l.input = ""
	return true
}

// Remove deletes the item at index, shifting later items down by one.
// An out-of-range index leaves the list unchanged and reports false.
func (l *List) Remove(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index:index], l.items[index+1:]...)
	return true
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Item returns the item at index.
func (l *List) Item(index int) (string, bool) {
	if index < 0 || index >= len(l.items) {
		return "", false
	}
	return l.items[index], true
}

// Items returns a copy of the item list.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}
