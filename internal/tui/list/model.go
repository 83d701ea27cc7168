// Package listview provides a generic, virtually scrolled list for Bubble Tea
// screens. Only the rows inside the viewport are rendered, and the selection
// is always kept visible.
package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item. selected reports whether it has the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// KeyMap holds the navigation bindings of the list.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns arrow, vim-style and paging bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	}
}

// Model is a virtually scrolled list of T.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]
	keys   KeyMap

	cursor int
	offset int // index of the first visible item
	height int // viewport height in items
}

// New creates a list showing height items at a time.
func New[T any](items []T, height int, render RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:  items,
		render: render,
		keys:   DefaultKeyMap(),
		height: max(height, 1),
	}
	m.clamp()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor in response to key presses.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor--
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor++
	case key.Matches(keyMsg, m.keys.PageUp):
		m.cursor -= m.height
	case key.Matches(keyMsg, m.keys.PageDown):
		m.cursor += m.height
	case key.Matches(keyMsg, m.keys.Home):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.End):
		m.cursor = len(m.items) - 1
	}
	m.clamp()
	return m, nil
}

// View renders the visible window of items.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}
	from, to := m.VisibleRange()
	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		lines = append(lines, m.render(m.items[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// SetItems replaces the items, keeping the cursor position where possible.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.clamp()
}

// SetHeight resizes the viewport.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 1)
	m.clamp()
}

// Len returns the number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Cursor returns the selected index.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// VisibleRange returns the [from, to) window of rendered items.
func (m *Model[T]) VisibleRange() (int, int) {
	return m.offset, min(m.offset+m.height, len(m.items))
}

// Selected returns the item under the cursor, or nil for an empty list.
func (m *Model[T]) Selected() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.cursor]
}

// clamp keeps the cursor in range and scrolls the window to contain it.
func (m *Model[T]) clamp() {
	if len(m.items) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(m.cursor, 0), len(m.items)-1)

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.items)-m.height, 0))
}
