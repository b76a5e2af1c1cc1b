package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const listTitleWidth = 48

type listModel struct {
	items   []models.Todo
	idx     int
	loading bool
	syncing bool
	spinner spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Todo, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Todo{}, false
	}
	return m.items[m.idx], true
}

// setItems replaces the list and keeps the cursor on the same todo if it
// is still there.
func (m *listModel) setItems(items []models.Todo) {
	selected, hadSelection := m.current()
	m.items = items
	m.loading = false

	if hadSelection {
		for i, item := range items {
			if item.ID == selected.ID {
				m.idx = i
				return
			}
		}
	}
	m.clampCursor()
}

// replace swaps the todo with the same ID, or appends it.
func (m *listModel) replace(todo models.Todo) {
	for i := range m.items {
		if m.items[i].ID == todo.ID {
			m.items[i] = todo
			return
		}
	}
	m.items = append(m.items, todo)
	m.idx = len(m.items) - 1
}

func (m *listModel) remove(todoID string) {
	for i := range m.items {
		if m.items[i].ID == todoID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	m.clampCursor()
}

func (m *listModel) clampCursor() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) down() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func (m listModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.items) == 0:
		b.WriteString("Нет задач\n")
	default:
		done := 0
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			title := fitText(item.Title, listTitleWidth)
			if item.Completed {
				done++
				title = doneStyle.Render(title)
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursor, checkbox(item.Completed), title)
		}
		fmt.Fprintf(&b, "\nВыполнено: %d из %d\n", done, len(m.items))
	}

	if item, ok := m.current(); ok && !m.loading {
		b.WriteString("\n")
		b.WriteString(valueOrDash(item.Description))
		b.WriteString("\n")
	}

	if m.syncing {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" синхронизация\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
