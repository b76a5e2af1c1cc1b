package tui

import (
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// todoForm edits the title and description of a new or existing todo.
// tab switches fields, ctrl+s submits, esc cancels.
type todoForm struct {
	todoID      string
	title       textinput.Model
	description textarea.Model
	onTitle     bool
	errMsg      string
	saving      bool
}

var submitKey = key.NewBinding(key.WithKeys("ctrl+s"))

func newTodoForm(todo *models.Todo) todoForm {
	title := newTextInput("title", 200, false)
	title.Focus()

	description := textarea.New()
	description.Placeholder = "description"
	description.ShowLineNumbers = false
	description.SetWidth(60)
	description.SetHeight(5)

	f := todoForm{title: title, description: description, onTitle: true}
	if todo != nil {
		f.todoID = todo.ID
		f.title.SetValue(todo.Title)
		f.description.SetValue(todo.Description)
	}
	return f
}

func (f todoForm) creating() bool {
	return f.todoID == ""
}

func (f *todoForm) switchField() {
	f.onTitle = !f.onTitle
	if f.onTitle {
		f.description.Blur()
		f.title.Focus()
		return
	}
	f.title.Blur()
	f.description.Focus()
}

// validate returns the trimmed title and description, or a message for
// the user.
func (f todoForm) validate() (string, string, string) {
	title := strings.TrimSpace(f.title.Value())
	description := strings.TrimSpace(f.description.Value())
	if title == "" {
		return "", "", "Заголовок обязателен"
	}
	return title, description, ""
}

func (f todoForm) createRequest() (models.CreateTodoRequest, string) {
	title, description, errMsg := f.validate()
	return models.CreateTodoRequest{Title: title, Description: description}, errMsg
}

func (f todoForm) update(ownerID string) (models.TodoUpdate, string) {
	title, description, errMsg := f.validate()
	return models.TodoUpdate{
		ID:          f.todoID,
		UserID:      ownerID,
		Title:       &title,
		Description: &description,
	}, errMsg
}

func (f todoForm) updateInput(msg tea.Msg) (todoForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.onTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}

func (f todoForm) View() string {
	header := "НОВАЯ ЗАДАЧА"
	if !f.creating() {
		header = "ИЗМЕНЕНИЕ ЗАДАЧИ"
	}

	var b strings.Builder
	b.WriteString("Заголовок │ [")
	b.WriteString(f.title.View())
	b.WriteString("]\n\nОписание:\n")
	b.WriteString(f.description.View())
	b.WriteString("\n")

	if f.saving {
		b.WriteString("\n[Сохранение...]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(f.errMsg))
	}

	return renderPage(header, strings.TrimRight(b.String(), "\n"), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
}
