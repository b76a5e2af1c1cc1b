package tui

import (
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names used with NavigateTo.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo asks RootModel to switch to Page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the server answered.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult is produced by the register page once the server answered.
type RegisterResult struct {
	Email string
	Err   error
}

// RegisterSuccessNotice is shown by the menu after a successful signup.
type RegisterSuccessNotice struct {
	Email string
}

type todosLoadedMsg struct {
	todos      []models.Todo
	fromCache  bool
	background bool
	err        error
}

type todoSavedMsg struct {
	todo    models.Todo
	created bool
	err     error
}

type todoDeletedMsg struct {
	todoID string
	err    error
}

// cacheRefreshedMsg is sent by the background refresher.
type cacheRefreshedMsg struct {
	todos []models.Todo
	err   error
}

type serverVersionMsg struct {
	version string
	err     error
}

type clearStatusMsg struct{}
