package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerFullName = iota
	registerEmail
	registerPassword
	registerRepeat
)

// RegisterModel is the signup screen. After a successful signup it resets
// and navigates back to the menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       formInputs
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newFormInputs(
			newTextInput("full name", 100, false),
			newTextInput("email", 254, false),
			newTextInput("password", 256, true),
			newTextInput("repeat password", 256, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return nil
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Email: result.Email}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			user, errMsg := m.collect()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(user)
		}
	}

	return m, m.form.update(msg)
}

// collect validates the form locally. The server repeats every check.
func (m *RegisterModel) collect() (models.User, string) {
	user := models.User{
		FullName: strings.TrimSpace(m.form.value(registerFullName)),
		Email:    strings.TrimSpace(m.form.value(registerEmail)),
		Password: m.form.value(registerPassword),
	}

	switch {
	case user.FullName == "" || user.Email == "" || user.Password == "":
		return user, "Все поля обязательны"
	case !strings.Contains(user.Email, "@"):
		return user, "Неверный email"
	case user.Password != m.form.value(registerRepeat):
		return user, "Пароли не совпадают"
	}
	return user, ""
}

func (m *RegisterModel) View() string {
	rows := []struct {
		label string
		idx   int
	}{
		{"Имя          ", registerFullName},
		{"Email        ", registerEmail},
		{"Пароль       ", registerPassword},
		{"Повтор пароля", registerRepeat},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row.label)
		b.WriteString(" │ [")
		b.WriteString(m.form.view(row.idx))
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Регистрация...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: отправить")
}

func (m *RegisterModel) cmdRegister(user models.User) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		err := auth.Register(ctx, user)
		return RegisterResult{Email: user.Email, Err: err}
	}
}
