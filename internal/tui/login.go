// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login screen: email and password.
// On success a [LoginResult] is produced and [RootModel] ends the flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       formInputs
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newFormInputs(
			newTextInput("email", 254, false),
			newTextInput("password", 256, true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return nil
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
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

			email := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if email == "" || password == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Email   │ [")
	b.WriteString(m.form.view(0))
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.form.view(1))
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Вход...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: войти")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, models.User{Email: email, Password: password})
		return LoginResult{Session: session, Err: err}
	}
}
