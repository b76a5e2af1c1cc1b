package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// run executes cmd and returns the produced message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestLoginModel_RequiresEmailAndPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth)
	updated, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Email и пароль обязательны", updated.(*LoginModel).errMsg)
}

func TestLoginModel_SubmitsCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	session := models.Session{UserID: "u-1", Email: "ann@example.com", Token: "t"}
	auth.EXPECT().
		Login(gomock.Any(), models.User{Email: "ann@example.com", Password: "secret"}).
		Return(session, nil)

	var m tea.Model = NewLoginModel(context.Background(), auth)
	m = typeText(m, " ann@example.com ")
	m, _ = m.Update(keyPress("tab"))
	m = typeText(m, "secret")

	m, cmd := m.Update(keyPress("enter"))
	assert.True(t, m.(*LoginModel).submitting)

	msg := run(t, cmd)
	assert.Equal(t, LoginResult{Session: session}, msg)

	// a second enter while the request is in flight does nothing
	_, again := m.Update(keyPress("enter"))
	assert.Nil(t, again)
}

func TestLoginModel_ShowsLoginError(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.submitting = true

	updated, _ := m.Update(LoginResult{Err: fmt.Errorf("login: %w", service.ErrInvalidCredentials)})

	lm := updated.(*LoginModel)
	assert.False(t, lm.submitting)
	assert.Equal(t, "Неверный email или пароль", lm.errMsg)
	assert.Contains(t, lm.View(), "Неверный email или пароль")
}

func TestLoginModel_EscGoesBackToMenu(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	_, cmd := m.Update(keyPress("esc"))

	assert.Equal(t, NavigateTo{Page: pageMenu}, run(t, cmd))
}

func TestRegisterModel_Validation(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		repeat   string
		want     string
	}{
		{"empty", "", "", "", "", "Все поля обязательны"},
		{"no password", "Ann", "ann@example.com", "", "", "Все поля обязательны"},
		{"bad email", "Ann", "ann.example.com", "pw", "pw", "Неверный email"},
		{"mismatch", "Ann", "ann@example.com", "pw", "other", "Пароли не совпадают"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRegisterModel(context.Background(), nil)
			m.form.inputs[registerFullName].SetValue(tt.fullName)
			m.form.inputs[registerEmail].SetValue(tt.email)
			m.form.inputs[registerPassword].SetValue(tt.password)
			m.form.inputs[registerRepeat].SetValue(tt.repeat)

			updated, cmd := m.Update(keyPress("enter"))

			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, updated.(*RegisterModel).errMsg)
		})
	}
}

func TestRegisterModel_SuccessNavigatesToMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	want := models.User{FullName: "Ann Lee", Email: "ann@example.com", Password: "pw"}
	auth.EXPECT().Register(gomock.Any(), want).Return(nil)

	m := NewRegisterModel(context.Background(), auth)
	m.form.inputs[registerFullName].SetValue("Ann Lee")
	m.form.inputs[registerEmail].SetValue("ann@example.com")
	m.form.inputs[registerPassword].SetValue("pw")
	m.form.inputs[registerRepeat].SetValue("pw")

	_, cmd := m.Update(keyPress("enter"))
	result := run(t, cmd)
	assert.Equal(t, RegisterResult{Email: "ann@example.com"}, result)

	updated, cmd := m.Update(result)
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Email: "ann@example.com"}}, run(t, cmd))
	assert.Empty(t, updated.(*RegisterModel).form.value(registerEmail))
}

func TestRegisterModel_ServerError(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	m.submitting = true

	updated, cmd := m.Update(RegisterResult{Email: "ann@example.com", Err: service.ErrEmailAlreadyInUse})

	assert.Nil(t, cmd)
	assert.Equal(t, "Email уже используется", updated.(*RegisterModel).errMsg)
}

func TestMenuModel_Navigation(t *testing.T) {
	m := NewMenuModel()

	_, cmd := m.Update(keyPress("enter"))
	assert.Equal(t, NavigateTo{Page: pageLogin}, run(t, cmd))

	m.Update(keyPress("down"))
	_, cmd = m.Update(keyPress("enter"))
	assert.Equal(t, NavigateTo{Page: pageRegister}, run(t, cmd))

	m.Update(RegisterSuccessNotice{Email: "ann@example.com"})
	assert.Contains(t, m.View(), "ann@example.com")
}

func TestRootModel_NavigatesAndFinishesOnLogin(t *testing.T) {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(context.Background(), nil),
	}
	var root tea.Model = NewRootModel(context.Background(), nil, pages, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))

	root, _ = root.Update(NavigateTo{Page: pageLogin})
	_, isLogin := root.(RootModel).current.(*LoginModel)
	assert.True(t, isLogin)

	// unknown pages are ignored
	root, _ = root.Update(NavigateTo{Page: "nowhere"})
	_, isLogin = root.(RootModel).current.(*LoginModel)
	assert.True(t, isLogin)

	session := models.Session{UserID: "u-1"}
	root, cmd := root.Update(LoginResult{Session: session})
	assert.Equal(t, session, root.(RootModel).session)
	assert.Equal(t, tea.Quit(), run(t, cmd))
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(context.Background(), nil, map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})

	updated, cmd := root.Update(keyPress("ctrl+c"))

	assert.True(t, updated.(RootModel).quitByUser)
	assert.Equal(t, tea.Quit(), run(t, cmd))
}

func TestRootModel_BuildInfoOnMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockClientAppInfoService(ctrl)
	appInfo.EXPECT().GetServerVersion(gomock.Any()).Return("2.0.0", nil)

	root := NewRootModel(context.Background(), appInfo, map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu,
		models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))

	updated, cmd := root.Update(keyPress("v"))
	require.True(t, updated.(RootModel).showBuildInfo)

	updated, _ = updated.Update(run(t, cmd))
	view := updated.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "2.0.0")

	updated, _ = updated.Update(keyPress("esc"))
	assert.False(t, updated.(RootModel).showBuildInfo)
}

func TestRootModel_ServerVersionUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockClientAppInfoService(ctrl)
	appInfo.EXPECT().GetServerVersion(gomock.Any()).Return("", errors.New("dial tcp: connection refused"))

	root := NewRootModel(context.Background(), appInfo, map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})

	updated, cmd := root.Update(keyPress("v"))
	updated, _ = updated.Update(run(t, cmd))

	assert.Contains(t, updated.View(), "Версия сервера: N/A")
}
