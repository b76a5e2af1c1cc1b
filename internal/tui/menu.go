package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	page  string
}

// MenuModel is the first page of the login flow: log in or sign up.
type MenuModel struct {
	items  []menuItem
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{label: "Войти", page: pageLogin},
			{label: "Зарегистрироваться", page: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		m.status = "Регистрация прошла успешно"
		if msg.Email != "" {
			m.status = "Пользователь " + msg.Email + " зарегистрирован, войдите"
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			page := m.items[m.idx].page
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(doneStyle.UnsetStrikethrough().Render("✓ " + m.status))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		if i == m.idx {
			b.WriteString(titleStyle.Render("> " + item.label))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}

	return renderPage("TODO KEEPER", strings.TrimRight(b.String(), "\n"), "↑/↓: выбор │ enter: открыть │ v: о программе")
}
