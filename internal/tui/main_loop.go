// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// mainLoopModel is the todo screen of a logged in user.
type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	session   models.Session
	buildInfo models.AppBuildInfo

	list   listModel
	fresh  bool
	status string
	errMsg string

	form    *todoForm
	confirm *confirmModel
	pending string

	showInfo      bool
	serverVersion string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session, buildInfo models.AppBuildInfo) mainLoopModel {
	list := newListModel()
	list.syncing = true

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		session:   session,
		buildInfo: buildInfo,
		list:      list,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadCached(), m.cmdRefresh(), m.list.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.list.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case todosLoadedMsg:
		return m.applyLoaded(msg)
	case cacheRefreshedMsg:
		return m.applyLoaded(todosLoadedMsg{todos: msg.todos, err: msg.err, background: true})
	case todoSavedMsg:
		return m.applySaved(msg)
	case todoDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.list.remove(msg.todoID)
		cmd := m.flash("Задача удалена")
		return m, cmd
	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != nil {
			form, cmd := m.form.updateInput(msg)
			m.form = &form
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.form != nil:
		return m.updateForm(keyMsg)
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.showInfo:
		if key.Matches(keyMsg, keys.esc, keys.version) {
			m.showInfo = false
		}
		return m, nil
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.up()
	case key.Matches(keyMsg, keys.down):
		m.list.down()
	case key.Matches(keyMsg, keys.toggle):
		todo, ok := m.list.current()
		if !ok {
			cmd := m.flash("Нет задач")
			return m, cmd
		}
		return m, m.cmdToggle(todo)
	case key.Matches(keyMsg, keys.newItem):
		form := newTodoForm(nil)
		m.form = &form
	case key.Matches(keyMsg, keys.edit):
		todo, ok := m.list.current()
		if !ok {
			cmd := m.flash("Нет задач")
			return m, cmd
		}
		form := newTodoForm(&todo)
		m.form = &form
	case key.Matches(keyMsg, keys.delete):
		todo, ok := m.list.current()
		if !ok {
			cmd := m.flash("Нет задач")
			return m, cmd
		}
		m.confirm = &confirmModel{message: todo.Title}
		m.pending = todo.ID
	case key.Matches(keyMsg, keys.copy):
		todo, ok := m.list.current()
		if !ok {
			cmd := m.flash("Нечего копировать")
			return m, cmd
		}
		if err := clipboard.WriteAll(todo.Title); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		cmd := m.flash("Скопировано")
		return m, cmd
	case key.Matches(keyMsg, keys.sync):
		if m.list.syncing {
			return m, nil
		}
		m.list.syncing = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdRefresh(), m.list.spinner.Tick)
	case key.Matches(keyMsg, keys.version):
		m.showInfo = true
		return m, cmdServerVersion(m.ctx, m.services.AppInfoService)
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := *m.form

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.form = nil
		return m, nil
	case key.Matches(keyMsg, keys.tab, keys.backtab):
		form.switchField()
		m.form = &form
		return m, nil
	case key.Matches(keyMsg, submitKey), form.onTitle && key.Matches(keyMsg, keys.enter):
		if form.saving {
			return m, nil
		}
		var cmd tea.Cmd
		if form.creating() {
			req, errMsg := form.createRequest()
			form.errMsg = errMsg
			if errMsg == "" {
				cmd = m.cmdCreate(req)
			}
		} else {
			update, errMsg := form.update(m.session.UserID)
			form.errMsg = errMsg
			if errMsg == "" {
				cmd = m.cmdUpdate(update)
			}
		}
		form.saving = cmd != nil
		m.form = &form
		return m, cmd
	}

	form, cmd := form.updateInput(keyMsg)
	m.form = &form
	return m, cmd
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		todoID := m.pending
		m.confirm, m.pending = nil, ""
		return m, m.cmdDelete(todoID)
	case key.Matches(keyMsg, keys.no):
		m.confirm, m.pending = nil, ""
	}
	return m, nil
}

// applyLoaded merges a list result. Once the server answered, late cache
// reads are ignored.
func (m mainLoopModel) applyLoaded(msg todosLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.fromCache {
		if msg.err != nil || m.fresh {
			return m, nil
		}
		m.list.setItems(msg.todos)
		return m, nil
	}

	m.list.syncing = false
	if msg.err != nil {
		m.list.loading = false
		return m.fail(msg.err)
	}

	m.fresh = true
	m.errMsg = ""
	m.list.setItems(msg.todos)
	if msg.background {
		return m, nil
	}
	cmd := m.flash("Синхронизировано")
	return m, cmd
}

func (m mainLoopModel) applySaved(msg todoSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.form != nil && !sessionLost(msg.err) {
			form := *m.form
			form.saving = false
			form.errMsg = humanizeError(msg.err)
			m.form = &form
			return m, nil
		}
		return m.fail(msg.err)
	}

	m.form = nil
	m.errMsg = ""
	m.list.replace(msg.todo)
	if msg.created {
		cmd := m.flash("Задача добавлена")
		return m, cmd
	}
	cmd := m.flash("Задача обновлена")
	return m, cmd
}

// fail shows err, or leaves the loop for a new login when the session is
// gone.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	if sessionLost(err) {
		m.logout = true
		return m, tea.Quit
	}
	m.errMsg = humanizeError(err)
	return m, nil
}

func (m *mainLoopModel) flash(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(m.list.View())

	if m.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderError(m.errMsg))
	}

	title := "ЗАДАЧИ: " + valueOrDash(m.session.FullName)
	if m.session.Email != "" {
		title += " <" + m.session.Email + ">"
	}

	return renderPage(title, b.String(),
		"space: готово │ n: новая │ e: изменить │ d: удалить │ c: копировать │ s: синхр. │ v: версия │ l: выйти из аккаунта │ q: выход")
}

func (m mainLoopModel) cmdLoadCached() tea.Cmd {
	ctx, todos, owner := m.ctx, m.services.TodoService, m.session.UserID
	return func() tea.Msg {
		items, err := todos.CachedTodos(ctx, owner)
		return todosLoadedMsg{todos: items, fromCache: true, err: err}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx, todos, owner := m.ctx, m.services.TodoService, m.session.UserID
	return func() tea.Msg {
		items, err := todos.Refresh(ctx, owner)
		return todosLoadedMsg{todos: items, err: err}
	}
}

func (m mainLoopModel) cmdCreate(req models.CreateTodoRequest) tea.Cmd {
	ctx, todos, owner := m.ctx, m.services.TodoService, m.session.UserID
	return func() tea.Msg {
		todo, err := todos.Create(ctx, owner, req)
		return todoSavedMsg{todo: todo, created: true, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(update models.TodoUpdate) tea.Cmd {
	ctx, todos := m.ctx, m.services.TodoService
	return func() tea.Msg {
		todo, err := todos.Update(ctx, update)
		return todoSavedMsg{todo: todo, err: err}
	}
}

func (m mainLoopModel) cmdToggle(todo models.Todo) tea.Cmd {
	ctx, todos := m.ctx, m.services.TodoService
	return func() tea.Msg {
		updated, err := todos.ToggleCompleted(ctx, todo)
		return todoSavedMsg{todo: updated, err: err}
	}
}

func (m mainLoopModel) cmdDelete(todoID string) tea.Cmd {
	ctx, todos, owner := m.ctx, m.services.TodoService, m.session.UserID
	return func() tea.Msg {
		err := todos.Delete(ctx, todoID, owner)
		return todoDeletedMsg{todoID: todoID, err: err}
	}
}
