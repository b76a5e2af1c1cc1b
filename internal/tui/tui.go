// Package tui is the terminal user interface of the client, built on
// bubbletea. [TUI.LoginFlow] runs the menu, login and signup screens;
// [TUI.MainLoop] runs the todo screen of a logged in user.
package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/workers"
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:       services,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow shows the menu until the user logs in. It returns ErrUserQuit
// when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(ctx, t.services.AppInfoService, pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, t.options(ctx)...).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session.UserID == "" {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the todo screen. While it is open the cached list is
// refreshed from the server every interval. logout is true when the user
// logged out or the session stopped being accepted by the server.
func (t *TUI) MainLoop(ctx context.Context, session models.Session, interval time.Duration) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session, t.buildInfo)
	program := tea.NewProgram(model, t.options(ctx)...)

	refresher := workers.NewCacheRefresher(t.services.TodoService, session.UserID, interval,
		func(todos []models.Todo, err error) {
			program.Send(cacheRefreshedMsg{todos: todos, err: err})
		}, t.logger)
	background := workers.NewWorkers(refresher)
	background.Start(ctx)
	defer background.Stop()

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) options(ctx context.Context) []tea.ProgramOption {
	opts := make([]tea.ProgramOption, 0, len(t.programOptions)+1)
	opts = append(opts, t.programOptions...)
	return append(opts, tea.WithContext(ctx))
}
