package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}
}

// Run blocks until the user quits. A user leaving from the login screen is
// not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	for {
		session, err := a.session(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit from login screen")
			return nil
		}
		if err != nil {
			return err
		}

		a.logger.Info().Str("user_id", session.UserID).Msg("session started")

		logout, err := a.ui.MainLoop(ctx, session, a.workers.SyncInterval)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Str("user_id", session.UserID).Msg("logged out")
	}
}

// session returns the stored session, or the one from a fresh login when
// there is none.
func (a *App) session(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, service.ErrNoSession) && !errors.Is(err, service.ErrSessionExpired) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	a.logger.Debug().Err(err).Str("func", "*App.session").Msg("no usable session, starting login flow")
	return a.ui.LoginFlow(ctx)
}
