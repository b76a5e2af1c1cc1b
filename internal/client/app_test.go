package client

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testInterval = time.Minute

var testSession = models.Session{UserID: "u-1", Email: "ann@example.com", Token: "t"}

type appMocks struct {
	auth *mock.MockClientAuthService
	ui   *mock.MockUI
}

func newTestApp(t *testing.T) (*App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		auth: mock.NewMockClientAuthService(ctrl),
		ui:   mock.NewMockUI(ctrl),
	}

	services := &service.ClientServices{AuthService: m.auth}
	return NewApp(services, m.ui, config.ClientWorkers{SyncInterval: testInterval}, logger.Nop()), m
}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	app, m := newTestApp(t)

	gomock.InOrder(
		m.auth.EXPECT().RestoreSession(gomock.Any()).Return(testSession, nil),
		m.ui.EXPECT().MainLoop(gomock.Any(), testSession, testInterval).Return(false, nil),
	)

	require.NoError(t, app.run(t.Context()))
}

func TestApp_LoginWhenNoSession(t *testing.T) {
	for _, restoreErr := range []error{service.ErrNoSession, service.ErrSessionExpired} {
		t.Run(restoreErr.Error(), func(t *testing.T) {
			app, m := newTestApp(t)

			gomock.InOrder(
				m.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, restoreErr),
				m.ui.EXPECT().LoginFlow(gomock.Any()).Return(testSession, nil),
				m.ui.EXPECT().MainLoop(gomock.Any(), testSession, testInterval).Return(false, nil),
			)

			require.NoError(t, app.run(t.Context()))
		})
	}
}

func TestApp_UserQuitFromLogin(t *testing.T) {
	app, m := newTestApp(t)

	m.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNoSession)
	m.ui.EXPECT().LoginFlow(gomock.Any()).Return(models.Session{}, tui.ErrUserQuit)

	assert.NoError(t, app.run(t.Context()))
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	app, m := newTestApp(t)
	other := models.Session{UserID: "u-2", Token: "t2"}

	gomock.InOrder(
		m.auth.EXPECT().RestoreSession(gomock.Any()).Return(testSession, nil),
		m.ui.EXPECT().MainLoop(gomock.Any(), testSession, testInterval).Return(true, nil),
		m.auth.EXPECT().Logout(gomock.Any()).Return(nil),
		m.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNoSession),
		m.ui.EXPECT().LoginFlow(gomock.Any()).Return(other, nil),
		m.ui.EXPECT().MainLoop(gomock.Any(), other, testInterval).Return(false, nil),
	)

	require.NoError(t, app.run(t.Context()))
}

func TestApp_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("restore", func(t *testing.T) {
		app, m := newTestApp(t)
		m.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, boom)

		err := app.run(t.Context())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("login flow", func(t *testing.T) {
		app, m := newTestApp(t)
		m.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNoSession)
		m.ui.EXPECT().LoginFlow(gomock.Any()).Return(models.Session{}, boom)

		assert.ErrorIs(t, app.run(t.Context()), boom)
	})

	t.Run("main loop", func(t *testing.T) {
		app, m := newTestApp(t)
		m.auth.EXPECT().RestoreSession(gomock.Any()).Return(testSession, nil)
		m.ui.EXPECT().MainLoop(gomock.Any(), testSession, testInterval).Return(false, boom)

		assert.ErrorIs(t, app.run(t.Context()), boom)
	})

	t.Run("logout", func(t *testing.T) {
		app, m := newTestApp(t)
		m.auth.EXPECT().RestoreSession(gomock.Any()).Return(testSession, nil)
		m.ui.EXPECT().MainLoop(gomock.Any(), testSession, testInterval).Return(true, nil)
		m.auth.EXPECT().Logout(gomock.Any()).Return(boom)

		assert.ErrorIs(t, app.run(t.Context()), boom)
	})
}
