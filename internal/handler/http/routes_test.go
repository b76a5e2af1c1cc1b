package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/todos"},
		{http.MethodPost, "/api/todos"},
		{http.MethodPut, "/api/todos/" + testTodoID},
		{http.MethodDelete, "/api/todos/" + testTodoID},
	}

	h, _ := newTestHandler(t)
	router := h.Init()

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := serve(t, router, rt.method, rt.path, "", nil)

			require.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, app.MsgNoTokenProvided, errorMessage(t, rec))
		})
	}
}

func TestInit_UnknownRoutesReturn404(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, path := range []string{"/api/nonexistent", "/api/todos/a/b", "/"} {
		rec := serve(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	tests := []struct{ method, path string }{
		{http.MethodGet, "/api/signup"},
		{http.MethodDelete, "/api/login"},
		{http.MethodPost, "/api/version"},
		{http.MethodPatch, "/api/todos"},
		{http.MethodGet, "/api/todos/" + testTodoID},
		{http.MethodPatch, "/api/todos/" + testTodoID},
	}

	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.path, "", authorized())

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(testVersion).Times(2)
	router := h.Init()

	rec := serve(t, router, http.MethodGet, "/api/version", "", nil)
	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err, "generated trace id must be a UUID")

	rec = serve(t, router, http.MethodGet, "/api/version", "", map[string]string{traceIDHeader: "trace-42"})
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestInit_CORS(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	preflight := map[string]string{
		"Origin":                        testOrigin,
		"Access-Control-Request-Method": http.MethodPost,
	}
	rec := serve(t, router, http.MethodOptions, "/api/todos", "", preflight)
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))

	preflight["Origin"] = "http://evil.example"
	rec = serve(t, router, http.MethodOptions, "/api/todos", "", preflight)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_NoCORSWithoutOrigin(t *testing.T) {
	h, m := newTestHandler(t)
	h.cfg.AllowedOrigin = ""
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(testVersion)

	rec := serve(t, h.Init(), http.MethodGet, "/api/version", "", map[string]string{"Origin": testOrigin})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.todos.EXPECT().ListTodos(gomock.Any(), testUserID).DoAndReturn(func(_ context.Context, _ string) ([]models.Todo, error) {
		panic("unexpected")
	})

	rec := serve(t, h.Init(), http.MethodGet, "/api/todos", "", authorized())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
