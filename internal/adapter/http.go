package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs fullName, email and password
// to /api/signup.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/signup")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs email and password to
// /api/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: user.Email, Password: user.Password}).
		SetResult(&loginResp).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if loginResp.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no token")
	}

	h.SetToken(loginResp.Token)
	return loginResp, nil
}

func (h *httpServerAdapter) ListTodos(ctx context.Context) ([]models.Todo, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return nil, err
	}

	var todos []models.Todo
	resp, err := req.SetResult(&todos).Get("/api/todos")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if todos == nil {
		todos = []models.Todo{}
	}
	return todos, nil
}

func (h *httpServerAdapter) CreateTodo(ctx context.Context, createReq models.CreateTodoRequest) (models.Todo, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	var todo models.Todo
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(createReq).
		SetResult(&todo).
		Post("/api/todos")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (h *httpServerAdapter) UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	var todo models.Todo
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", update.ID).
		SetBody(update).
		SetResult(&todo).
		Put("/api/todos/{id}")
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (h *httpServerAdapter) DeleteTodo(ctx context.Context, todoID string) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", todoID).
		Delete("/api/todos/{id}")
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
