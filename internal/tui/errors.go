// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// ErrUserQuit is returned when the user leaves the program from a login
// screen.
var ErrUserQuit = errors.New("user quit")

var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrEmailAlreadyInUse, "Email уже используется"},
	{service.ErrUserNotFound, "Пользователь не найден"},
	{service.ErrInvalidCredentials, "Неверный email или пароль"},
	{service.ErrInvalidDataProvided, "Неверные данные"},
	{service.ErrTitleRequired, "Заголовок обязателен"},
	{service.ErrTodoNotFound, "Задача не найдена"},
	{service.ErrTokenIsExpiredOrInvalid, "Сессия истекла, войдите снова"},
	{service.ErrSessionExpired, "Сессия истекла, войдите снова"},
	{service.ErrNoSession, "Войдите в систему"},
	{service.ErrServerFailure, "Внутренняя ошибка сервера"},
}

// humanizeError turns a client service error into a message for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, candidate := range errorMessages {
		if errors.Is(err, candidate.target) {
			return candidate.message
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// sessionLost reports whether err means the user has to log in again.
func sessionLost(err error) bool {
	return errors.Is(err, service.ErrTokenIsExpiredOrInvalid) ||
		errors.Is(err, service.ErrSessionExpired) ||
		errors.Is(err, service.ErrNoSession)
}
