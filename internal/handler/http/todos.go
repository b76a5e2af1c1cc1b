// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
)

const todoIDParam = "id"

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext, "*Handler.listTodos")
		return
	}

	todos, err := h.services.TodoService.ListTodos(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err, "*Handler.listTodos")
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	writeJSON(w, r, todos, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext, "*Handler.createTodo")
		return
	}

	var req models.CreateTodoRequest
	if err := utils.ReadJSON(r.Body, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, ErrInvalidJSON, err), "*Handler.createTodo")
		return
	}

	created, err := h.services.TodoService.CreateTodo(r.Context(), models.Todo{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   ownerID,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.createTodo")
		return
	}

	writeJSON(w, r, created, http.StatusCreated)
}

// updateTodo applies the fields present in the body to the todo named in
// the URL. Absent or empty fields keep their stored values.
func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext, "*Handler.updateTodo")
		return
	}

	var update models.TodoUpdate
	if err := utils.ReadJSON(r.Body, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, ErrInvalidJSON, err), "*Handler.updateTodo")
		return
	}
	update.ID = chi.URLParam(r, todoIDParam)
	update.UserID = ownerID

	updated, err := h.services.TodoService.UpdateTodo(r.Context(), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateTodo")
		return
	}

	writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext, "*Handler.deleteTodo")
		return
	}

	todoID := chi.URLParam(r, todoIDParam)
	if err := h.services.TodoService.DeleteTodo(r.Context(), todoID, ownerID); err != nil {
		writeError(w, r, err, "*Handler.deleteTodo")
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgTodoDeleted}, http.StatusOK)
}
