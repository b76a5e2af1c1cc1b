// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Todo is a single to-do item owned by exactly one user.
type Todo struct {
	// ID is the unique identifier of the item (UUID v7).
	ID string `json:"id"`

	// Title is the short, required summary of the item.
	Title string `json:"title"`

	// Description is an optional free-form text.
	Description string `json:"description"`

	// Completed reports whether the item is done. Defaults to false.
	Completed bool `json:"completed"`

	// CreatedBy is the UserID of the owner. It is always taken from the
	// authenticated identity, never from a request body.
	CreatedBy string `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// CreateTodoRequest is the body of POST /api/todos.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TodoUpdate represents a partial update of a single item.
// Only non-nil fields are applied; nil (or empty) Title and Description
// keep the stored values, and so does a whitespace-only Title.
type TodoUpdate struct {
	// ID is the identifier of the item to update. Taken from the URL.
	ID string `json:"-"`

	// UserID is the owner of the item. Taken from the authenticated identity.
	UserID string `json:"-"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// HasTitle reports whether the update carries a title that is not blank.
// A whitespace-only title counts as omitted.
func (u TodoUpdate) HasTitle() bool {
	return u.Title != nil && strings.TrimSpace(*u.Title) != ""
}

// HasDescription reports whether the update carries a non-empty description.
func (u TodoUpdate) HasDescription() bool {
	return u.Description != nil && *u.Description != ""
}
