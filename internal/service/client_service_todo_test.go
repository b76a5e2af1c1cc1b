// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientTodoSvc(t *testing.T) (ClientTodoService, clientMocks) {
	t.Helper()
	m := newClientMocks(t)
	return NewClientTodoService(m.storages(), m.adapter, logger.Nop()), m
}

func TestClientTodoService_CachedTodos(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)
	want := []models.Todo{{ID: testTodoID, Title: "milk"}}

	m.todos.EXPECT().ListTodos(gomock.Any(), testUserID).Return(want, nil)

	got, err := svc.CachedTodos(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientTodoService_Refresh_ReplacesCache(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)
	ctx := context.Background()
	fromServer := []models.Todo{{ID: testTodoID, Title: "milk", CreatedBy: testUserID}}

	gomock.InOrder(
		m.adapter.EXPECT().ListTodos(ctx).Return(fromServer, nil),
		m.todos.EXPECT().ReplaceTodos(ctx, testUserID, fromServer).Return(nil),
	)

	got, err := svc.Refresh(ctx, testUserID)

	require.NoError(t, err)
	assert.Equal(t, fromServer, got)
}

func TestClientTodoService_Refresh_KeepsCacheWhenOffline(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)
	netErr := errors.New("connection refused")

	m.adapter.EXPECT().ListTodos(gomock.Any()).Return(nil, netErr)

	_, err := svc.Refresh(context.Background(), testUserID)

	assert.ErrorIs(t, err, netErr)
}

func TestClientTodoService_Refresh_ExpiredToken(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)

	m.adapter.EXPECT().ListTodos(gomock.Any()).Return(nil, serverErr(adapter.ErrUnauthorized, "Failed to authenticate token"))

	_, err := svc.Refresh(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestClientTodoService_Create(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)
	ctx := context.Background()
	req := models.CreateTodoRequest{Title: "milk", Description: "2l"}
	created := models.Todo{ID: testTodoID, Title: "milk", Description: "2l", CreatedBy: testUserID}

	m.adapter.EXPECT().CreateTodo(ctx, req).Return(created, nil)
	m.todos.EXPECT().SaveTodo(ctx, created).Return(nil)

	got, err := svc.Create(ctx, testUserID, req)

	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClientTodoService_Create_TitleRequired(t *testing.T) {
	svc, _ := newTestClientTodoSvc(t)

	_, err := svc.Create(context.Background(), testUserID, models.CreateTodoRequest{})

	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestClientTodoService_ToggleCompleted(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)
	ctx := context.Background()
	todo := models.Todo{ID: testTodoID, Title: "t", CreatedBy: testUserID}
	toggled := todo
	toggled.Completed = true

	m.adapter.EXPECT().UpdateTodo(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.TodoUpdate) (models.Todo, error) {
			require.NotNil(t, u.Completed)
			assert.True(t, *u.Completed)
			assert.Nil(t, u.Title)
			assert.Nil(t, u.Description)
			return toggled, nil
		},
	)
	m.todos.EXPECT().SaveTodo(ctx, toggled).Return(nil)

	got, err := svc.ToggleCompleted(ctx, todo)

	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestClientTodoService_Update_GoneOnServer(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)
	ctx := context.Background()

	m.adapter.EXPECT().UpdateTodo(ctx, gomock.Any()).Return(models.Todo{}, serverErr(adapter.ErrNotFound, "Todo not found"))
	m.todos.EXPECT().DeleteTodo(ctx, testTodoID, testUserID).Return(nil)

	_, err := svc.Update(ctx, models.TodoUpdate{ID: testTodoID, UserID: testUserID})

	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestClientTodoService_Delete(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)
	ctx := context.Background()

	m.adapter.EXPECT().DeleteTodo(ctx, testTodoID).Return(nil)
	m.todos.EXPECT().DeleteTodo(ctx, testTodoID, testUserID).Return(nil)

	assert.NoError(t, svc.Delete(ctx, testTodoID, testUserID))
}

func TestClientTodoService_Delete_NotFoundStillClearsCache(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)
	ctx := context.Background()

	m.adapter.EXPECT().DeleteTodo(ctx, testTodoID).Return(serverErr(adapter.ErrNotFound, "Todo not found"))
	m.todos.EXPECT().DeleteTodo(ctx, testTodoID, testUserID).Return(nil)

	assert.ErrorIs(t, svc.Delete(ctx, testTodoID, testUserID), ErrTodoNotFound)
}

func TestClientTodoService_Delete_NoSession(t *testing.T) {
	svc, m := newTestClientTodoSvc(t)

	m.adapter.EXPECT().DeleteTodo(gomock.Any(), testTodoID).Return(adapter.ErrNoToken)

	assert.ErrorIs(t, svc.Delete(context.Background(), testTodoID, testUserID), ErrNoSession)
}

func TestClientAppInfoService_GetServerVersion(t *testing.T) {
	m := newClientMocks(t)
	svc := NewClientAppInfoService(m.adapter)

	m.adapter.EXPECT().GetServerVersion(gomock.Any()).Return("1.2.3", nil)

	got, err := svc.GetServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"title", serverErr(adapter.ErrBadRequest, "Title is required"), ErrTitleRequired},
		{"other bad request", serverErr(adapter.ErrBadRequest, "Invalid data provided"), ErrInvalidDataProvided},
		{"forbidden", serverErr(adapter.ErrForbidden, "No token provided"), ErrTokenIsExpiredOrInvalid},
		{"todo not found", serverErr(adapter.ErrNotFound, "Todo not found"), ErrTodoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))

	plain := errors.New("dial tcp: refused")
	assert.Equal(t, plain, mapAdapterError(plain))
}
