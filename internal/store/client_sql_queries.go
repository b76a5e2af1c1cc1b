// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveLocalSession = `
		INSERT INTO session (id, user_id, full_name, email, token, expires_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			user_id    = excluded.user_id,
			full_name  = excluded.full_name,
			email      = excluded.email,
			token      = excluded.token,
			expires_at = excluded.expires_at;`

	getLocalSession = `
		SELECT user_id, full_name, email, token, expires_at
		FROM session
		WHERE id = 1;`

	clearLocalSession = `DELETE FROM session;`

	deleteLocalTodosOfOwner = `DELETE FROM todos WHERE created_by = $1;`

	saveLocalTodo = `
		INSERT INTO todos (
			id,
			title,
			description,
			completed,
			created_by,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title       = excluded.title,
			description = excluded.description,
			completed   = excluded.completed,
			updated_at  = excluded.updated_at;`

	getLocalTodos = `
		SELECT
			id,
			title,
			description,
			completed,
			created_by,
			created_at,
			updated_at
		FROM todos
		WHERE created_by = $1
		ORDER BY created_at ASC, id ASC;`

	deleteLocalTodo = `DELETE FROM todos WHERE id = $1 AND created_by = $2;`
)
