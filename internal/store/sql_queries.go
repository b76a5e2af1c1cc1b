package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var todoColumns = []string{
	"id",
	"title",
	"description",
	"completed",
	"created_by",
	"created_at",
	"updated_at",
}

const (
	createUser = `INSERT INTO users (id, full_name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, full_name, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, full_name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createTodo = `INSERT INTO todos (id, title, description, created_by)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, description, completed, created_by, created_at, updated_at;`

	deleteTodo = `DELETE FROM todos
    WHERE id = $1 AND created_by = $2
    RETURNING id;`
)

// buildListTodosQuery selects every todo of ownerID, oldest first.
func buildListTodosQuery(ownerID string) (string, []any, error) {
	return psql.
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"created_by": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// buildUpdateTodoQuery builds one UPDATE ... RETURNING statement that is
// both the ownership check and the mutation. Only the fields present in
// update are written; updated_at is always bumped.
func buildUpdateTodoQuery(update models.TodoUpdate) (string, []any, error) {
	builder := psql.
		Update(models.Todo{}.TableName()).
		Set("updated_at", sq.Expr("NOW()"))

	if update.HasTitle() {
		builder = builder.Set("title", *update.Title)
	}
	if update.HasDescription() {
		builder = builder.Set("description", *update.Description)
	}
	if update.Completed != nil {
		builder = builder.Set("completed", *update.Completed)
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "created_by": update.UserID}).
		Suffix("RETURNING " + strings.Join(todoColumns, ", ")).
		ToSql()
}
