package repository

import (
	"context"
	"database/sql"
	"fmt"

	"todolist/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite {
	return &TodoSQLite{db: db}
}

var _ Todos = (*TodoSQLite)(nil)

const (
	insertTodoSQL = `INSERT INTO todos (title, description, done, user_id) VALUES (?, ?, ?, ?)`

	selectTodosByUserSQL = `SELECT id, title, description, done, user_id FROM todos WHERE user_id = ? ORDER BY id`
)

// Create inserts a new todo and returns its ID.
func (r *TodoSQLite) Create(ctx context.Context, t models.Todo) (int, error) {
	res, err := r.db.ExecContext(ctx, insertTodoSQL, t.Title, t.Description, t.Done, t.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert todo for user %d: %w", t.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for todo: %w", err)
	}
	return int(lastID), nil
}

// ListByUser returns all todos owned by userID in insertion order.
func (r *TodoSQLite) ListByUser(ctx context.Context, userID int) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, selectTodosByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select todos for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Done, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan todo row: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todo rows: %w", err)
	}
	return todos, nil
}
