package repository

import (
	"context"
	"database/sql"

	"todolist/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Todos interface {
	Create(ctx context.Context, t models.Todo) (int, error)
	ListByUser(ctx context.Context, userID int) ([]models.Todo, error)
}

type Repository struct {
	Users Users
	Todos Todos
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(db),
		Todos: NewTodoSQLite(db),
	}
}
