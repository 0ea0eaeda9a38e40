package service

import (
	"context"

	"todolist/internal/models"
	"todolist/internal/repository"
)

// TodoService creates and lists todos scoped to their owner, and announces
// created todos on the event hub.
type TodoService struct {
	todos repository.Todos
	hub   *EventHub
}

func NewTodoService(todos repository.Todos, hub *EventHub) *TodoService {
	return &TodoService{todos: todos, hub: hub}
}

// Create stores a new todo owned by userID and publishes it to subscribers.
func (s *TodoService) Create(ctx context.Context, userID int, p CreateTodoParams) (models.Todo, error) {
	t := models.Todo{
		Title:       p.Title,
		Description: p.Description,
		Done:        p.Done,
		UserID:      userID,
	}
	id, err := s.todos.Create(ctx, t)
	if err != nil {
		return models.Todo{}, err
	}
	t.ID = id

	if s.hub != nil {
		s.hub.Publish(t)
	}
	return t, nil
}

// ListByUser returns all todos owned by userID.
func (s *TodoService) ListByUser(ctx context.Context, userID int) ([]models.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}
