package service

import (
	"context"
	"time"

	"todolist/internal/models"
	"todolist/internal/repository"
)

// Authorization covers the whole session lifecycle: credential registration,
// credential check + token issuance, and token verification.
type Authorization interface {
	SignUp(ctx context.Context, p SignUpParams) (models.User, error)
	SignIn(ctx context.Context, email, password string) (models.User, string, error)
	ParseToken(accessToken string) (*Claims, error)
	TokenTTL() time.Duration
}

// Todos exposes owner-scoped task operations.
type Todos interface {
	Create(ctx context.Context, userID int, p CreateTodoParams) (models.Todo, error)
	ListByUser(ctx context.Context, userID int) ([]models.Todo, error)
}

// TodoEvents lets consumers watch todos as their owner creates them.
type TodoEvents interface {
	Subscribe(userID int) (<-chan models.Todo, func())
}

type SignUpParams struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type CreateTodoParams struct {
	Title       string
	Description string
	Done        bool
}

// AuthConfig carries the signing secret and token lifetime, both sourced from
// configuration in main.
type AuthConfig struct {
	SigningSecret string
	TokenTTL      time.Duration
}

type Service struct {
	Authorization
	Todos
	TodoEvents

	hub *EventHub
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	hub := NewEventHub()
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		Todos:         NewTodoService(repos.Todos, hub),
		TodoEvents:    hub,
		hub:           hub,
	}
}

// Shutdown releases resources held by the services; currently that is the
// todo event hub and its subscriber channels.
func (s *Service) Shutdown() {
	if s.hub != nil {
		s.hub.Close()
	}
}
