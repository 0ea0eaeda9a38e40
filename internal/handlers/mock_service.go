package handlers

import (
	"context"
	"time"

	"todolist/internal/models"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser models.User
	signUpErr  error
	signInUser models.User
	signInTok  string
	signInErr  error
	parseRes   *service.Claims
	parseErr   error
	ttl        time.Duration

	lastSignUp     service.SignUpParams
	lastSignInMail string
	lastSignInPass string
	lastParseToken string
	signUpCalls    int
	signInCalls    int
}

func (m *mockAuth) SignUp(_ context.Context, p service.SignUpParams) (models.User, error) {
	m.signUpCalls++
	m.lastSignUp = p
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, email, password string) (models.User, string, error) {
	m.signInCalls++
	m.lastSignInMail = email
	m.lastSignInPass = password
	return m.signInUser, m.signInTok, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	return m.parseRes, m.parseErr
}

func (m *mockAuth) TokenTTL() time.Duration {
	if m.ttl == 0 {
		return time.Hour
	}
	return m.ttl
}

type mockTodos struct {
	createTodo models.Todo
	createErr  error
	listTodos  []models.Todo
	listErr    error

	lastCreateUserID int
	lastCreateParams service.CreateTodoParams
	lastListUserID   int
	createCalls      int
	listCalls        int
}

func (m *mockTodos) Create(_ context.Context, userID int, p service.CreateTodoParams) (models.Todo, error) {
	m.createCalls++
	m.lastCreateUserID = userID
	m.lastCreateParams = p
	return m.createTodo, m.createErr
}

func (m *mockTodos) ListByUser(_ context.Context, userID int) ([]models.Todo, error) {
	m.listCalls++
	m.lastListUserID = userID
	return m.listTodos, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func claimsFor(userID int, email string) *service.Claims {
	return &service.Claims{UserID: userID, Email: email}
}
