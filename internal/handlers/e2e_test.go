package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"todolist/internal/models"
	"todolist/internal/repository"
	"todolist/internal/service"
)

// ---- In-memory repositories for full-stack flows ----

type memUsers struct {
	mu     sync.Mutex
	nextID int
	byMail map[string]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{nextID: 1, byMail: make(map[string]models.User)}
}

func (m *memUsers) Create(_ context.Context, u models.User) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byMail[u.Email]; ok {
		return 0, repository.ErrDuplicateEmail
	}
	u.ID = m.nextID
	m.nextID++
	m.byMail[u.Email] = u
	return u.ID, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byMail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type memTodos struct {
	mu     sync.Mutex
	nextID int
	items  []models.Todo
}

func newMemTodos() *memTodos {
	return &memTodos{nextID: 1}
}

func (m *memTodos) Create(_ context.Context, t models.Todo) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = m.nextID
	m.nextID++
	m.items = append(m.items, t)
	return t.ID, nil
}

func (m *memTodos) ListByUser(_ context.Context, userID int) ([]models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Todo
	for _, t := range m.items {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func newFullStackRouter(t *testing.T) http.Handler {
	t.Helper()
	repos := &repository.Repository{Users: newMemUsers(), Todos: newMemTodos()}
	services := service.NewService(repos, service.AuthConfig{
		SigningSecret: "e2e-test-secret",
		TokenTTL:      time.Hour,
	})
	return newTestRouter(services)
}

func tokenCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookieName {
			return ck
		}
	}
	t.Fatalf("no %q cookie in response", sessionCookieName)
	return nil
}

func TestEndToEnd_SignupSigninCreateFetch(t *testing.T) {
	r := newFullStackRouter(t)

	// signup → 201
	w := postJSON(r, "/signup", `{"email":"a@x.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status=%d, body=%s", w.Code, w.Body.String())
	}

	// duplicate signup → conflict, no second row
	w = postJSON(r, "/signup", `{"email":"a@x.com","password":"secret2"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup status=%d, want 400", w.Code)
	}

	// signin → 200 + cookie
	w = postJSON(r, "/signin", `{"email":"a@x.com","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("signin status=%d, body=%s", w.Code, w.Body.String())
	}
	cookie := tokenCookieFrom(t, w)

	// wrong password → 401
	w = postJSON(r, "/signin", `{"email":"a@x.com","password":"secret2"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad-password signin status=%d, want 401", w.Code)
	}

	// create with cookie → 201, done defaults to false
	w = postJSON(r, "/create", `{"title":"buy milk"}`, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	var created struct {
		Todo models.Todo `json:"todo"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Todo.Title != "buy milk" || created.Todo.Done {
		t.Fatalf("unexpected todo: %+v", created.Todo)
	}

	// fetch with cookie → exactly that todo
	wr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fetch", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(wr, req)
	if wr.Code != http.StatusOK {
		t.Fatalf("fetch status=%d, body=%s", wr.Code, wr.Body.String())
	}
	var fetched struct {
		Todos []models.Todo `json:"todos"`
	}
	if err := json.Unmarshal(wr.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(fetched.Todos) != 1 || fetched.Todos[0].ID != created.Todo.ID {
		t.Fatalf("expected exactly the created todo, got %+v", fetched.Todos)
	}
}

func TestEndToEnd_FetchNeverCrossesOwners(t *testing.T) {
	r := newFullStackRouter(t)

	signupAndSignin := func(email string) *http.Cookie {
		w := postJSON(r, "/signup", `{"email":"`+email+`","password":"secret1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("signup %s status=%d", email, w.Code)
		}
		w = postJSON(r, "/signin", `{"email":"`+email+`","password":"secret1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("signin %s status=%d", email, w.Code)
		}
		return tokenCookieFrom(t, w)
	}

	cookieA := signupAndSignin("a@x.com")
	cookieB := signupAndSignin("b@x.com")

	if w := postJSON(r, "/create", `{"title":"alice task"}`, cookieA); w.Code != http.StatusCreated {
		t.Fatalf("create for A status=%d", w.Code)
	}

	wr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fetch", nil)
	req.AddCookie(cookieB)
	r.ServeHTTP(wr, req)
	if wr.Code != http.StatusOK {
		t.Fatalf("fetch for B status=%d", wr.Code)
	}

	var fetched struct {
		Todos []models.Todo `json:"todos"`
	}
	if err := json.Unmarshal(wr.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(fetched.Todos) != 0 {
		t.Fatalf("user B sees user A's todos: %+v", fetched.Todos)
	}
}

func TestEndToEnd_TamperedCookieRejected(t *testing.T) {
	r := newFullStackRouter(t)

	w := postJSON(r, "/signup", `{"email":"a@x.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status=%d", w.Code)
	}
	w = postJSON(r, "/signin", `{"email":"a@x.com","password":"secret1"}`)
	cookie := tokenCookieFrom(t, w)
	cookie.Value += "tamper"

	w = postJSON(r, "/create", `{"title":"buy milk"}`, cookie)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token: status=%d, want 401", w.Code)
	}

	// the rejected request must not have created anything
	w = postJSON(r, "/signin", `{"email":"a@x.com","password":"secret1"}`)
	good := tokenCookieFrom(t, w)
	wr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fetch", nil)
	req.AddCookie(good)
	r.ServeHTTP(wr, req)
	var fetched struct {
		Todos []models.Todo `json:"todos"`
	}
	_ = json.Unmarshal(wr.Body.Bytes(), &fetched)
	if len(fetched.Todos) != 0 {
		t.Fatalf("rejected create still mutated the store: %+v", fetched.Todos)
	}
}
