package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service, handled *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.sessionMiddleware, func(c *gin.Context) {
		if handled != nil {
			*handled++
		}
		claims, _ := sessionClaims(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": claims.UserID, "email": claims.Email})
	})
	return r
}

func TestSessionMiddleware_RejectionsShortCircuit(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name     string
		cookie   *http.Cookie
		parseErr error
		want     want
	}{
		{
			name:   "missing cookie",
			cookie: nil,
			want:   want{code: http.StatusUnauthorized, errMsg: "access denied: no token provided"},
		},
		{
			name:   "empty cookie value",
			cookie: &http.Cookie{Name: sessionCookieName, Value: ""},
			want:   want{code: http.StatusUnauthorized, errMsg: "access denied: no token provided"},
		},
		{
			name:     "invalid token",
			cookie:   &http.Cookie{Name: sessionCookieName, Value: "tampered"},
			parseErr: errors.New("signature is invalid"),
			want:     want{code: http.StatusUnauthorized, errMsg: "invalid token"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseErr: tc.parseErr}
			var handled int
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth}, &handled)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want.code, w.Body.String())
			}
			// the rejection must halt the chain: handler body never runs
			if handled != 0 {
				t.Fatalf("protected handler ran %d times after rejection", handled)
			}

			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.want.errMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.want.errMsg)
			}
		})
	}
}

func TestSessionMiddleware_SuccessAttachesClaims(t *testing.T) {
	auth := &mockAuth{parseRes: claimsFor(123, "a@x.com")}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "good-token"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool   `json:"ok"`
		UserID int    `json:"userId"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != 123 || resp.Email != "a@x.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastParseToken != "good-token" {
		t.Fatalf("ParseToken got %q, want %q", auth.lastParseToken, "good-token")
	}
}
