package handlers

import (
	"net/http"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// claimsCtxKey is where sessionMiddleware stores the verified claims in the
// gin context.
const claimsCtxKey = "sessionClaims"

// sessionMiddleware is the trust boundary for protected routes: it extracts
// the token cookie, verifies it, and attaches the decoded claims. Every
// rejection aborts the chain so the handler body never runs.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "access denied: no token provided",
		})
		return
	}

	claims, err := h.services.Authorization.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("session_token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid token",
		})
		return
	}

	c.Set(claimsCtxKey, claims)
	c.Next()
}

// sessionClaims returns the claims attached by sessionMiddleware. The second
// result is false only if the middleware did not run, which on a protected
// route means a wiring bug.
func sessionClaims(c *gin.Context) (*service.Claims, bool) {
	v, ok := c.Get(claimsCtxKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok
}
