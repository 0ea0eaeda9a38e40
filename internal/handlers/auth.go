package handlers

import (
	"errors"
	"net/http"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "token"

type signUpRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"omitempty,min=3"`
	LastName  string `json:"lastName" binding:"omitempty,min=3"`
	Password  string `json:"password" binding:"required,min=6"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// setSessionCookie installs the token cookie. Not marked Secure: the service
// is assumed to sit behind TLS termination; revisit if exposed directly.
func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", false, true)
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signUpRequest  true  "Signup payload"
// @Success      201  {object}  map[string]interface{}  "message, user"
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	user, err := h.services.Authorization.SignUp(c.Request.Context(), service.SignUpParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already exists"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "sign_up_failed", err, "email", req.Email)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
		"user":    user,
	})
}

// @Summary      Sign in and receive a session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signInRequest  true  "Signin payload"
// @Success      200  {object}  map[string]interface{}  "message, user"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	user, token, err := h.services.Authorization.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("sign_in_rejected", "email", req.Email)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "sign_in_failed", err, "email", req.Email)
		return
	}

	h.setSessionCookie(c, token, int(h.services.Authorization.TokenTTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message": "sign in successful",
		"user":    user,
	})
}

// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /logout [post]
// @Security     CookieAuth
func (h *Handler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "logout successful",
	})
}
