package handlers

import (
	"net/http"

	"todolist/internal/models"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInternal    = "internal server error"
	errMissingUser = "user id is required"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

type createTodoRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"omitempty,min=3"`
	Done        bool   `json:"done"`
}

// @Summary      Create a todo for the session user
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body  createTodoRequest  true  "Todo payload"
// @Success      201  {object}  map[string]interface{}  "message, todo"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /create [post]
// @Security     CookieAuth
func (h *Handler) createTodo(c *gin.Context) {
	var req createTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	claims, ok := sessionClaims(c)
	if !ok {
		// unreachable on the registered route; the middleware runs first
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingUser})
		return
	}

	todo, err := h.services.Todos.Create(c.Request.Context(), claims.UserID, service.CreateTodoParams{
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "todo_create_failed", err, "user_id", claims.UserID)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "todo created successfully",
		"todo":    todo,
	})
}

// @Summary      List the session user's todos
// @Tags         todos
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "message, todos"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /fetch [get]
// @Security     CookieAuth
func (h *Handler) fetchTodos(c *gin.Context) {
	claims, ok := sessionClaims(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingUser})
		return
	}

	todos, err := h.services.Todos.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "todo_fetch_failed", err, "user_id", claims.UserID)
		return
	}
	if todos == nil {
		// serialize as [] rather than null
		todos = []models.Todo{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "todos fetched successfully",
		"todos":   todos,
	})
}
