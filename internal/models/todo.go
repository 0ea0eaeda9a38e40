package models

// Todo is a task record owned by exactly one user.
type Todo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Done        bool   `json:"done"`
	UserID      int    `json:"userId"`
}
