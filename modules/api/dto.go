package api

import "time"

// ErrorResponse is the wire form of a failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the wire form of the health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// CreateTaskRequest is the HTTP request body for creating a task.
type CreateTaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status,omitempty"`
	Details     *DetailsPayload `json:"details,omitempty"`
}

// UpdateTaskRequest is the HTTP request body for a partial task update.
type UpdateTaskRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *string         `json:"status,omitempty"`
	Details     *DetailsPayload `json:"details,omitempty"`
}

// DetailsPayload is the optional structured sub-record of a task.
type DetailsPayload struct {
	Priority string     `json:"priority,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// CreateUserRequest is the HTTP request body for creating a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RecommendFilmsRequest is the HTTP request body for catalog search.
type RecommendFilmsRequest struct {
	Query string `json:"query"`
}

// ChatRequest is the HTTP request body for the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// HabitPlanRequest is the HTTP request body for the habit trainer.
type HabitPlanRequest struct {
	Goal    string `json:"goal"`
	Context string `json:"context,omitempty"`
}

// EmotionRequest is the HTTP request body for emotion labelling.
type EmotionRequest struct {
	Text string `json:"text"`
}
