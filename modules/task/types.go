package task

import (
	"context"
	"time"
)

// Augmenter is the boundary to the AI augmentation client. Complete
// always yields a text payload; upstream failures arrive as
// "Error: ..." strings, never as errors.
type Augmenter interface {
	Complete(ctx context.Context, prompt string) string
}

// DetailsPayload carries the optional structured sub-record of a task.
type DetailsPayload struct {
	Priority string     `json:"priority,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status,omitempty"`
	Details     *DetailsPayload `json:"details,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// GetTaskResponse reports the task when the id is known.
type GetTaskResponse struct {
	Task  *TaskResponse `json:"task,omitempty"`
	Found bool          `json:"found"`
}

// ListTasksRequest is the request for listing all tasks.
type ListTasksRequest struct{}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateTaskRequest is a partial update: nil fields are left untouched.
type UpdateTaskRequest struct {
	TaskID      string          `json:"task_id"`
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *string         `json:"status,omitempty"`
	Details     *DetailsPayload `json:"details,omitempty"`
}

// UpdateTaskResponse reports the post-merge task when the id is known.
type UpdateTaskResponse struct {
	Task  *TaskResponse `json:"task,omitempty"`
	Found bool          `json:"found"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse reports whether a record existed and was removed.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// AssignUserRequest is the request for linking a user to a task.
type AssignUserRequest struct {
	TaskID string `json:"task_id"`
	UserID string `json:"user_id"`
}

// AssignUserResponse reports whether the assignment took effect.
type AssignUserResponse struct {
	Assigned bool `json:"assigned"`
}

// UnassignUserRequest is the request for unlinking a user from a task.
type UnassignUserRequest struct {
	TaskID string `json:"task_id"`
	UserID string `json:"user_id"`
}

// UnassignUserResponse reports whether the user was present and removed.
type UnassignUserResponse struct {
	Removed bool `json:"removed"`
}

// TaskResponse is the wire form of a task record.
type TaskResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	AIResponse  string          `json:"ai_response"`
	Users       []string        `json:"users"`
	Details     *DetailsPayload `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TaskPort is the contract driving adapters use to reach the task
// services.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID string) (*GetTaskResponse, error)
	ListTasks(ctx context.Context) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*UpdateTaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) (*DeleteTaskResponse, error)
	AssignUser(ctx context.Context, taskID, userID string) (*AssignUserResponse, error)
	UnassignUser(ctx context.Context, taskID, userID string) (*UnassignUserResponse, error)
}
