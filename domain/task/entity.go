package task

import "time"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known task statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority represents the urgency recorded in task details.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Details is the optional structured sub-record of a task.
type Details struct {
	Priority Priority   `json:"priority" bson:"priority"`
	DueDate  *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Notes    string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Task is the core domain entity representing a tracked unit of work.
// AIResponse is always present after creation: either generated guidance
// or an "Error: ..." marker when the upstream completion call failed.
// Users holds assigned user ids with set semantics; it is a weak reference,
// deleting a user does not clean it up.
type Task struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Status      Status    `json:"status" bson:"status"`
	AIResponse  string    `json:"ai_response" bson:"ai_response"`
	Users       []string  `json:"users" bson:"users"`
	Details     *Details  `json:"details,omitempty" bson:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
