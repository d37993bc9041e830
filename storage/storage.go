// Package storage defines the gateway contract that persists tasks, users
// and the film catalog. Two backends implement it: a whole-file JSON store
// and a MongoDB store. The backend is chosen once at construction time and
// injected into the service modules.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/example/taskboard/domain/film"
	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/domain/user"
)

// ErrNotFound marks a lookup for an unknown task or user id.
var ErrNotFound = errors.New("storage: not found")

// TaskPatch is a partial task update. Nil fields are left untouched by
// the merge; the gateway returns the post-merge record.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *task.Status
	AIResponse  *string
	Details     *task.Details
	UpdatedAt   *time.Time
}

// Apply merges the patch into t in place.
func (p TaskPatch) Apply(t *task.Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.AIResponse != nil {
		t.AIResponse = *p.AIResponse
	}
	if p.Details != nil {
		t.Details = p.Details
	}
	if p.UpdatedAt != nil {
		t.UpdatedAt = *p.UpdatedAt
	}
}

// Store is the uniform persistence contract shared by both backends.
//
// Get and update operations signal an unknown id with ErrNotFound; any
// other error is an I/O or backend failure. The gateway does not validate
// uniqueness on insert: the email-uniqueness check belongs to the user
// service (check-then-insert, not atomic).
type Store interface {
	GetTask(ctx context.Context, id string) (*task.Task, error)
	GetUser(ctx context.Context, id string) (*user.User, error)
	ListTasks(ctx context.Context) ([]task.Task, error)
	ListUsers(ctx context.Context) ([]user.User, error)

	InsertTask(ctx context.Context, t *task.Task) error
	InsertUser(ctx context.Context, u *user.User) error

	// UpdateTask merges patch into the stored record and returns the
	// post-merge task, or ErrNotFound if id is unknown.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*task.Task, error)

	// DeleteTask reports whether a record existed and was removed.
	DeleteTask(ctx context.Context, id string) (bool, error)

	// AddUserToTask links a user to a task with set semantics. The exact
	// truth condition differs per backend: the MongoDB store reports true
	// whenever both entities exist (a no-op add included), the file store
	// only when the id was newly added.
	AddUserToTask(ctx context.Context, taskID, userID string) (bool, error)

	// RemoveUserFromTask reports true iff the task existed and the user
	// id was present and removed.
	RemoveUserFromTask(ctx context.Context, taskID, userID string) (bool, error)

	UserExistsByEmail(ctx context.Context, email string) (bool, error)

	AddFilms(ctx context.Context, films []film.Film) error

	// TopFilms returns up to limit films ordered by popularity descending.
	TopFilms(ctx context.Context, limit int) ([]film.Film, error)

	// SearchFilms matches the query case-insensitively as a title
	// substring or an exact genre, plus an exact year match when the
	// query is all digits, ordered by popularity descending.
	SearchFilms(ctx context.Context, query string, limit int) ([]film.Film, error)
}
