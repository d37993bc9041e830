// Package jsonfile implements the storage gateway on a single JSON
// document on disk. Every operation loads the whole document, mutates an
// in-memory copy, and rewrites the file at most once.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/example/taskboard/domain/film"
	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/domain/user"
	"github.com/example/taskboard/storage"
)

// document is the on-disk layout: named arrays of entity records.
type document struct {
	Tasks []task.Task `json:"tasks"`
	Users []user.User `json:"users"`
	Films []film.Film `json:"films,omitempty"`
}

// Store persists everything in one JSON file.
//
// A process-local mutex serializes calls so two goroutines cannot both
// load the same pre-mutation snapshot and lose an update on rewrite. The
// file itself is still unlocked: a second process writing the same path
// races and the last rewrite wins.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ storage.Store = (*Store)(nil)

// New creates a store backed by the JSON document at path. The file is
// created lazily on the first write.
func New(path string) *Store {
	return &Store{path: path}
}

// load reads the whole document. A missing or unreadable file yields an
// empty document rather than an error, so a fresh path starts clean.
func (s *Store) load() *document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return &document{}
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return &document{}
	}
	return &doc
}

// save rewrites the whole document.
func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) GetTask(_ context.Context, id string) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if t := findTask(doc, id); t != nil {
		copied := *t
		return &copied, nil
	}
	return nil, storage.ErrNotFound
}

func (s *Store) GetUser(_ context.Context, id string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if u := findUser(doc, id); u != nil {
		copied := *u
		return &copied, nil
	}
	return nil, storage.ErrNotFound
}

func (s *Store) ListTasks(_ context.Context) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	tasks := make([]task.Task, len(doc.Tasks))
	copy(tasks, doc.Tasks)
	return tasks, nil
}

func (s *Store) ListUsers(_ context.Context) ([]user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	users := make([]user.User, len(doc.Users))
	copy(users, doc.Users)
	return users, nil
}

func (s *Store) InsertTask(_ context.Context, t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	doc.Tasks = append(doc.Tasks, *t)
	return s.save(doc)
}

func (s *Store) InsertUser(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	doc.Users = append(doc.Users, *u)
	return s.save(doc)
}

func (s *Store) UpdateTask(_ context.Context, id string, patch storage.TaskPatch) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	t := findTask(doc, id)
	if t == nil {
		return nil, storage.ErrNotFound
	}
	patch.Apply(t)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	copied := *t
	return &copied, nil
}

func (s *Store) DeleteTask(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	kept := doc.Tasks[:0]
	for _, t := range doc.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) < len(doc.Tasks)
	doc.Tasks = kept
	if !removed {
		return false, nil
	}
	if err := s.save(doc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) AddUserToTask(_ context.Context, taskID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	t := findTask(doc, taskID)
	if t == nil || findUser(doc, userID) == nil {
		return false, nil
	}
	for _, id := range t.Users {
		if id == userID {
			// Already assigned: set semantics make this a no-op.
			return false, nil
		}
	}
	t.Users = append(t.Users, userID)
	if err := s.save(doc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) RemoveUserFromTask(_ context.Context, taskID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	t := findTask(doc, taskID)
	if t == nil {
		return false, nil
	}
	for i, id := range t.Users {
		if id == userID {
			t.Users = append(t.Users[:i], t.Users[i+1:]...)
			if err := s.save(doc); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UserExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	for _, u := range doc.Users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) AddFilms(_ context.Context, films []film.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	doc.Films = append(doc.Films, films...)
	return s.save(doc)
}

func (s *Store) TopFilms(_ context.Context, limit int) ([]film.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	return film.TopByPopularity(doc.Films, limit), nil
}

func (s *Store) SearchFilms(_ context.Context, query string, limit int) ([]film.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]film.Film, 0, len(doc.Films))
	for _, f := range doc.Films {
		if filmMatches(f, q) {
			matched = append(matched, f)
		}
	}
	return film.TopByPopularity(matched, limit), nil
}

// filmMatches mirrors the MongoDB search filter: case-insensitive title
// substring, exact case-insensitive genre, or exact year for all-digit
// queries.
func filmMatches(f film.Film, q string) bool {
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(f.Title), q) {
		return true
	}
	if q == strings.ToLower(f.Genre) {
		return true
	}
	if year, ok := parseYear(q); ok && year == f.Year {
		return true
	}
	return false
}

func parseYear(q string) (int, bool) {
	year := 0
	for _, r := range q {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	return year, true
}

func findTask(doc *document, id string) *task.Task {
	for i := range doc.Tasks {
		if doc.Tasks[i].ID == id {
			return &doc.Tasks[i]
		}
	}
	return nil
}

func findUser(doc *document, id string) *user.User {
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return &doc.Users[i]
		}
	}
	return nil
}
