// Package mongodb implements the storage gateway on MongoDB. Each entity
// type lives in its own collection; relationship edits are expressed as
// atomic set operations on a single task document.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/example/taskboard/domain/film"
	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/domain/user"
	"github.com/example/taskboard/storage"
)

// Collection names used by the store.
const (
	tasksCollection = "tasks"
	usersCollection = "users"
	filmsCollection = "films"
)

// Store persists entities in per-type MongoDB collections. Single-document
// mutations are atomic; there are no cross-document transactions, so a
// relationship edit racing a task delete is not serialized.
type Store struct {
	client *mongo.Client
	tasks  *mongo.Collection
	users  *mongo.Collection
	films  *mongo.Collection
}

var _ storage.Store = (*Store)(nil)

// Dial connects to MongoDB and returns a store bound to dbName.
func Dial(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return NewStore(client, dbName), nil
}

// NewStore wraps an existing client connection.
func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		client: client,
		tasks:  db.Collection(tasksCollection),
		users:  db.Collection(usersCollection),
		films:  db.Collection(filmsCollection),
	}
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) GetTask(ctx context.Context, id string) (*task.Task, error) {
	var t task.Task
	err := s.tasks.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task %s: %w", id, err)
	}
	return &t, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := s.users.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &u, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]task.Task, error) {
	cursor, err := s.tasks.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	var tasks []task.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]user.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var users []user.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *Store) InsertTask(ctx context.Context, t *task.Task) error {
	if _, err := s.tasks.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *Store) InsertUser(ctx context.Context, u *user.User) error {
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, patch storage.TaskPatch) (*task.Task, error) {
	set := setFields(patch)
	if len(set) == 0 {
		return s.GetTask(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t task.Task
	err := s.tasks.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	res, err := s.tasks.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete task %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (s *Store) AddUserToTask(ctx context.Context, taskID, userID string) (bool, error) {
	exists, err := s.userExists(ctx, userID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	// $addToSet keeps the users list duplicate-free; a no-op add on an
	// existing task still counts as success.
	res, err := s.tasks.UpdateOne(ctx,
		bson.M{"id": taskID},
		bson.M{"$addToSet": bson.M{"users": userID}},
	)
	if err != nil {
		return false, fmt.Errorf("assign user %s to task %s: %w", userID, taskID, err)
	}
	return res.MatchedCount > 0, nil
}

func (s *Store) RemoveUserFromTask(ctx context.Context, taskID, userID string) (bool, error) {
	res, err := s.tasks.UpdateOne(ctx,
		bson.M{"id": taskID},
		bson.M{"$pull": bson.M{"users": userID}},
	)
	if err != nil {
		return false, fmt.Errorf("unassign user %s from task %s: %w", userID, taskID, err)
	}
	return res.ModifiedCount > 0, nil
}

func (s *Store) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

func (s *Store) AddFilms(ctx context.Context, films []film.Film) error {
	if len(films) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(films))
	for i := range films {
		docs = append(docs, films[i])
	}
	if _, err := s.films.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert films: %w", err)
	}
	return nil
}

func (s *Store) TopFilms(ctx context.Context, limit int) ([]film.Film, error) {
	return s.findFilms(ctx, bson.M{}, limit)
}

func (s *Store) SearchFilms(ctx context.Context, query string, limit int) ([]film.Film, error) {
	filter := filmFilter(query)
	if filter == nil {
		return []film.Film{}, nil
	}
	return s.findFilms(ctx, filter, limit)
}

func (s *Store) findFilms(ctx context.Context, filter interface{}, limit int) ([]film.Film, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "popularity", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.films.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find films: %w", err)
	}
	var films []film.Film
	if err := cursor.All(ctx, &films); err != nil {
		return nil, fmt.Errorf("decode films: %w", err)
	}
	return films, nil
}

func (s *Store) userExists(ctx context.Context, id string) (bool, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("count users by id: %w", err)
	}
	return count > 0, nil
}
