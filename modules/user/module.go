package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"

	domain "github.com/example/taskboard/domain/user"
	"github.com/example/taskboard/storage"
)

// UserModule provides user management services over the storage gateway.
type UserModule struct {
	store storage.Store
}

var _ mono.Module = (*UserModule)(nil)
var _ mono.ServiceProviderModule = (*UserModule)(nil)

// NewModule creates a user module with the storage gateway injected.
func NewModule(store storage.Store) *UserModule {
	return &UserModule{store: store}
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-user", json.Unmarshal, json.Marshal, m.createUser,
	); err != nil {
		return fmt.Errorf("failed to register create-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user", json.Unmarshal, json.Marshal, m.getUser,
	); err != nil {
		return fmt.Errorf("failed to register get-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-users", json.Unmarshal, json.Marshal, m.listUsers,
	); err != nil {
		return fmt.Errorf("failed to register list-users service: %w", err)
	}

	log.Printf("[user] Registered services: create-user, get-user, list-users")
	return nil
}

// createUser handles the create-user service request. The email check
// and the insert are two separate gateway calls; concurrent creates with
// the same address can race past the check.
func (m *UserModule) createUser(ctx context.Context, req CreateUserRequest, _ *mono.Msg) (CreateUserResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return CreateUserResponse{}, fmt.Errorf("username is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return CreateUserResponse{}, fmt.Errorf("invalid email: %s", req.Email)
	}

	exists, err := m.store.UserExistsByEmail(ctx, req.Email)
	if err != nil {
		return CreateUserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return CreateUserResponse{DuplicateEmail: true}, nil
	}

	newUser := &domain.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Email:    req.Email,
	}
	if err := m.store.InsertUser(ctx, newUser); err != nil {
		return CreateUserResponse{}, fmt.Errorf("failed to save user: %w", err)
	}

	return CreateUserResponse{
		User: &UserInfo{ID: newUser.ID, Username: newUser.Username, Email: newUser.Email},
	}, nil
}

// getUser handles the get-user service request.
func (m *UserModule) getUser(ctx context.Context, req GetUserRequest, _ *mono.Msg) (GetUserResponse, error) {
	u, err := m.store.GetUser(ctx, req.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return GetUserResponse{Found: false}, nil
	}
	if err != nil {
		return GetUserResponse{}, fmt.Errorf("failed to load user: %w", err)
	}
	return GetUserResponse{
		User:  &UserInfo{ID: u.ID, Username: u.Username, Email: u.Email},
		Found: true,
	}, nil
}

// listUsers handles the list-users service request.
func (m *UserModule) listUsers(ctx context.Context, _ ListUsersRequest, _ *mono.Msg) (ListUsersResponse, error) {
	users, err := m.store.ListUsers(ctx)
	if err != nil {
		return ListUsersResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	resp := ListUsersResponse{
		Users: make([]UserInfo, 0, len(users)),
		Total: len(users),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, UserInfo{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return resp, nil
}

func (m *UserModule) Start(_ context.Context) error {
	if m.store == nil {
		return fmt.Errorf("store dependency not set")
	}
	log.Println("[user] Module started")
	return nil
}

func (m *UserModule) Stop(_ context.Context) error {
	log.Println("[user] Module stopped")
	return nil
}
