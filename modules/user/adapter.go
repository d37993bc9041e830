package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// userAdapter wraps ServiceContainer for type-safe cross-module calls.
// It implements the UserPort interface.
type userAdapter struct {
	container mono.ServiceContainer
}

// NewUserAdapter creates an adapter for the user services.
func NewUserAdapter(container mono.ServiceContainer) UserPort {
	if container == nil {
		panic("user adapter requires non-nil ServiceContainer")
	}
	return &userAdapter{container: container}
}

func (a *userAdapter) CreateUser(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	var resp CreateUserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-user", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-user service call failed: %w", err)
	}
	return &resp, nil
}

func (a *userAdapter) GetUser(ctx context.Context, userID string) (*GetUserResponse, error) {
	req := GetUserRequest{UserID: userID}
	var resp GetUserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-user", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-user service call failed: %w", err)
	}
	return &resp, nil
}

func (a *userAdapter) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	req := ListUsersRequest{}
	var resp ListUsersResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-users", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-users service call failed: %w", err)
	}
	return &resp, nil
}
