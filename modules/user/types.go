package user

import "context"

// UserInfo is the wire form of a user record.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserRequest is the request for creating a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserResponse carries the created user, or the duplicate-email
// marker when the address is already taken.
type CreateUserResponse struct {
	User           *UserInfo `json:"user,omitempty"`
	DuplicateEmail bool      `json:"duplicate_email"`
}

// GetUserRequest is the request for getting a user.
type GetUserRequest struct {
	UserID string `json:"user_id"`
}

// GetUserResponse reports the user when the id is known.
type GetUserResponse struct {
	User  *UserInfo `json:"user,omitempty"`
	Found bool      `json:"found"`
}

// ListUsersRequest is the request for listing all users.
type ListUsersRequest struct{}

// ListUsersResponse is the response for listing users.
type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
	Total int        `json:"total"`
}

// UserPort is the contract driving adapters use to reach the user
// services.
type UserPort interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error)
	GetUser(ctx context.Context, userID string) (*GetUserResponse, error)
	ListUsers(ctx context.Context) (*ListUsersResponse, error)
}
