package api

import (
	"context"
	"net/http"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

// ListUsers returns users matching the filter.
func ListUsers(ctx context.Context, httpClient *http.Client, baseURL string, filter types.ListUsersFilter) ([]types.User, error) {
	var users []types.User
	u := withQuery(joinPath(baseURL, "users"), filter.Values())
	if err := do(ctx, httpClient, "users.list", http.MethodGet, u, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a user by username.
func GetUser(ctx context.Context, httpClient *http.Client, baseURL, username string) (*types.User, error) {
	var user types.User
	u := joinPath(baseURL, "users", username)
	if err := do(ctx, httpClient, "users.get", http.MethodGet, u, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new user.
func CreateUser(ctx context.Context, httpClient *http.Client, baseURL string, user types.User) (*types.User, error) {
	var created types.User
	u := joinPath(baseURL, "users")
	if err := do(ctx, httpClient, "users.create", http.MethodPost, u, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser replaces the user identified by user.Name.
func UpdateUser(ctx context.Context, httpClient *http.Client, baseURL string, user types.User) (*types.User, error) {
	var updated types.User
	u := joinPath(baseURL, "users", user.Name)
	if err := do(ctx, httpClient, "users.update", http.MethodPut, u, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes a user by username.
func DeleteUser(ctx context.Context, httpClient *http.Client, baseURL, username string) error {
	u := joinPath(baseURL, "users", username)
	return do(ctx, httpClient, "users.delete", http.MethodDelete, u, nil, nil)
}
