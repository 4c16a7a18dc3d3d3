package api

import (
	"context"
	"net/http"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

// Chat sessions are scoped under their owning user:
// /api/users/{username}/sessions[/{id}].

// ListSessions returns the chat sessions of a user, newest first.
func ListSessions(ctx context.Context, httpClient *http.Client, baseURL, username string, filter types.ListSessionsFilter) ([]types.ChatSession, error) {
	var sessions []types.ChatSession
	u := withQuery(joinPath(baseURL, "users", username, "sessions"), filter.Values())
	if err := do(ctx, httpClient, "sessions.list", http.MethodGet, u, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSession retrieves a chat session by name or UID. The controller treats
// the reserved id "$last" as the caller's most recent session.
func GetSession(ctx context.Context, httpClient *http.Client, baseURL, username, id string) (*types.ChatSession, error) {
	var session types.ChatSession
	u := joinPath(baseURL, "users", username, "sessions", id)
	if err := do(ctx, httpClient, "sessions.get", http.MethodGet, u, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateSession starts a new chat session for a user.
func CreateSession(ctx context.Context, httpClient *http.Client, baseURL, username string, session types.ChatSession) (*types.ChatSession, error) {
	var created types.ChatSession
	u := joinPath(baseURL, "users", username, "sessions")
	if err := do(ctx, httpClient, "sessions.create", http.MethodPost, u, session, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSession replaces the session identified by session.Name.
func UpdateSession(ctx context.Context, httpClient *http.Client, baseURL, username string, session types.ChatSession) (*types.ChatSession, error) {
	var updated types.ChatSession
	u := joinPath(baseURL, "users", username, "sessions", session.Name)
	if err := do(ctx, httpClient, "sessions.update", http.MethodPut, u, session, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSession removes a chat session by UID.
func DeleteSession(ctx context.Context, httpClient *http.Client, baseURL, username, uid string) error {
	u := joinPath(baseURL, "users", username, "sessions", uid)
	return do(ctx, httpClient, "sessions.delete", http.MethodDelete, u, nil, nil)
}
