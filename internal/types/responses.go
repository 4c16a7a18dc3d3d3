package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// APIResponse is the uniform controller envelope. Data holds the typed
// payload when Success is true; Error holds the server message otherwise.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// QueryResult is the answer returned by a workflow inference call.
type QueryResult struct {
	Answer    string   `json:"answer"`
	Sources   []string `json:"sources,omitempty"`
	SessionID string   `json:"session_id,omitempty"`
}
