package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

func TestCreateSession_PostsUnderUser(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/alice/sessions" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var got types.ChatSession
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got.Name != "s1" || got.WorkflowID != "wf1" {
			t.Fatalf("unexpected session payload: %+v", got)
		}
		writeEnvelope(t, w, got)
	}))
	defer srv.Close()

	in := types.ChatSession{WorkflowID: "wf1"}
	in.Name = "s1"
	created, err := CreateSession(context.Background(), srv.Client(), srv.URL, "alice", in)
	if err != nil {
		t.Fatalf("CreateSession error: %v", err)
	}
	if created.Name != "s1" {
		t.Fatalf("unexpected session: %+v", created)
	}
}

func TestListSessions_LastFilter(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/alice/sessions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("last"); got != "5" {
			t.Fatalf("unexpected last filter: %q", got)
		}
		writeEnvelope(t, w, []types.ChatSession{})
	}))
	defer srv.Close()

	if _, err := ListSessions(context.Background(), srv.Client(), srv.URL, "alice", types.ListSessionsFilter{Last: 5}); err != nil {
		t.Fatalf("ListSessions error: %v", err)
	}
}

func TestGetSession_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/users/alice/sessions/s1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		s := types.ChatSession{WorkflowID: "wf1", History: []types.Message{{Role: types.RoleHuman, Body: "hi"}}}
		s.Name = "s1"
		writeEnvelope(t, w, s)
	}))
	defer srv.Close()

	s, err := GetSession(context.Background(), srv.Client(), srv.URL, "alice", "s1")
	if err != nil {
		t.Fatalf("GetSession error: %v", err)
	}
	if len(s.History) != 1 || s.History[0].Body != "hi" {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestUpdateSession_PutsToNamePath(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/users/alice/sessions/s1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var got types.ChatSession
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeEnvelope(t, w, got)
	}))
	defer srv.Close()

	in := types.ChatSession{WorkflowID: "wf1"}
	in.Name = "s1"
	if _, err := UpdateSession(context.Background(), srv.Client(), srv.URL, "alice", in); err != nil {
		t.Fatalf("UpdateSession error: %v", err)
	}
}

func TestDeleteSession_UsesUID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/users/alice/sessions/u123" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	if err := DeleteSession(context.Background(), srv.Client(), srv.URL, "alice", "u123"); err != nil {
		t.Fatalf("DeleteSession error: %v", err)
	}
}

func TestSessions_EscapedUsername(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Raw path must keep the escaped form; a bare / would change the route.
		if r.URL.EscapedPath() != "/api/users/a%2Fb/sessions" {
			t.Fatalf("unexpected escaped path: %s", r.URL.EscapedPath())
		}
		writeEnvelope(t, w, []types.ChatSession{})
	}))
	defer srv.Close()

	if _, err := ListSessions(context.Background(), srv.Client(), srv.URL, "a/b", types.ListSessionsFilter{}); err != nil {
		t.Fatalf("ListSessions error: %v", err)
	}
}
