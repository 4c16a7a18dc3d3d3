package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/genai-factory/genai-factory/client"
)

func TestClient_CreateSession_Success(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/alice/sessions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var in client.ChatSession
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if in.Name != "support-chat" || in.WorkflowID != "wf1" {
			t.Errorf("unexpected payload %+v", in)
		}
		in.UID = "s1"
		out, _ := json.Marshal(in)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":` + string(out) + `}`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	session, err := c.CreateSession(context.Background(), "alice", client.ChatSession{
		Metadata:   client.Metadata{Name: "support-chat"},
		WorkflowID: "wf1",
	})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if session.UID != "s1" || session.Name != "support-chat" {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestClient_ListSessions_LastFilter(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/alice/sessions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("last"); got != "5" {
			t.Errorf("last = %q", got)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[{"name":"s-a","workflow_id":"wf1"},{"name":"s-b","workflow_id":"wf1"}]}`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	sessions, err := c.ListSessions(context.Background(), "alice", client.ListSessionsFilter{Last: 5})
	if err != nil {
		t.Fatalf("ListSessions returned error: %v", err)
	}
	if len(sessions) != 2 || sessions[0].Name != "s-a" {
		t.Fatalf("unexpected sessions %+v", sessions)
	}
}

func TestClient_GetSession_WithHistory(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/users/alice/sessions/s1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{
            "success": true,
            "data": {
                "uid":"s1","name":"support-chat","workflow_id":"wf1",
                "history":[
                    {"role":"Human","body":"hello"},
                    {"role":"AI","body":"hi there","sources":["doc1"]}
                ]
            }
        }`))
	}))
	defer hs.Close()

	c, err := client.New(hs.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	session, err := c.GetSession(context.Background(), "alice", "s1")
	if err != nil {
		t.Fatalf("GetSession returned error: %v", err)
	}
	if len(session.History) != 2 {
		t.Fatalf("unexpected history %+v", session.History)
	}
	if session.History[0].Role != client.RoleHuman || session.History[1].Role != client.RoleAI {
		t.Fatalf("unexpected roles %+v", session.History)
	}
}

func TestClient_DeleteSession_Success(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/alice/sessions/s1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if err := c.DeleteSession(context.Background(), "alice", "s1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
}
