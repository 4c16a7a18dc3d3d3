package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkerrors "github.com/genai-factory/genai-factory/client/internal/errors"
	"github.com/genai-factory/genai-factory/client/internal/types"
)

func TestGetWorkflow_EmptyNameSelectsDefault(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/projects/proj1/workflows" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "default" {
			t.Fatalf("expected name=default, got %q", got)
		}
		wf := types.Workflow{WorkflowType: types.WorkflowTypeVector}
		wf.Name = "default"
		writeEnvelope(t, w, []types.Workflow{wf})
	}))
	defer srv.Close()

	wf, err := GetWorkflow(context.Background(), srv.Client(), srv.URL, "proj1", "")
	if err != nil {
		t.Fatalf("GetWorkflow error: %v", err)
	}
	if wf.Name != "default" {
		t.Fatalf("unexpected workflow: %+v", wf)
	}
}

func TestGetWorkflow_NoMatchIsNotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, []types.Workflow{})
	}))
	defer srv.Close()

	_, err := GetWorkflow(context.Background(), srv.Client(), srv.URL, "proj1", "missing")
	if !errors.Is(err, sdkerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListWorkflows_Filters(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("workflow_type") != "vector" || q.Get("version") != "v2" {
			t.Fatalf("unexpected query: %v", q)
		}
		writeEnvelope(t, w, []types.Workflow{})
	}))
	defer srv.Close()

	filter := types.ListWorkflowsFilter{Version: "v2", WorkflowType: types.WorkflowTypeVector}
	if _, err := ListWorkflows(context.Background(), srv.Client(), srv.URL, "proj1", filter); err != nil {
		t.Fatalf("ListWorkflows error: %v", err)
	}
}

func TestInferWorkflow_PostsQuery(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/projects/proj1/workflows/wf-uid-1/infer" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var q types.QueryItem
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			t.Fatalf("decode query: %v", err)
		}
		if q.Question != "what is a vault?" || q.SessionID != "s1" {
			t.Fatalf("unexpected query: %+v", q)
		}
		writeEnvelope(t, w, types.QueryResult{Answer: "a secure store", Sources: []string{"doc1"}})
	}))
	defer srv.Close()

	res, err := InferWorkflow(context.Background(), srv.Client(), srv.URL, "proj1", "wf-uid-1", types.QueryItem{
		Question:  "what is a vault?",
		SessionID: "s1",
	})
	if err != nil {
		t.Fatalf("InferWorkflow error: %v", err)
	}
	if res.Answer != "a secure store" || len(res.Sources) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCreateWorkflow_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/projects/proj1/workflows" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var got types.Workflow
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeEnvelope(t, w, got)
	}))
	defer srv.Close()

	wf := types.Workflow{WorkflowType: types.WorkflowTypeRelational}
	wf.Name = "etl"
	if _, err := CreateWorkflow(context.Background(), srv.Client(), srv.URL, "proj1", wf); err != nil {
		t.Fatalf("CreateWorkflow error: %v", err)
	}
}

func TestDeleteWorkflow_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/projects/proj1/workflows/etl" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	if err := DeleteWorkflow(context.Background(), srv.Client(), srv.URL, "proj1", "etl"); err != nil {
		t.Fatalf("DeleteWorkflow error: %v", err)
	}
}
