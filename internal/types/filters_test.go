package types

import "testing"

func TestListUsersFilter_Values(t *testing.T) {
	t.Parallel()
	v := ListUsersFilter{Email: "u@example.com", Mode: OutputModeShort}.Values()
	if v.Get("email") != "u@example.com" || v.Get("mode") != "short" {
		t.Fatalf("unexpected values: %v", v)
	}
	if _, ok := v["full_name"]; ok {
		t.Fatal("empty fields must be omitted")
	}
}

func TestListSessionsFilter_Values(t *testing.T) {
	t.Parallel()
	if v := (ListSessionsFilter{}).Values(); len(v) != 0 {
		t.Fatalf("zero filter must encode empty, got %v", v)
	}
	v := ListSessionsFilter{Last: 3, CreatedAfter: "2026-01-01T00:00:00Z"}.Values()
	if v.Get("last") != "3" || v.Get("created") != "2026-01-01T00:00:00Z" {
		t.Fatalf("unexpected values: %v", v)
	}
}

func TestListWorkflowsFilter_Values(t *testing.T) {
	t.Parallel()
	v := ListWorkflowsFilter{Name: "default", WorkflowType: WorkflowTypeVector}.Values()
	if v.Get("name") != "default" || v.Get("workflow_type") != "vector" {
		t.Fatalf("unexpected values: %v", v)
	}
}

func TestListFilter_Values(t *testing.T) {
	t.Parallel()
	v := ListFilter{Project: "proj1", Version: "v1"}.Values()
	if v.Get("project_id") != "proj1" || v.Get("version") != "v1" {
		t.Fatalf("unexpected values: %v", v)
	}
}
