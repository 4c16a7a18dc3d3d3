package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

func TestDataSources_HyphenatedRoute(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data-sources/pg-main" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		ds := types.DataSource{DataSourceType: types.DataSourceTypeRelational}
		ds.Name = "pg-main"
		writeEnvelope(t, w, ds)
	}))
	defer srv.Close()

	ds, err := GetDataSource(context.Background(), srv.Client(), srv.URL, "pg-main")
	if err != nil {
		t.Fatalf("GetDataSource error: %v", err)
	}
	if ds.DataSourceType != types.DataSourceTypeRelational {
		t.Fatalf("unexpected data source: %+v", ds)
	}
}

func TestListDataSources_ProjectFilter(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data-sources" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("project_id"); got != "proj1" {
			t.Fatalf("unexpected project filter: %q", got)
		}
		writeEnvelope(t, w, []types.DataSource{})
	}))
	defer srv.Close()

	if _, err := ListDataSources(context.Background(), srv.Client(), srv.URL, types.ListFilter{Project: "proj1"}); err != nil {
		t.Fatalf("ListDataSources error: %v", err)
	}
}
