package api

import (
	"context"
	"net/http"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

// ListProjects returns projects matching the filter.
func ListProjects(ctx context.Context, httpClient *http.Client, baseURL string, filter types.ListFilter) ([]types.Project, error) {
	var projects []types.Project
	u := withQuery(joinPath(baseURL, "projects"), filter.Values())
	if err := do(ctx, httpClient, "projects.list", http.MethodGet, u, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject retrieves a project by name.
func GetProject(ctx context.Context, httpClient *http.Client, baseURL, name string) (*types.Project, error) {
	var project types.Project
	u := joinPath(baseURL, "projects", name)
	if err := do(ctx, httpClient, "projects.get", http.MethodGet, u, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject registers a new project.
func CreateProject(ctx context.Context, httpClient *http.Client, baseURL string, project types.Project) (*types.Project, error) {
	var created types.Project
	u := joinPath(baseURL, "projects")
	if err := do(ctx, httpClient, "projects.create", http.MethodPost, u, project, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject replaces the project identified by project.Name.
func UpdateProject(ctx context.Context, httpClient *http.Client, baseURL string, project types.Project) (*types.Project, error) {
	var updated types.Project
	u := joinPath(baseURL, "projects", project.Name)
	if err := do(ctx, httpClient, "projects.update", http.MethodPut, u, project, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject removes a project by name.
func DeleteProject(ctx context.Context, httpClient *http.Client, baseURL, name string) error {
	u := joinPath(baseURL, "projects", name)
	return do(ctx, httpClient, "projects.delete", http.MethodDelete, u, nil, nil)
}
