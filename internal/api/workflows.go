package api

import (
	"context"
	"fmt"
	"net/http"

	sdkerrors "github.com/genai-factory/genai-factory/client/internal/errors"
	"github.com/genai-factory/genai-factory/client/internal/types"
)

// Workflows live under their project: /api/projects/{project}/workflows.

// DefaultWorkflowName is used by GetWorkflow when no name is given.
const DefaultWorkflowName = "default"

// ListWorkflows returns the workflows of a project matching the filter.
func ListWorkflows(ctx context.Context, httpClient *http.Client, baseURL, project string, filter types.ListWorkflowsFilter) ([]types.Workflow, error) {
	var workflows []types.Workflow
	u := withQuery(joinPath(baseURL, "projects", project, "workflows"), filter.Values())
	if err := do(ctx, httpClient, "workflows.list", http.MethodGet, u, nil, &workflows); err != nil {
		return nil, err
	}
	return workflows, nil
}

// GetWorkflow resolves a single workflow by name via the list endpoint's name
// filter. An empty name selects DefaultWorkflowName.
func GetWorkflow(ctx context.Context, httpClient *http.Client, baseURL, project, name string) (*types.Workflow, error) {
	if name == "" {
		name = DefaultWorkflowName
	}
	workflows, err := ListWorkflows(ctx, httpClient, baseURL, project, types.ListWorkflowsFilter{Name: name})
	if err != nil {
		return nil, err
	}
	if len(workflows) == 0 {
		return nil, fmt.Errorf("workflow %q in project %q: %w", name, project, sdkerrors.ErrNotFound)
	}
	return &workflows[0], nil
}

// CreateWorkflow registers a new workflow in a project.
func CreateWorkflow(ctx context.Context, httpClient *http.Client, baseURL, project string, workflow types.Workflow) (*types.Workflow, error) {
	var created types.Workflow
	u := joinPath(baseURL, "projects", project, "workflows")
	if err := do(ctx, httpClient, "workflows.create", http.MethodPost, u, workflow, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWorkflow replaces the workflow identified by workflow.Name.
func UpdateWorkflow(ctx context.Context, httpClient *http.Client, baseURL, project string, workflow types.Workflow) (*types.Workflow, error) {
	var updated types.Workflow
	u := joinPath(baseURL, "projects", project, "workflows", workflow.Name)
	if err := do(ctx, httpClient, "workflows.update", http.MethodPut, u, workflow, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteWorkflow removes a workflow by name.
func DeleteWorkflow(ctx context.Context, httpClient *http.Client, baseURL, project, name string) error {
	u := joinPath(baseURL, "projects", project, "workflows", name)
	return do(ctx, httpClient, "workflows.delete", http.MethodDelete, u, nil, nil)
}

// InferWorkflow submits a query to a deployed workflow and returns its
// answer. The workflow is addressed by UID, matching the controller's infer
// route.
func InferWorkflow(ctx context.Context, httpClient *http.Client, baseURL, projectID, workflowID string, query types.QueryItem) (*types.QueryResult, error) {
	var result types.QueryResult
	u := joinPath(baseURL, "projects", projectID, "workflows", workflowID, "infer")
	if err := do(ctx, httpClient, "workflows.infer", http.MethodPost, u, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
