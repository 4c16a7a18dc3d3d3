package api

import (
	"context"
	"net/http"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

// ListPromptTemplates returns prompt templates matching the filter.
func ListPromptTemplates(ctx context.Context, httpClient *http.Client, baseURL string, filter types.ListFilter) ([]types.PromptTemplate, error) {
	var templates []types.PromptTemplate
	u := withQuery(joinPath(baseURL, "prompt-templates"), filter.Values())
	if err := do(ctx, httpClient, "prompts.list", http.MethodGet, u, nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// GetPromptTemplate retrieves a prompt template by name.
func GetPromptTemplate(ctx context.Context, httpClient *http.Client, baseURL, name string) (*types.PromptTemplate, error) {
	var template types.PromptTemplate
	u := joinPath(baseURL, "prompt-templates", name)
	if err := do(ctx, httpClient, "prompts.get", http.MethodGet, u, nil, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// CreatePromptTemplate registers a new prompt template.
func CreatePromptTemplate(ctx context.Context, httpClient *http.Client, baseURL string, template types.PromptTemplate) (*types.PromptTemplate, error) {
	var created types.PromptTemplate
	u := joinPath(baseURL, "prompt-templates")
	if err := do(ctx, httpClient, "prompts.create", http.MethodPost, u, template, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePromptTemplate replaces the template identified by template.Name.
func UpdatePromptTemplate(ctx context.Context, httpClient *http.Client, baseURL string, template types.PromptTemplate) (*types.PromptTemplate, error) {
	var updated types.PromptTemplate
	u := joinPath(baseURL, "prompt-templates", template.Name)
	if err := do(ctx, httpClient, "prompts.update", http.MethodPut, u, template, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePromptTemplate removes a prompt template by name.
func DeletePromptTemplate(ctx context.Context, httpClient *http.Client, baseURL, name string) error {
	u := joinPath(baseURL, "prompt-templates", name)
	return do(ctx, httpClient, "prompts.delete", http.MethodDelete, u, nil, nil)
}
