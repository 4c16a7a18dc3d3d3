package api

import (
	"context"
	"net/http"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

// ListModels returns models matching the filter.
func ListModels(ctx context.Context, httpClient *http.Client, baseURL string, filter types.ListFilter) ([]types.Model, error) {
	var models []types.Model
	u := withQuery(joinPath(baseURL, "models"), filter.Values())
	if err := do(ctx, httpClient, "models.list", http.MethodGet, u, nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// GetModel retrieves a model by name.
func GetModel(ctx context.Context, httpClient *http.Client, baseURL, name string) (*types.Model, error) {
	var model types.Model
	u := joinPath(baseURL, "models", name)
	if err := do(ctx, httpClient, "models.get", http.MethodGet, u, nil, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// CreateModel registers a new model.
func CreateModel(ctx context.Context, httpClient *http.Client, baseURL string, model types.Model) (*types.Model, error) {
	var created types.Model
	u := joinPath(baseURL, "models")
	if err := do(ctx, httpClient, "models.create", http.MethodPost, u, model, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateModel replaces the model identified by model.Name.
func UpdateModel(ctx context.Context, httpClient *http.Client, baseURL string, model types.Model) (*types.Model, error) {
	var updated types.Model
	u := joinPath(baseURL, "models", model.Name)
	if err := do(ctx, httpClient, "models.update", http.MethodPut, u, model, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteModel removes a model by name.
func DeleteModel(ctx context.Context, httpClient *http.Client, baseURL, name string) error {
	u := joinPath(baseURL, "models", name)
	return do(ctx, httpClient, "models.delete", http.MethodDelete, u, nil, nil)
}
