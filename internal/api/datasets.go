package api

import (
	"context"
	"net/http"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

// ListDatasets returns datasets matching the filter.
func ListDatasets(ctx context.Context, httpClient *http.Client, baseURL string, filter types.ListFilter) ([]types.Dataset, error) {
	var datasets []types.Dataset
	u := withQuery(joinPath(baseURL, "datasets"), filter.Values())
	if err := do(ctx, httpClient, "datasets.list", http.MethodGet, u, nil, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// GetDataset retrieves a dataset by name.
func GetDataset(ctx context.Context, httpClient *http.Client, baseURL, name string) (*types.Dataset, error) {
	var dataset types.Dataset
	u := joinPath(baseURL, "datasets", name)
	if err := do(ctx, httpClient, "datasets.get", http.MethodGet, u, nil, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// CreateDataset registers a new dataset.
func CreateDataset(ctx context.Context, httpClient *http.Client, baseURL string, dataset types.Dataset) (*types.Dataset, error) {
	var created types.Dataset
	u := joinPath(baseURL, "datasets")
	if err := do(ctx, httpClient, "datasets.create", http.MethodPost, u, dataset, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDataset replaces the dataset identified by dataset.Name.
func UpdateDataset(ctx context.Context, httpClient *http.Client, baseURL string, dataset types.Dataset) (*types.Dataset, error) {
	var updated types.Dataset
	u := joinPath(baseURL, "datasets", dataset.Name)
	if err := do(ctx, httpClient, "datasets.update", http.MethodPut, u, dataset, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDataset removes a dataset by name.
func DeleteDataset(ctx context.Context, httpClient *http.Client, baseURL, name string) error {
	u := joinPath(baseURL, "datasets", name)
	return do(ctx, httpClient, "datasets.delete", http.MethodDelete, u, nil, nil)
}
