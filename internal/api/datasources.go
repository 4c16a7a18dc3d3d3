package api

import (
	"context"
	"net/http"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

// ListDataSources returns data sources matching the filter.
func ListDataSources(ctx context.Context, httpClient *http.Client, baseURL string, filter types.ListFilter) ([]types.DataSource, error) {
	var sources []types.DataSource
	u := withQuery(joinPath(baseURL, "data-sources"), filter.Values())
	if err := do(ctx, httpClient, "datasources.list", http.MethodGet, u, nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// GetDataSource retrieves a data source by name.
func GetDataSource(ctx context.Context, httpClient *http.Client, baseURL, name string) (*types.DataSource, error) {
	var source types.DataSource
	u := joinPath(baseURL, "data-sources", name)
	if err := do(ctx, httpClient, "datasources.get", http.MethodGet, u, nil, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// CreateDataSource registers a new data source.
func CreateDataSource(ctx context.Context, httpClient *http.Client, baseURL string, source types.DataSource) (*types.DataSource, error) {
	var created types.DataSource
	u := joinPath(baseURL, "data-sources")
	if err := do(ctx, httpClient, "datasources.create", http.MethodPost, u, source, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDataSource replaces the data source identified by source.Name.
func UpdateDataSource(ctx context.Context, httpClient *http.Client, baseURL string, source types.DataSource) (*types.DataSource, error) {
	var updated types.DataSource
	u := joinPath(baseURL, "data-sources", source.Name)
	if err := do(ctx, httpClient, "datasources.update", http.MethodPut, u, source, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDataSource removes a data source by name.
func DeleteDataSource(ctx context.Context, httpClient *http.Client, baseURL, name string) error {
	u := joinPath(baseURL, "data-sources", name)
	return do(ctx, httpClient, "datasources.delete", http.MethodDelete, u, nil, nil)
}
