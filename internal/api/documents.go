package api

import (
	"context"
	"net/http"

	"github.com/genai-factory/genai-factory/client/internal/types"
)

// ListDocuments returns documents matching the filter.
func ListDocuments(ctx context.Context, httpClient *http.Client, baseURL string, filter types.ListFilter) ([]types.Document, error) {
	var documents []types.Document
	u := withQuery(joinPath(baseURL, "documents"), filter.Values())
	if err := do(ctx, httpClient, "documents.list", http.MethodGet, u, nil, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

// GetDocument retrieves a document by name.
func GetDocument(ctx context.Context, httpClient *http.Client, baseURL, name string) (*types.Document, error) {
	var document types.Document
	u := joinPath(baseURL, "documents", name)
	if err := do(ctx, httpClient, "documents.get", http.MethodGet, u, nil, &document); err != nil {
		return nil, err
	}
	return &document, nil
}

// CreateDocument registers a new document.
func CreateDocument(ctx context.Context, httpClient *http.Client, baseURL string, document types.Document) (*types.Document, error) {
	var created types.Document
	u := joinPath(baseURL, "documents")
	if err := do(ctx, httpClient, "documents.create", http.MethodPost, u, document, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDocument replaces the document identified by document.Name.
func UpdateDocument(ctx context.Context, httpClient *http.Client, baseURL string, document types.Document) (*types.Document, error) {
	var updated types.Document
	u := joinPath(baseURL, "documents", document.Name)
	if err := do(ctx, httpClient, "documents.update", http.MethodPut, u, document, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDocument removes a document by name.
func DeleteDocument(ctx context.Context, httpClient *http.Client, baseURL, name string) error {
	u := joinPath(baseURL, "documents", name)
	return do(ctx, httpClient, "documents.delete", http.MethodDelete, u, nil, nil)
}
