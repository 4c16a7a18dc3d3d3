package client

// Project asset operations: data sources, datasets, documents, models, and
// prompt templates. Same shape as the core resources, kept out of client.go
// for readability.

import (
	"context"

	"github.com/genai-factory/genai-factory/client/internal/api"
)

// --------------------------------------------------------------------
// Data source operations
// --------------------------------------------------------------------

// ListDataSources returns data sources matching the filter.
func (c *Client) ListDataSources(ctx context.Context, filter ListFilter) ([]DataSource, error) {
	var sources []DataSource
	err := c.run(ctx, "datasources", "list", func(ctx context.Context) error {
		var err error
		sources, err = api.ListDataSources(ctx, c.http, c.baseURL, filter)
		return err
	})
	return sources, err
}

// GetDataSource retrieves a data source by name.
func (c *Client) GetDataSource(ctx context.Context, name string) (*DataSource, error) {
	var source *DataSource
	err := c.run(ctx, "datasources", "get", func(ctx context.Context) error {
		var err error
		source, err = api.GetDataSource(ctx, c.http, c.baseURL, name)
		return err
	})
	return source, err
}

// CreateDataSource registers a new data source.
func (c *Client) CreateDataSource(ctx context.Context, source DataSource) (*DataSource, error) {
	var created *DataSource
	err := c.run(ctx, "datasources", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreateDataSource(ctx, c.http, c.baseURL, source)
		return err
	})
	return created, err
}

// UpdateDataSource replaces the data source identified by source.Name.
func (c *Client) UpdateDataSource(ctx context.Context, source DataSource) (*DataSource, error) {
	var updated *DataSource
	err := c.run(ctx, "datasources", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdateDataSource(ctx, c.http, c.baseURL, source)
		return err
	})
	return updated, err
}

// DeleteDataSource removes a data source by name.
func (c *Client) DeleteDataSource(ctx context.Context, name string) error {
	return c.run(ctx, "datasources", "delete", func(ctx context.Context) error {
		return api.DeleteDataSource(ctx, c.http, c.baseURL, name)
	})
}

// --------------------------------------------------------------------
// Dataset operations
// --------------------------------------------------------------------

// ListDatasets returns datasets matching the filter.
func (c *Client) ListDatasets(ctx context.Context, filter ListFilter) ([]Dataset, error) {
	var datasets []Dataset
	err := c.run(ctx, "datasets", "list", func(ctx context.Context) error {
		var err error
		datasets, err = api.ListDatasets(ctx, c.http, c.baseURL, filter)
		return err
	})
	return datasets, err
}

// GetDataset retrieves a dataset by name.
func (c *Client) GetDataset(ctx context.Context, name string) (*Dataset, error) {
	var dataset *Dataset
	err := c.run(ctx, "datasets", "get", func(ctx context.Context) error {
		var err error
		dataset, err = api.GetDataset(ctx, c.http, c.baseURL, name)
		return err
	})
	return dataset, err
}

// CreateDataset registers a new dataset.
func (c *Client) CreateDataset(ctx context.Context, dataset Dataset) (*Dataset, error) {
	var created *Dataset
	err := c.run(ctx, "datasets", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreateDataset(ctx, c.http, c.baseURL, dataset)
		return err
	})
	return created, err
}

// UpdateDataset replaces the dataset identified by dataset.Name.
func (c *Client) UpdateDataset(ctx context.Context, dataset Dataset) (*Dataset, error) {
	var updated *Dataset
	err := c.run(ctx, "datasets", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdateDataset(ctx, c.http, c.baseURL, dataset)
		return err
	})
	return updated, err
}

// DeleteDataset removes a dataset by name.
func (c *Client) DeleteDataset(ctx context.Context, name string) error {
	return c.run(ctx, "datasets", "delete", func(ctx context.Context) error {
		return api.DeleteDataset(ctx, c.http, c.baseURL, name)
	})
}

// --------------------------------------------------------------------
// Document operations
// --------------------------------------------------------------------

// ListDocuments returns documents matching the filter.
func (c *Client) ListDocuments(ctx context.Context, filter ListFilter) ([]Document, error) {
	var documents []Document
	err := c.run(ctx, "documents", "list", func(ctx context.Context) error {
		var err error
		documents, err = api.ListDocuments(ctx, c.http, c.baseURL, filter)
		return err
	})
	return documents, err
}

// GetDocument retrieves a document by name.
func (c *Client) GetDocument(ctx context.Context, name string) (*Document, error) {
	var document *Document
	err := c.run(ctx, "documents", "get", func(ctx context.Context) error {
		var err error
		document, err = api.GetDocument(ctx, c.http, c.baseURL, name)
		return err
	})
	return document, err
}

// CreateDocument registers a new document.
func (c *Client) CreateDocument(ctx context.Context, document Document) (*Document, error) {
	var created *Document
	err := c.run(ctx, "documents", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreateDocument(ctx, c.http, c.baseURL, document)
		return err
	})
	return created, err
}

// UpdateDocument replaces the document identified by document.Name.
func (c *Client) UpdateDocument(ctx context.Context, document Document) (*Document, error) {
	var updated *Document
	err := c.run(ctx, "documents", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdateDocument(ctx, c.http, c.baseURL, document)
		return err
	})
	return updated, err
}

// DeleteDocument removes a document by name.
func (c *Client) DeleteDocument(ctx context.Context, name string) error {
	return c.run(ctx, "documents", "delete", func(ctx context.Context) error {
		return api.DeleteDocument(ctx, c.http, c.baseURL, name)
	})
}

// --------------------------------------------------------------------
// Model operations
// --------------------------------------------------------------------

// ListModels returns models matching the filter.
func (c *Client) ListModels(ctx context.Context, filter ListFilter) ([]Model, error) {
	var models []Model
	err := c.run(ctx, "models", "list", func(ctx context.Context) error {
		var err error
		models, err = api.ListModels(ctx, c.http, c.baseURL, filter)
		return err
	})
	return models, err
}

// GetModel retrieves a model by name.
func (c *Client) GetModel(ctx context.Context, name string) (*Model, error) {
	var model *Model
	err := c.run(ctx, "models", "get", func(ctx context.Context) error {
		var err error
		model, err = api.GetModel(ctx, c.http, c.baseURL, name)
		return err
	})
	return model, err
}

// CreateModel registers a new model.
func (c *Client) CreateModel(ctx context.Context, model Model) (*Model, error) {
	var created *Model
	err := c.run(ctx, "models", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreateModel(ctx, c.http, c.baseURL, model)
		return err
	})
	return created, err
}

// UpdateModel replaces the model identified by model.Name.
func (c *Client) UpdateModel(ctx context.Context, model Model) (*Model, error) {
	var updated *Model
	err := c.run(ctx, "models", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdateModel(ctx, c.http, c.baseURL, model)
		return err
	})
	return updated, err
}

// DeleteModel removes a model by name.
func (c *Client) DeleteModel(ctx context.Context, name string) error {
	return c.run(ctx, "models", "delete", func(ctx context.Context) error {
		return api.DeleteModel(ctx, c.http, c.baseURL, name)
	})
}

// --------------------------------------------------------------------
// Prompt template operations
// --------------------------------------------------------------------

// ListPromptTemplates returns prompt templates matching the filter.
func (c *Client) ListPromptTemplates(ctx context.Context, filter ListFilter) ([]PromptTemplate, error) {
	var templates []PromptTemplate
	err := c.run(ctx, "prompts", "list", func(ctx context.Context) error {
		var err error
		templates, err = api.ListPromptTemplates(ctx, c.http, c.baseURL, filter)
		return err
	})
	return templates, err
}

// GetPromptTemplate retrieves a prompt template by name.
func (c *Client) GetPromptTemplate(ctx context.Context, name string) (*PromptTemplate, error) {
	var template *PromptTemplate
	err := c.run(ctx, "prompts", "get", func(ctx context.Context) error {
		var err error
		template, err = api.GetPromptTemplate(ctx, c.http, c.baseURL, name)
		return err
	})
	return template, err
}

// CreatePromptTemplate registers a new prompt template.
func (c *Client) CreatePromptTemplate(ctx context.Context, template PromptTemplate) (*PromptTemplate, error) {
	var created *PromptTemplate
	err := c.run(ctx, "prompts", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreatePromptTemplate(ctx, c.http, c.baseURL, template)
		return err
	})
	return created, err
}

// UpdatePromptTemplate replaces the template identified by template.Name.
func (c *Client) UpdatePromptTemplate(ctx context.Context, template PromptTemplate) (*PromptTemplate, error) {
	var updated *PromptTemplate
	err := c.run(ctx, "prompts", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdatePromptTemplate(ctx, c.http, c.baseURL, template)
		return err
	})
	return updated, err
}

// DeletePromptTemplate removes a prompt template by name.
func (c *Client) DeletePromptTemplate(ctx context.Context, name string) error {
	return c.run(ctx, "prompts", "delete", func(ctx context.Context) error {
		return api.DeletePromptTemplate(ctx, c.http, c.baseURL, name)
	})
}
