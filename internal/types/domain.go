package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Metadata is the field set shared by every controller resource.
type Metadata struct {
	UID         string            `json:"uid,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	OwnerID     string            `json:"owner_id,omitempty"`
	Created     *time.Time        `json:"created,omitempty"`
	Updated     *time.Time        `json:"updated,omitempty"`
}

// VersionedMetadata extends Metadata for resources the controller versions.
type VersionedMetadata struct {
	Metadata
	Version string `json:"version,omitempty"`
}

// User represents a registered user.
type User struct {
	Metadata
	Email    string            `json:"email"`
	FullName string            `json:"full_name,omitempty"`
	Features map[string]string `json:"features,omitempty"`
	Policy   map[string]string `json:"policy,omitempty"`
	IsAdmin  bool              `json:"is_admin,omitempty"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleHuman  ChatRole = "Human"
	RoleAI     ChatRole = "AI"
	RoleSystem ChatRole = "System"
	RoleUser   ChatRole = "User"
	RoleAgent  ChatRole = "Agent"
)

// Message is a single exchange in a chat session history.
type Message struct {
	Role          ChatRole       `json:"role"`
	Body          string         `json:"body"`
	ExtraData     map[string]any `json:"extra_data,omitempty"`
	Sources       []string       `json:"sources,omitempty"`
	HumanFeedback string         `json:"human_feedback,omitempty"`
}

// ChatSession is a conversation bound to a user and a workflow.
type ChatSession struct {
	Metadata
	Username   string    `json:"username,omitempty"`
	WorkflowID string    `json:"workflow_id"`
	History    []Message `json:"history,omitempty"`
}

// Project groups workflows, data sources, and other assets.
type Project struct {
	VersionedMetadata
}

// WorkflowType categorizes a workflow by the data backend it drives.
type WorkflowType string

const (
	WorkflowTypeRelational   WorkflowType = "relational"
	WorkflowTypeVector       WorkflowType = "vector"
	WorkflowTypeGraph        WorkflowType = "graph"
	WorkflowTypeKeyValue     WorkflowType = "key-value"
	WorkflowTypeColumnFamily WorkflowType = "column-family"
	WorkflowTypeStorage      WorkflowType = "storage"
	WorkflowTypeOther        WorkflowType = "other"
)

// Workflow is an application pipeline that can serve inference queries.
type Workflow struct {
	VersionedMetadata
	ProjectID        string         `json:"project_id,omitempty"`
	WorkflowType     WorkflowType   `json:"workflow_type"`
	WorkflowFunction string         `json:"workflow_function,omitempty"`
	Configuration    string         `json:"configuration,omitempty"`
	Graph            map[string]any `json:"graph,omitempty"`
	Deployment       string         `json:"deployment,omitempty"`
}

// DataSourceType categorizes a data source by storage family.
type DataSourceType string

const (
	DataSourceTypeRelational   DataSourceType = "relational"
	DataSourceTypeVector       DataSourceType = "vector"
	DataSourceTypeGraph        DataSourceType = "graph"
	DataSourceTypeKeyValue     DataSourceType = "key-value"
	DataSourceTypeColumnFamily DataSourceType = "column-family"
	DataSourceTypeStorage      DataSourceType = "storage"
	DataSourceTypeOther        DataSourceType = "other"
)

// DataSource is a database or storage endpoint workflows read from.
type DataSource struct {
	VersionedMetadata
	ProjectID      string            `json:"project_id,omitempty"`
	DataSourceType DataSourceType    `json:"data_source_type"`
	DatabaseKwargs map[string]string `json:"database_kwargs,omitempty"`
}

// Dataset is a materialized data artifact produced for a task.
type Dataset struct {
	VersionedMetadata
	ProjectID string   `json:"project_id,omitempty"`
	Task      string   `json:"task"`
	Sources   []string `json:"sources,omitempty"`
	Path      string   `json:"path"`
	Producer  string   `json:"producer,omitempty"`
}

// Ingestion records one load of a document into a data source.
type Ingestion struct {
	DataSourceID string         `json:"data_source_id"`
	DocumentID   string         `json:"document_id,omitempty"`
	ExtraData    map[string]any `json:"extra_data,omitempty"`
}

// Document is a source file tracked for ingestion.
type Document struct {
	VersionedMetadata
	ProjectID  string      `json:"project_id,omitempty"`
	Path       string      `json:"path"`
	Origin     string      `json:"origin,omitempty"`
	Ingestions []Ingestion `json:"ingestions,omitempty"`
}

// ModelType distinguishes base models from adapters.
type ModelType string

const (
	ModelTypeModel   ModelType = "model"
	ModelTypeAdapter ModelType = "adapter"
)

// Model is an ML model or adapter registered with the controller.
type Model struct {
	VersionedMetadata
	ProjectID  string    `json:"project_id,omitempty"`
	ModelType  ModelType `json:"model_type"`
	BaseModel  string    `json:"base_model"`
	Task       string    `json:"task,omitempty"`
	Path       string    `json:"path,omitempty"`
	Producer   string    `json:"producer,omitempty"`
	Deployment string    `json:"deployment,omitempty"`
}

// PromptTemplate is a parametrized prompt text.
type PromptTemplate struct {
	VersionedMetadata
	ProjectID string   `json:"project_id,omitempty"`
	Text      string   `json:"text"`
	Arguments []string `json:"arguments,omitempty"`
}

// QueryItem is the payload of a workflow inference call.
type QueryItem struct {
	Question   string     `json:"question"`
	SessionID  string     `json:"session_id,omitempty"`
	Filter     [][]string `json:"filter,omitempty"`
	DataSource string     `json:"data_source,omitempty"`
}
