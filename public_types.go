package client

import "github.com/genai-factory/genai-factory/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.

// Domain entities
type (
	Metadata          = types.Metadata
	VersionedMetadata = types.VersionedMetadata
	User              = types.User
	ChatSession       = types.ChatSession
	Message           = types.Message
	Project           = types.Project
	Workflow          = types.Workflow
	DataSource        = types.DataSource
	Dataset           = types.Dataset
	Document          = types.Document
	Ingestion         = types.Ingestion
	Model             = types.Model
	PromptTemplate    = types.PromptTemplate
)

// Request payloads and filters
type (
	QueryItem           = types.QueryItem
	ListUsersFilter     = types.ListUsersFilter
	ListSessionsFilter  = types.ListSessionsFilter
	ListWorkflowsFilter = types.ListWorkflowsFilter
	ListFilter          = types.ListFilter
)

// Responses
type (
	QueryResult = types.QueryResult
)

// Enumerations
type (
	ChatRole       = types.ChatRole
	WorkflowType   = types.WorkflowType
	DataSourceType = types.DataSourceType
	ModelType      = types.ModelType
	OutputMode     = types.OutputMode
)

// Re-exported enum values for the common cases.
const (
	RoleHuman  = types.RoleHuman
	RoleAI     = types.RoleAI
	RoleSystem = types.RoleSystem

	OutputModeNames   = types.OutputModeNames
	OutputModeShort   = types.OutputModeShort
	OutputModeDetails = types.OutputModeDetails

	WorkflowTypeRelational = types.WorkflowTypeRelational
	WorkflowTypeVector     = types.WorkflowTypeVector
	WorkflowTypeGraph      = types.WorkflowTypeGraph

	DataSourceTypeRelational = types.DataSourceTypeRelational
	DataSourceTypeVector     = types.DataSourceTypeVector
	DataSourceTypeGraph      = types.DataSourceTypeGraph

	ModelTypeModel   = types.ModelTypeModel
	ModelTypeAdapter = types.ModelTypeAdapter
)
