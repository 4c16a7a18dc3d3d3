package types

import (
	"net/url"
	"strconv"
)

// OutputMode selects how much of each object list endpoints return.
type OutputMode string

const (
	OutputModeNames   OutputMode = "names"
	OutputModeShort   OutputMode = "short"
	OutputModeDict    OutputMode = "dict"
	OutputModeDetails OutputMode = "details"
)

// ------------------------------
// List Filters
// ------------------------------

// ListUsersFilter narrows a users list call. Zero value lists everything.
type ListUsersFilter struct {
	Email    string
	FullName string
	Mode     OutputMode
}

// Values encodes the filter as query parameters.
func (f ListUsersFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "email", f.Email)
	setNonEmpty(v, "full_name", f.FullName)
	setNonEmpty(v, "mode", string(f.Mode))
	return v
}

// ListSessionsFilter narrows a chat-sessions list call.
type ListSessionsFilter struct {
	// Last limits the result to the N most recent sessions; 0 means all.
	Last int
	// CreatedAfter filters to sessions created after the given timestamp
	// (controller-side parsing, RFC 3339).
	CreatedAfter string
	Mode         OutputMode
}

// Values encodes the filter as query parameters.
func (f ListSessionsFilter) Values() url.Values {
	v := url.Values{}
	if f.Last > 0 {
		v.Set("last", strconv.Itoa(f.Last))
	}
	setNonEmpty(v, "created", f.CreatedAfter)
	setNonEmpty(v, "mode", string(f.Mode))
	return v
}

// ListWorkflowsFilter narrows a workflows list call within a project.
type ListWorkflowsFilter struct {
	Name         string
	Version      string
	WorkflowType WorkflowType
	Mode         OutputMode
}

// Values encodes the filter as query parameters.
func (f ListWorkflowsFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "name", f.Name)
	setNonEmpty(v, "version", f.Version)
	setNonEmpty(v, "workflow_type", string(f.WorkflowType))
	setNonEmpty(v, "mode", string(f.Mode))
	return v
}

// ListFilter is the common filter shape for project-scoped asset lists
// (data sources, datasets, documents, models, prompt templates).
type ListFilter struct {
	Project string
	Version string
	Mode    OutputMode
}

// Values encodes the filter as query parameters.
func (f ListFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "project_id", f.Project)
	setNonEmpty(v, "version", f.Version)
	setNonEmpty(v, "mode", string(f.Mode))
	return v
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
