// Package client is the Go SDK for the genai-factory controller REST API.
//
// Construct one Client per controller and share it; all methods are safe for
// concurrent use. Each call issues exactly one HTTP request unless retries
// are enabled with WithRetry.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/genai-factory/genai-factory/client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL  string
	http     *http.Client
	username string // sent as x-username on every request when set
	logger   zerolog.Logger
	retry    retryPolicy
}

// New constructs a Client for the controller at baseURL. The /api prefix is
// appended per request and must not be part of baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  log.Logger,
		retry:   retryPolicy{MaxAttempts: 1},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Header wrappers go on last so they sit above any option-installed
	// transport (debug logging observes the final outgoing request).
	c.wrapTransportWithHeaders()

	return c, nil
}

// wrapTransportWithHeaders installs the transport that stamps x-username and
// X-Request-ID on every outgoing request.
func (c *Client) wrapTransportWithHeaders() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{base: base, username: c.username}
}

// headerTransport adds the identity and correlation headers the controller
// expects.
type headerTransport struct {
	base     http.RoundTripper
	username string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-ID", uuid.NewString())
	if t.username != "" {
		cloned.Header.Set("x-username", t.username)
	}
	return t.base.RoundTrip(cloned)
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// run dispatches one operation through the retry policy, counts it, and logs
// the terminal failure (exactly one log entry per failed call).
func (c *Client) run(ctx context.Context, resource, op string, fn func(context.Context) error) error {
	err := c.retry.do(ctx, func(ctx context.Context) error {
		requestsTotal.WithLabelValues(resource, op).Inc()
		callErr := fn(ctx)
		if callErr != nil {
			requestFailuresTotal.WithLabelValues(resource, op).Inc()
		}
		return callErr
	})
	if err != nil {
		c.logger.Error().Err(err).Str("resource", resource).Str("op", op).Msg("controller request failed")
	}
	return err
}

// --------------------------------------------------------------------
// User operations - delegated to internal/api
// --------------------------------------------------------------------

// ListUsers returns users matching the filter; the zero filter lists all.
func (c *Client) ListUsers(ctx context.Context, filter ListUsersFilter) ([]User, error) {
	var users []User
	err := c.run(ctx, "users", "list", func(ctx context.Context) error {
		var err error
		users, err = api.ListUsers(ctx, c.http, c.baseURL, filter)
		return err
	})
	return users, err
}

// GetUser retrieves a user by username.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	var user *User
	err := c.run(ctx, "users", "get", func(ctx context.Context) error {
		var err error
		user, err = api.GetUser(ctx, c.http, c.baseURL, username)
		return err
	})
	return user, err
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, user User) (*User, error) {
	var created *User
	err := c.run(ctx, "users", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreateUser(ctx, c.http, c.baseURL, user)
		return err
	})
	return created, err
}

// UpdateUser replaces the user identified by user.Name.
func (c *Client) UpdateUser(ctx context.Context, user User) (*User, error) {
	var updated *User
	err := c.run(ctx, "users", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdateUser(ctx, c.http, c.baseURL, user)
		return err
	})
	return updated, err
}

// DeleteUser removes a user by username.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	return c.run(ctx, "users", "delete", func(ctx context.Context) error {
		return api.DeleteUser(ctx, c.http, c.baseURL, username)
	})
}

// --------------------------------------------------------------------
// Chat session operations - delegated to internal/api
// --------------------------------------------------------------------

// ListSessions returns the chat sessions of a user.
func (c *Client) ListSessions(ctx context.Context, username string, filter ListSessionsFilter) ([]ChatSession, error) {
	var sessions []ChatSession
	err := c.run(ctx, "sessions", "list", func(ctx context.Context) error {
		var err error
		sessions, err = api.ListSessions(ctx, c.http, c.baseURL, username, filter)
		return err
	})
	return sessions, err
}

// GetSession retrieves a chat session by name or UID.
func (c *Client) GetSession(ctx context.Context, username, id string) (*ChatSession, error) {
	var session *ChatSession
	err := c.run(ctx, "sessions", "get", func(ctx context.Context) error {
		var err error
		session, err = api.GetSession(ctx, c.http, c.baseURL, username, id)
		return err
	})
	return session, err
}

// CreateSession starts a new chat session for a user.
func (c *Client) CreateSession(ctx context.Context, username string, session ChatSession) (*ChatSession, error) {
	var created *ChatSession
	err := c.run(ctx, "sessions", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreateSession(ctx, c.http, c.baseURL, username, session)
		return err
	})
	return created, err
}

// UpdateSession replaces the session identified by session.Name.
func (c *Client) UpdateSession(ctx context.Context, username string, session ChatSession) (*ChatSession, error) {
	var updated *ChatSession
	err := c.run(ctx, "sessions", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdateSession(ctx, c.http, c.baseURL, username, session)
		return err
	})
	return updated, err
}

// DeleteSession removes a chat session by UID.
func (c *Client) DeleteSession(ctx context.Context, username, uid string) error {
	return c.run(ctx, "sessions", "delete", func(ctx context.Context) error {
		return api.DeleteSession(ctx, c.http, c.baseURL, username, uid)
	})
}

// --------------------------------------------------------------------
// Project operations - delegated to internal/api
// --------------------------------------------------------------------

// ListProjects returns projects matching the filter.
func (c *Client) ListProjects(ctx context.Context, filter ListFilter) ([]Project, error) {
	var projects []Project
	err := c.run(ctx, "projects", "list", func(ctx context.Context) error {
		var err error
		projects, err = api.ListProjects(ctx, c.http, c.baseURL, filter)
		return err
	})
	return projects, err
}

// GetProject retrieves a project by name.
func (c *Client) GetProject(ctx context.Context, name string) (*Project, error) {
	var project *Project
	err := c.run(ctx, "projects", "get", func(ctx context.Context) error {
		var err error
		project, err = api.GetProject(ctx, c.http, c.baseURL, name)
		return err
	})
	return project, err
}

// CreateProject registers a new project.
func (c *Client) CreateProject(ctx context.Context, project Project) (*Project, error) {
	var created *Project
	err := c.run(ctx, "projects", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreateProject(ctx, c.http, c.baseURL, project)
		return err
	})
	return created, err
}

// UpdateProject replaces the project identified by project.Name.
func (c *Client) UpdateProject(ctx context.Context, project Project) (*Project, error) {
	var updated *Project
	err := c.run(ctx, "projects", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdateProject(ctx, c.http, c.baseURL, project)
		return err
	})
	return updated, err
}

// DeleteProject removes a project by name.
func (c *Client) DeleteProject(ctx context.Context, name string) error {
	return c.run(ctx, "projects", "delete", func(ctx context.Context) error {
		return api.DeleteProject(ctx, c.http, c.baseURL, name)
	})
}

// --------------------------------------------------------------------
// Workflow operations - delegated to internal/api
// --------------------------------------------------------------------

// ListWorkflows returns the workflows of a project.
func (c *Client) ListWorkflows(ctx context.Context, project string, filter ListWorkflowsFilter) ([]Workflow, error) {
	var workflows []Workflow
	err := c.run(ctx, "workflows", "list", func(ctx context.Context) error {
		var err error
		workflows, err = api.ListWorkflows(ctx, c.http, c.baseURL, project, filter)
		return err
	})
	return workflows, err
}

// GetWorkflow resolves a workflow by name. An empty name selects "default".
func (c *Client) GetWorkflow(ctx context.Context, project, name string) (*Workflow, error) {
	var workflow *Workflow
	err := c.run(ctx, "workflows", "get", func(ctx context.Context) error {
		var err error
		workflow, err = api.GetWorkflow(ctx, c.http, c.baseURL, project, name)
		return err
	})
	return workflow, err
}

// CreateWorkflow registers a new workflow in a project.
func (c *Client) CreateWorkflow(ctx context.Context, project string, workflow Workflow) (*Workflow, error) {
	var created *Workflow
	err := c.run(ctx, "workflows", "create", func(ctx context.Context) error {
		var err error
		created, err = api.CreateWorkflow(ctx, c.http, c.baseURL, project, workflow)
		return err
	})
	return created, err
}

// UpdateWorkflow replaces the workflow identified by workflow.Name.
func (c *Client) UpdateWorkflow(ctx context.Context, project string, workflow Workflow) (*Workflow, error) {
	var updated *Workflow
	err := c.run(ctx, "workflows", "update", func(ctx context.Context) error {
		var err error
		updated, err = api.UpdateWorkflow(ctx, c.http, c.baseURL, project, workflow)
		return err
	})
	return updated, err
}

// DeleteWorkflow removes a workflow by name.
func (c *Client) DeleteWorkflow(ctx context.Context, project, name string) error {
	return c.run(ctx, "workflows", "delete", func(ctx context.Context) error {
		return api.DeleteWorkflow(ctx, c.http, c.baseURL, project, name)
	})
}

// InferWorkflow submits a query to a deployed workflow, addressed by UID, and
// returns its answer.
func (c *Client) InferWorkflow(ctx context.Context, projectID, workflowID string, query QueryItem) (*QueryResult, error) {
	var result *QueryResult
	err := c.run(ctx, "workflows", "infer", func(ctx context.Context) error {
		var err error
		result, err = api.InferWorkflow(ctx, c.http, c.baseURL, projectID, workflowID, query)
		return err
	})
	return result, err
}
