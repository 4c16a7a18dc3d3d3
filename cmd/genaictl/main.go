package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	client "github.com/genai-factory/genai-factory/client"
)

var (
	apiFlag  string
	userFlag string
	rootCmd  = &cobra.Command{
		Use:   "genaictl",
		Short: "CLI client for the genai-factory controller REST API",
	}
)

func newClient() (*client.Client, error) {
	opts := []client.Option{}
	if userFlag != "" {
		opts = append(opts, client.WithUsername(userFlag))
	}
	if apiFlag != "" {
		return client.New(apiFlag, opts...)
	}
	return client.NewFromEnv(opts...)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "", "Controller base URL (default from GENAI_FACTORY_BASE_URL)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Acting username sent as x-username")

	rootCmd.AddCommand(usersCmd(), sessionsCmd(), projectsCmd(), workflowsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage users"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			users, err := c.ListUsers(context.Background(), client.ListUsersFilter{})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, users)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <username>",
		Short: "Get a user by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			user, err := c.GetUser(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, user)
		},
	})

	createCmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			fullName, _ := cmd.Flags().GetString("full-name")
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			user := client.User{Email: email, FullName: fullName}
			user.Name = args[0]
			created, err := c.CreateUser(context.Background(), user)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, created)
		},
	}
	createCmd.Flags().StringP("email", "e", "", "User email (required)")
	createCmd.Flags().String("full-name", "", "Display name")
	_ = createCmd.MarkFlagRequired("email")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			return c.DeleteUser(context.Background(), args[0])
		},
	})

	return cmd
}

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "sessions", Short: "Manage chat sessions"}

	listCmd := &cobra.Command{
		Use:   "list <username>",
		Short: "List a user's chat sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			last, _ := cmd.Flags().GetInt("last")
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			sessions, err := c.ListSessions(context.Background(), args[0], client.ListSessionsFilter{Last: last})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, sessions)
		},
	}
	listCmd.Flags().Int("last", 0, "Only the N most recent sessions")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <username> <session>",
		Short: "Get a chat session by name or UID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			session, err := c.GetSession(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, session)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <username> <uid>",
		Short: "Delete a chat session by UID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			return c.DeleteSession(context.Background(), args[0], args[1])
		},
	})

	return cmd
}

func projectsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "projects", Short: "Manage projects"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			projects, err := c.ListProjects(context.Background(), client.ListFilter{})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, projects)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: "Get a project by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			project, err := c.GetProject(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, project)
		},
	})

	return cmd
}

func workflowsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "workflows", Short: "Inspect and query workflows"}

	listCmd := &cobra.Command{
		Use:   "list <project>",
		Short: "List workflows in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			workflows, err := c.ListWorkflows(context.Background(), args[0], client.ListWorkflowsFilter{Name: name})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, workflows)
		},
	}
	listCmd.Flags().StringP("name", "n", "", "Filter by workflow name")
	cmd.AddCommand(listCmd)

	inferCmd := &cobra.Command{
		Use:   "infer <project> <workflow-uid>",
		Short: "Send a query to a deployed workflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			question, _ := cmd.Flags().GetString("question")
			session, _ := cmd.Flags().GetString("session")
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			result, err := c.InferWorkflow(context.Background(), args[0], args[1], client.QueryItem{
				Question:  question,
				SessionID: session,
			})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, result)
		},
	}
	inferCmd.Flags().StringP("question", "q", "", "Question text (required)")
	inferCmd.Flags().StringP("session", "s", "", "Chat session name or UID")
	_ = inferCmd.MarkFlagRequired("question")
	cmd.AddCommand(inferCmd)

	return cmd
}
