package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/scraperadmin/internal/client/gateway"
	"github.com/iudanet/scraperadmin/internal/client/views"
)

type runner func(fn func(cmd *cobra.Command, c *Cli, args []string) error) func(*cobra.Command, []string) error

func newLoginCmd(run runner) *cobra.Command {
	var opts loginOptions
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Long: `Sign in with username and password, or store a token obtained elsewhere.

Password priority (highest to lowest):
  1. SCRAPERADMIN_PASSWORD environment variable
  2. --password-file
  3. Interactive prompt`,
		Args: cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runLogin(cmd.Context(), opts)
		}),
	}
	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "username (prompted when empty)")
	cmd.Flags().StringVar(&opts.Token, "token", "", "store this token instead of signing in")
	cmd.Flags().StringVar(&opts.Passwords.FromFile, "password-file", "", "file containing the password")
	return cmd
}

func newLogoutCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the local session",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runLogout(cmd.Context())
		}),
	}
}

func newStatusCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the local session",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runStatus(cmd.Context())
		}),
	}
}

func newHealthCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the API server health",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runHealth(cmd.Context())
		}),
	}
}

func newDashboardCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals and system status",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runDashboard(cmd.Context())
		}),
	}
}

func newUsersCmd(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage system users",
	}

	var listOpts usersListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runUsersList(cmd.Context(), listOpts)
		}),
	}
	list.Flags().StringVarP(&listOpts.Search, "search", "s", "", "filter by username, email or name")
	list.Flags().IntVar(&listOpts.Params.Skip, "skip", gateway.DefaultSkip, "number of users to skip")
	list.Flags().IntVar(&listOpts.Params.Limit, "limit", gateway.DefaultLimit, "maximum number of users")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			id, err := parseID("user", args[0])
			if err != nil {
				return err
			}
			return c.runUsersGet(cmd.Context(), id)
		}),
	}

	var createFields userFields
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			createFields.SetActive = cmd.Flags().Changed("active")
			createFields.SetSuper = cmd.Flags().Changed("superuser")
			return c.runUsersCreate(cmd.Context(), createFields)
		}),
	}
	bindUserFields(create, &createFields)

	var updateFields userFields
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change user fields",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			id, err := parseID("user", args[0])
			if err != nil {
				return err
			}
			updateFields.SetActive = cmd.Flags().Changed("active")
			updateFields.SetSuper = cmd.Flags().Changed("superuser")
			return c.runUsersUpdate(cmd.Context(), id, updateFields)
		}),
	}
	bindUserFields(update, &updateFields)
	update.Flags().BoolVar(&updateFields.AskPassword, "password", false, "prompt for a new password")

	var yes bool
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			id, err := parseID("user", args[0])
			if err != nil {
				return err
			}
			return c.runUsersDelete(cmd.Context(), id, yes)
		}),
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func bindUserFields(cmd *cobra.Command, f *userFields) {
	cmd.Flags().StringVar(&f.Username, "username", "", "username")
	cmd.Flags().StringVar(&f.Email, "email", "", "email address")
	cmd.Flags().StringVar(&f.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&f.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&f.PasswordFile, "password-file", "", "file containing the password")
	cmd.Flags().BoolVar(&f.Active, "active", true, "account is active")
	cmd.Flags().BoolVar(&f.Superuser, "superuser", false, "grant admin role")
}

func newReportsCmd(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "View and generate reports",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List reports",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runReportsList(cmd.Context(), status)
		}),
	}
	list.Flags().StringVar(&status, "status", views.StatusAll, "all, pending, processing, completed or failed")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one report",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			id, err := parseID("report", args[0])
			if err != nil {
				return err
			}
			return c.runReportsGet(cmd.Context(), id)
		}),
	}

	var createOpts reportCreateOptions
	create := &cobra.Command{
		Use:   "create",
		Short: "Request a new report",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runReportsCreate(cmd.Context(), createOpts)
		}),
	}
	create.Flags().StringVar(&createOpts.Title, "title", "", "report title")
	create.Flags().StringVar(&createOpts.Description, "description", "", "report description")
	create.Flags().StringVar(&createOpts.Status, "status", "", "initial status (server default: pending)")

	cmd.AddCommand(list, get, create)
	return cmd
}

func newDownloadsCmd(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downloads",
		Short: "List and fetch downloadable files",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List downloadable files",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			return c.runDownloadsList(cmd.Context())
		}),
	}

	var out string
	get := &cobra.Command{
		Use:   "get ID",
		Short: "Download a file",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, c *Cli, args []string) error {
			id, err := parseID("download", args[0])
			if err != nil {
				return err
			}
			return c.runDownloadsGet(cmd.Context(), id, out)
		}),
	}
	get.Flags().StringVarP(&out, "out", "o", "", "target directory (default from config)")

	cmd.AddCommand(list, get)
	return cmd
}
