package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/scraperadmin/internal/client/config"
	"github.com/iudanet/scraperadmin/internal/client/iocli"
	"github.com/iudanet/scraperadmin/internal/client/storage/boltdb"
)

// Deps are the process-level dependencies of the command tree.
type Deps struct {
	IO        iocli.IO
	Fs        afero.Fs
	Viper     *viper.Viper
	LogOutput io.Writer
	Version   string
}

// NewRootCmd builds the scraperadmin command tree. The client stack is
// created lazily before each command, after flags and config are resolved.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.IO == nil {
		deps.IO = iocli.NewStdio()
	}
	if deps.Viper == nil {
		deps.Viper = viper.New()
	}
	if deps.LogOutput == nil {
		deps.LogOutput = os.Stderr
	}

	var (
		app        *Cli
		configFile string
	)

	root := &cobra.Command{
		Use:           "scraperadmin",
		Short:         "Admin console for the scraper REST API",
		Long:          "scraperadmin lists and manages users, reports and downloadable files of the scraper API.",
		Version:       deps.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(deps.Viper, configFile)
			if err != nil {
				return err
			}

			logger := config.NewLogger(deps.LogOutput, cfg.LogLevel)

			store, err := boltdb.New(cmd.Context(), cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			app = New(deps.IO, cfg, store, logger, deps.Fs)
			app.closers = append(app.closers, store.Close)
			return nil
		},
	}
	root.SetOut(deps.IO)
	root.SetErr(deps.IO)
	root.SetVersionTemplate("ScraperAdmin Client\nVersion:    {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./scraperadmin.yaml)")
	flags.String("server", config.DefaultServer, "API server URL")
	flags.String("db", config.DefaultDB, "path to local session database")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.Duration("timeout", config.DefaultTimeout, "per-request timeout")

	for key, name := range map[string]string{
		config.KeyServer:   "server",
		config.KeyDB:       "db",
		config.KeyLogLevel: "log-level",
		config.KeyTimeout:  "timeout",
	} {
		_ = deps.Viper.BindPFlag(key, flags.Lookup(name))
	}

	// run оборачивает команду: приложение создано в PersistentPreRunE,
	// закрывается после выполнения даже при ошибке
	run := func(fn func(cmd *cobra.Command, c *Cli, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			err := fn(cmd, app, args)
			if closeErr := app.Close(); closeErr != nil {
				app.logger.Error("failed to close client", "error", closeErr)
			}
			return err
		}
	}

	root.AddCommand(
		newLoginCmd(run),
		newLogoutCmd(run),
		newStatusCmd(run),
		newHealthCmd(run),
		newDashboardCmd(run),
		newUsersCmd(run),
		newReportsCmd(run),
		newDownloadsCmd(run),
	)
	return root
}
