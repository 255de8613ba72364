// Package cli defines the cobra command tree for the portfolio tool.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roland/portfolio/internal/client"
	"github.com/roland/portfolio/internal/db"
	"github.com/roland/portfolio/internal/logging"
)

var (
	flagFormat  string
	flagBackend string
	flagDB      string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve and inspect the portfolio contact page",
		Long:          "Renders the portfolio contact page against the comments backend: greeting, visitor comments, login link, and the comment upload form.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagBackend, "backend", "", "backend API URL (default: from env, config, or http://localhost:8080)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite preference database (default: ~/.config/portfolio/portfolio.db)")

	root.AddCommand(
		newServeCmd(),
		newGreetCmd(),
		newCommentsCmd(),
		newDeleteCommentsCmd(),
		newStatusCmd(),
		newRenderCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// resolveConfig loads the effective configuration and applies global flags.
func resolveConfig() (Config, error) {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return Config{}, err
	}
	if flagBackend != "" {
		cfg.BackendURL = flagBackend
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	logging.Setup(os.Stderr, cfg.Dev)
	return cfg, nil
}

// newAPIClient creates a backend client from the effective configuration.
func newAPIClient(cfg Config) (*client.Client, error) {
	return client.New(cfg.BackendURL, client.WithTimeout(cfg.Timeout))
}

// openDB opens the preference database from the configured or default path.
func openDB(cfg Config) (*sql.DB, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// commandContext returns the command's context, or Background outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
