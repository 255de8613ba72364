package cli

import (
	"github.com/spf13/cobra"

	"github.com/roland/portfolio/internal/prefs"
	"github.com/roland/portfolio/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the contact page",
		Long:  "Start an HTTP server that renders the contact page against the backend API for each visitor.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", defaultPort, "port to listen on")

	return cmd
}

func runServe(cfg Config) error {
	database, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB(database)

	srv, err := web.NewServer(web.Config{
		BackendURL:  cfg.BackendURL,
		Owner:       cfg.Owner,
		MaxComments: cfg.CommentLimit(),
		Timeout:     cfg.Timeout,
	}, prefs.NewRepository(database))
	if err != nil {
		return err
	}
	return srv.ListenAndServe(cfg.Port)
}
