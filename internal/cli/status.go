package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/roland/portfolio/internal/client"
)

func newStatusCmd() *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check backend login status",
		Long:  "Ask the backend whether the session is logged in, and print the log in or log out URL.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}

			var opts []client.Option
			opts = append(opts, client.WithTimeout(cfg.Timeout))
			if session != "" {
				cookies, err := http.ParseCookie(session)
				if err != nil {
					return fmt.Errorf("parsing --cookie: %w", err)
				}
				opts = append(opts, client.WithCookies(cookies))
			}
			api, err := client.New(cfg.BackendURL, opts...)
			if err != nil {
				return err
			}

			status, err := api.LoginStatus(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("checking login status: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), status)
			}
			return printLoginStatus(cmd.OutOrStdout(), api.BaseURL(), status)
		},
	}

	cmd.Flags().StringVar(&session, "cookie", "", "session cookies to send, as in a Cookie header (name=value; ...)")

	return cmd
}
