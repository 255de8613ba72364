package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roland/portfolio/internal/comment"
	"github.com/roland/portfolio/internal/web"
)

func newRenderCmd() *cobra.Command {
	var (
		limit  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the contact page once",
		Long:  "Render the contact page against the backend as a logged-out visitor and write the HTML to stdout or --out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max") {
				limit = cfg.CommentLimit()
			}

			srv, err := web.NewServer(web.Config{
				BackendURL:  cfg.BackendURL,
				Owner:       cfg.Owner,
				MaxComments: cfg.CommentLimit(),
				Timeout:     cfg.Timeout,
			}, nil)
			if err != nil {
				return err
			}

			if output == "" {
				return srv.WritePage(commandContext(cmd), cmd.OutOrStdout(), comment.ClampMaxComments(limit))
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := srv.WritePage(commandContext(cmd), f, comment.ClampMaxComments(limit)); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "max", comment.DefaultMaxComments, "maximum number of comments to show")
	cmd.Flags().StringVarP(&output, "out", "o", "", "write the page to this file instead of stdout")

	return cmd
}
