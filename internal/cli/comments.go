package cli

import (
	"github.com/spf13/cobra"

	"github.com/roland/portfolio/internal/comment"
)

func newCommentsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "List visitor comments",
		Long:  "Fetch up to --max comments from the backend, in the order the backend returns them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max") {
				limit = cfg.CommentLimit()
			}

			api, err := newAPIClient(cfg)
			if err != nil {
				return err
			}
			comments, err := api.Comments(commandContext(cmd), comment.ClampMaxComments(limit))
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), comments)
			}
			return printCommentList(cmd.OutOrStdout(), comments)
		},
	}

	cmd.Flags().IntVar(&limit, "max", comment.DefaultMaxComments, "maximum number of comments to fetch")

	return cmd
}
