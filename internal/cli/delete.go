package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-comments",
		Short: "Delete all comments",
		Long:  "Ask the backend to delete every stored comment, then list what remains.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			api, err := newAPIClient(cfg)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			deleteErr := api.DeleteComments(ctx)
			if deleteErr != nil {
				deleteErr = fmt.Errorf("deleting comments: %w", deleteErr)
			}

			remaining, err := api.Comments(ctx, cfg.CommentLimit())
			if err != nil {
				return errors.Join(deleteErr, fmt.Errorf("reloading comments: %w", err))
			}
			if deleteErr != nil {
				return deleteErr
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), remaining)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Comments deleted."); err != nil {
				return err
			}
			return printCommentList(cmd.OutOrStdout(), remaining)
		},
	}
}
