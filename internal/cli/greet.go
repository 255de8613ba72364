package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roland/portfolio/internal/greeting"
)

func newGreetCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print a random greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("owner") {
				cfg, err := resolveConfig()
				if err != nil {
					return err
				}
				owner = cfg.Owner
			}

			g := greeting.Random(nil)
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"greeting": greeting.Welcome(g, owner),
					"lang":     g.Lang.String(),
				})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), greeting.Welcome(g, owner))
			return err
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "name to introduce after the greeting")

	return cmd
}
