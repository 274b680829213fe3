package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route [partials...]",
		Short: "Build routes that keep the sticky keys of the current request",
		Example: "  overlay route --request 'index.php?option=com_foo&view=items' 'task=save'\n" +
			"  overlay route '&limitstart=20'",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.app.Route(cmd.Context(), args, options(cmd))
		},
	}
}
