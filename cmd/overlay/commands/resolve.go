package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/overlay/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [paths...]",
		Short: "Print the chosen location of fancy paths",
		Long: "Print where each fancy path resolves to. Media paths prefer the active " +
			"template's override when it exists.",
		Example: "  overlay resolve media://com_foo/css/site.css\n" +
			"  overlay resolve --local admin://components/com_foo/foo.js",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			local, _ := cmd.Flags().GetBool("local")
			register, _ := cmd.Flags().GetBool("register")

			return c.app.Resolve(cmd.Context(), fancyPaths(args), options(cmd), app.ResolveOptions{
				Local:    local,
				Register: register,
			})
		},
	}

	cmd.Flags().BoolP("local", "l", false, "Print filesystem paths instead of URLs")
	cmd.Flags().BoolP("register", "r", false, "Print the head tags registering the paths")
	cmd.MarkFlagsMutuallyExclusive("local", "register")

	return cmd
}
