package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/overlay/internal/app"
	"go.trai.ch/overlay/internal/core/domain"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [paths...]",
		Short: "Compile stylesheet sources into the cache",
		Long: "Compile each stylesheet source once per version and print the head tags " +
			"of the compiled stylesheets. Sources that cannot be compiled register the fallbacks instead.",
		Example: "  overlay compile media://com_foo/less/site.less -f media://com_foo/css/site.css",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.app.Compile(cmd.Context(), fancyPaths(args), options(cmd), compileOptions(cmd))
		},
	}

	addCompileFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Compile stylesheet sources and recompile them on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.app.Watch(cmd.Context(), fancyPaths(args), options(cmd), compileOptions(cmd))
		},
	}

	addCompileFlags(cmd)
	return cmd
}

func addCompileFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("fallback", "f", nil, "Precompiled stylesheet registered when compilation is impossible (repeatable)")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent compilations (default: number of CPUs)")
}

func compileOptions(cmd *cobra.Command) app.CompileOptions {
	fallback, _ := cmd.Flags().GetStringArray("fallback")
	jobs, _ := cmd.Flags().GetInt("jobs")

	return app.CompileOptions{
		Fallback: domain.ParseFallback(fallback),
		Jobs:     jobs,
	}
}
