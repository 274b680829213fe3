// Package commands implements the CLI commands for the overlay asset tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/overlay/internal/app"
	"go.trai.ch/overlay/internal/build"
	"go.trai.ch/overlay/internal/core/domain"
)

// CLI represents the command line interface for overlay.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, paths []domain.FancyPath, opts app.Options, ropts app.ResolveOptions) error
	Compile(ctx context.Context, paths []domain.FancyPath, opts app.Options, copts app.CompileOptions) error
	Watch(ctx context.Context, paths []domain.FancyPath, opts app.Options, copts app.CompileOptions) error
	Route(ctx context.Context, partials []string, opts app.Options) error
	Prune(ctx context.Context, opts app.Options) error
	Clean(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "overlay",
		Short:         "Resolve template overrides, compile stylesheets and build routes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.String("root", "", "Site root directory (overrides "+domain.ConfigFileName+")")
	flags.String("template", "", "Active template name")
	flags.Bool("admin", false, "Run in the administrator context")
	flags.String("request", "", "Current request URL used for sticky route keys")
	flags.String("log-format", "auto", "Log format: auto, pretty or json")
	flags.Bool("trace", false, "Log every finished span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newRouteCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	root, _ := flags.GetString("root")
	template, _ := flags.GetString("template")
	request, _ := flags.GetString("request")
	logFormat, _ := flags.GetString("log-format")
	trace, _ := flags.GetBool("trace")

	opts := app.Options{
		Overrides: domain.Overrides{
			Root:     root,
			Template: template,
			Request:  request,
		},
		LogFormat: logFormat,
		Trace:     trace,
	}

	if flags.Changed("admin") {
		admin, _ := flags.GetBool("admin")
		opts.Overrides.Admin = &admin
	}

	return opts
}

func fancyPaths(args []string) []domain.FancyPath {
	paths := make([]domain.FancyPath, len(args))
	for i, arg := range args {
		paths[i] = domain.FancyPath(arg)
	}
	return paths
}
