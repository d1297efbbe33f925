// Package commands implements the CLI commands for wxpack.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wxpack/internal/app"
	"go.trai.ch/wxpack/internal/build"
	"go.trai.ch/wxpack/internal/engine/profile"
)

// CLI represents the command line interface for wxpack.
type CLI struct {
	app     *app.App
	env     map[string]string
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and process environment.
func New(a *app.App, env map[string]string) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wxpack",
		Short:         "Compose bundler pipelines for mini-program projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("root", "r", ".", "Project root directory")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "Environment profile name (overrides "+profile.EnvProfile+")")
	rootCmd.PersistentFlags().StringP("settings", "s", "", "Settings file (defaults to <root>/wxpack.yaml)")
	rootCmd.PersistentFlags().Bool("minify", false, "Minify scripts in production builds")
	rootCmd.PersistentFlags().Bool("no-speed", false, "Disable cache and worker steps in development builds")

	c := &CLI{
		app:     a,
		env:     env,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCheckCmd())
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

// SetOutput redirects command output and errors. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// request builds an app.Request from the persistent flags.
func (c *CLI) request(cmd *cobra.Command) app.Request {
	root, _ := cmd.Flags().GetString("root")
	name, _ := cmd.Flags().GetString("profile")
	settings, _ := cmd.Flags().GetString("settings")
	minify, _ := cmd.Flags().GetBool("minify")
	noSpeed, _ := cmd.Flags().GetBool("no-speed")

	return app.Request{
		Root:         root,
		SettingsPath: settings,
		Env:          c.env,
		Flags: profile.Flags{
			ConfigName:   name,
			Minify:       minify,
			DisableSpeed: noSpeed,
		},
	}
}
