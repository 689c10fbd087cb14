// Package commands implements the CLI commands for cargo-build-dependencies.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/depbuild/internal/build"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// subcommandName is the argument cargo passes first when invoked as `cargo build-dependencies`.
const subcommandName = "build-dependencies"

// CLI represents the command line interface for cargo-build-dependencies.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Config(dir string) (domain.Config, error)
	Build(ctx context.Context, cfg domain.Config) error
	List(ctx context.Context, cfg domain.Config, all bool) ([]string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "cargo-build-dependencies",
		Short: "Build only the declared dependencies of a Cargo project",
		Long: "Resolves every dependency declared in Cargo.toml to its exact version in Cargo.lock\n" +
			"and runs `cargo build -p <name>:<version>` for each of them, in lock file order.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          noArgs,
		RunE:          c.runBuild,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.Bool("release", false, "Build artifacts in release mode, with optimizations")
	flags.String("target", "", "Build for the target triple")
	flags.StringP("config", "c", ".", "Directory containing Cargo.toml")
	flags.String("manifest", "", "Path to Cargo.toml, relative to the config directory")
	flags.String("lockfile", "", "Path to Cargo.lock, relative to the config directory")
	flags.String("journal", "", "Write a JSON-lines build journal to this file")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newBuildDependenciesCmd())
	rootCmd.AddCommand(c.newListCmd())
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

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// noArgs behaves like cobra.NoArgs but reports the offending argument as domain.ErrUnexpectedArgument.
func noArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return zerr.With(
		zerr.Wrap(fmt.Errorf("%q", args[0]), domain.ErrUnexpectedArgument.Error()),
		"argument", args[0],
	)
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	return c.app.Build(cmd.Context(), cfg)
}

// loadConfig resolves the config for the --config directory and applies explicitly set flags on top.
func (c *CLI) loadConfig(cmd *cobra.Command) (domain.Config, error) {
	flags := cmd.Flags()

	dir, _ := flags.GetString("config")
	cfg, err := c.app.Config(dir)
	if err != nil {
		return domain.Config{}, err
	}

	if flags.Changed("release") {
		cfg.Release, _ = flags.GetBool("release")
	}
	if flags.Changed("target") {
		cfg.Target, _ = flags.GetString("target")
	}
	if flags.Changed("manifest") {
		cfg.Manifest, _ = flags.GetString("manifest")
	}
	if flags.Changed("lockfile") {
		cfg.Lockfile, _ = flags.GetString("lockfile")
	}
	if flags.Changed("journal") {
		cfg.Journal, _ = flags.GetString("journal")
	}

	return cfg, nil
}
