// Package commands implements the CLI commands for refcache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/refcache/internal/app"
	"go.trai.ch/refcache/internal/build"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
)

// CLI represents the command line interface for refcache.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Status(opts app.Options) (*domain.CacheReport, error)
	Inspect(opts app.Options, kind domain.Kind) (any, bool, error)
	Clear(opts app.Options) ([]string, error)
	Impact(ctx context.Context, opts app.Options, changed []string) (*app.Impact, error)
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "refcache",
		Short:         "Inspect and manage the incremental analysis cache",
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
	flags.StringP("config", "c", "", "Path to "+domain.ConfigFileName+" (default: discovered from --root)")
	flags.StringP("root", "r", "", "Directory to discover the configuration from (default: working directory)")
	flags.Bool("no-cache", false, "Disable every cache operation")
	flags.String("php-version", "", "Override the PHP version target (MAJOR.MINOR)")
	flags.Int("threads", 0, "Override the number of analysis workers")
	flags.Bool("json", false, "Log in JSON format")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json")
		if s, ok := c.logger.(jsonSwitcher); ok && jsonLogs {
			s.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newClearCmd())
	rootCmd.AddCommand(c.newImpactCmd())
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

func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("root")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	phpVersion, _ := cmd.Flags().GetString("php-version")
	threads, _ := cmd.Flags().GetInt("threads")

	return app.Options{
		ConfigPath: configPath,
		Root:       root,
		NoCache:    noCache,
		PHPVersion: phpVersion,
		Threads:    threads,
	}
}
