// Package cli implements the hsnctl command tree.  Commands operate directly
// on the reference data file, so hsnctl works without a running server.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/hsn-advisor/internal/application/advisor"
	"github.com/turtacn/hsn-advisor/internal/config"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/dataset"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath   string
	DatasetPath  string
	LogLevel     string
	OutputFormat string
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config  *config.Config
	Logger  logging.Logger
	Service *advisor.Service

	OutputFormat string

	loaded bool
}

// EnsureLoaded loads the reference table once per invocation.  Commands that
// need lookup data call this; classify-only commands do not.
func (ctx *CLIContext) EnsureLoaded() error {
	if ctx.loaded {
		return nil
	}
	if err := ctx.Service.Reload(); err != nil {
		return fmt.Errorf("failed to load reference data from %s: %w", ctx.Service.SourcePath(), err)
	}
	ctx.loaded = true
	return nil
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cliCtx := &CLIContext{}

	cmd := &cobra.Command{
		Use:     "hsnctl",
		Short:   "hsnctl — validate HSN codes against a reference table",
		Long:    "hsnctl validates HSN classification codes, extracts candidate codes\nfrom free-form text, and composes chat-style replies, all against a\nlocal reference data file (.xlsx or .csv).",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initContext(cliCtx, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: environment + built-in defaults)")
	pf.StringVarP(&opts.DatasetPath, "dataset", "d", "", "reference data file, overrides the configured path")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json)")

	cmd.AddCommand(
		NewServeCmd(cliCtx),
		NewValidateCmd(cliCtx),
		NewClassifyCmd(cliCtx),
		NewChatCmd(cliCtx),
		NewDatasetCmd(cliCtx),
	)
	return cmd
}

// initContext loads configuration and builds the service for this invocation.
func initContext(ctx *CLIContext, opts *RootOptions) error {
	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	if opts.DatasetPath != "" {
		cfg.Dataset.Path = opts.DatasetPath
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       opts.LogLevel,
		Format:      "console",
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	ctx.Config = cfg
	ctx.Logger = logger
	ctx.OutputFormat = strings.ToLower(opts.OutputFormat)
	ctx.Service = advisor.NewService(dataset.Source{
		Path:              cfg.Dataset.Path,
		Format:            cfg.Dataset.Format,
		CodeColumn:        cfg.Dataset.CodeColumn,
		DescriptionColumn: cfg.Dataset.DescriptionColumn,
	}, advisor.Options{Logger: logger})
	ctx.loaded = false
	return nil
}

// printJSON writes data as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Execute runs the root command.  Errors are printed to stderr.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return err
	}
	return nil
}
