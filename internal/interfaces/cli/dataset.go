package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewDatasetCmd creates the dataset command group.
func NewDatasetCmd(ctx *CLIContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect the reference data file",
	}
	cmd.AddCommand(newDatasetCheckCmd(ctx))
	return cmd
}

// newDatasetCheckCmd creates the dataset check subcommand, used to verify a
// reference file parses before deploying it.
func newDatasetCheckCmd(ctx *CLIContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse the reference data file and report the entry count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.EnsureLoaded(); err != nil {
				return err
			}

			if ctx.OutputFormat == "json" {
				return printJSON(cmd, map[string]interface{}{
					"path":    ctx.Service.SourcePath(),
					"entries": ctx.Service.TableSize(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d entries\n",
				ctx.Service.SourcePath(), color.GreenString("OK"), ctx.Service.TableSize())
			return nil
		},
	}
}
