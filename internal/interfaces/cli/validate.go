package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/turtacn/hsn-advisor/internal/domain/hsn"
)

var validateSummary bool

// NewValidateCmd creates the validate command.
func NewValidateCmd(ctx *CLIContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <code> [code...]",
		Short: "Validate one or more HSN codes",
		Long:  "Validate HSN codes against the reference table.  Results keep the\nargument order; duplicates are validated (and counted) again.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, ctx, args)
		},
	}
	cmd.Flags().BoolVar(&validateSummary, "summary", false, "print the invalid-attempt summary after validating")
	return cmd
}

func runValidate(cmd *cobra.Command, ctx *CLIContext, codes []string) error {
	if err := ctx.EnsureLoaded(); err != nil {
		return err
	}

	entries := ctx.Service.ValidateAll(codes)

	if ctx.OutputFormat == "json" {
		out := map[string]interface{}{"results": entries}
		if validateSummary {
			out["invalid_attempts"] = ctx.Service.InvalidSummary()
		}
		return printJSON(cmd, out)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Code", "Status", "Detail"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	invalid := 0
	for _, e := range entries {
		if e.Result.Valid {
			detail := e.Result.Description
			if len(e.Result.Hierarchy) > 0 {
				detail += fmt.Sprintf(" (%d ancestor levels)", len(e.Result.Hierarchy))
			}
			table.Append([]string{e.Code, color.GreenString("valid"), detail})
			continue
		}
		invalid++
		table.Append([]string{e.Code, color.RedString("invalid"), e.Result.Reason})
	}
	table.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d codes valid\n", len(entries)-invalid, len(entries))

	if validateSummary {
		printInvalidSummary(cmd, ctx.Service.InvalidSummary())
	}
	return nil
}

func printInvalidSummary(cmd *cobra.Command, summary []hsn.AttemptCount) {
	if len(summary) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No invalid attempts recorded.")
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nInvalid attempts:")
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Reason | Code", "Count"})
	table.SetBorder(false)
	for _, a := range summary {
		table.Append([]string{a.Key, fmt.Sprintf("%d", a.Count)})
	}
	table.Render()
}
