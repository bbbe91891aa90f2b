package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewClassifyCmd creates the classify command.  Classification is purely
// lexical, so it never touches the reference table.
func NewClassifyCmd(ctx *CLIContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>...",
		Short: "Split free-form text into candidate codes and rejected tokens",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := ctx.Service.Classify(strings.Join(args, " "))

			if ctx.OutputFormat == "json" {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			if len(result.Candidates) == 0 && len(result.Rejected) == 0 {
				fmt.Fprintln(out, "No candidate codes or rejected tokens found.")
				return nil
			}
			for _, c := range result.Candidates {
				fmt.Fprintf(out, "candidate  %s\n", c)
			}
			for _, r := range result.Rejected {
				fmt.Fprintf(out, "rejected   %s\n", r)
			}
			return nil
		},
	}
}
