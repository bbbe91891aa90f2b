package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewChatCmd creates the chat command.  It prints the same reply text the
// /api/v1/chat endpoint would return.
func NewChatCmd(ctx *CLIContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>...",
		Short: "Compose the chat reply for a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.EnsureLoaded(); err != nil {
				return err
			}

			reply := ctx.Service.Respond(strings.Join(args, " "))
			if ctx.OutputFormat == "json" {
				return printJSON(cmd, map[string]string{"reply": reply})
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}
