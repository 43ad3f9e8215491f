package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/tomatick/internal/domain"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List timer modes and their durations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		durations := appInstance.Durations

		fmt.Fprintf(out, "%-12s %-14s %s\n", "Mode", "Label", "Duration")
		fmt.Fprintln(out, "------------------------------------")
		for _, mode := range domain.Modes {
			fmt.Fprintf(out, "%-12s %-14s %s\n", mode, mode.Label(), domain.FormatClock(durations.For(mode)))
		}
		return nil
	},
}
