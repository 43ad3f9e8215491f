package cli

import (
	"github.com/spf13/cobra"

	"github.com/andy/tomatick/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive Pomodoro timer and theme settings screens.`,
	Args:  cobra.NoArgs,
	RunE:  launchTUI,
}

func launchTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(appInstance)
}
