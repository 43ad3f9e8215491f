package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset stored data",
	Long: `Reset stored data.

Examples:
  tomatick reset settings   # Restore default theme settings
  tomatick reset all        # Remove the stored settings record entirely
                            # (and the encrypted database with its key)`,
}

var resetSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Restore and save the default theme settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes && !confirmPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), "This will restore the default theme settings. Continue?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		if err := appInstance.Settings.ResetToDefaults(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Theme settings restored to defaults.")
		return nil
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete the stored settings record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes && !confirmPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), "This will delete ALL stored data. Continue?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		if err := appInstance.Wipe(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "All stored data has been deleted.")
		return nil
	},
}

func confirmPrompt(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N] ", message)
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.PersistentFlags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")

	resetCmd.AddCommand(resetSettingsCmd)
	resetCmd.AddCommand(resetAllCmd)
}
