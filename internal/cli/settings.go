package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/tomatick/internal/service"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change theme settings",
	Long:  `Show, change, and reset the color theme, light/dark mode, background and font.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		settings := appInstance.Settings.Settings()
		palette := appInstance.Settings.Palette()

		fmt.Fprintf(out, "%-12s %s\n", "Field", "Value")
		fmt.Fprintln(out, "------------------------------")
		for _, field := range service.Fields {
			fmt.Fprintf(out, "%-12s %s\n", field, service.FieldValue(settings, field))
		}

		fmt.Fprintf(out, "\nPrimary: %s  Hover: %s\n", palette.PrimaryHex, palette.HoverHex)
		if palette.HasBackground() {
			fmt.Fprintf(out, "Background image: %s\n", palette.BackgroundAsset)
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [field] [value]",
	Short: "Change one setting",
	Example: `  tomatick settings set color orange
  tomatick settings set mode dark
  tomatick settings set background galaxy-3
  tomatick settings set font inter`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, ok := service.ParseField(args[0])
		if !ok {
			return fmt.Errorf("unknown field %q (want one of %s)", args[0], fieldNames())
		}

		value := strings.TrimSpace(args[1])
		if !service.ValidValue(field, value) {
			return fmt.Errorf("invalid %s %q (want one of %s)", field, value, strings.Join(service.Values(field), ", "))
		}

		if err := appInstance.Settings.Update(cmd.Context(), field, value); err != nil {
			return fmt.Errorf("failed to update %s: %w", field, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", field, service.FieldValue(appInstance.Settings.Settings(), field))
		return nil
	},
}

var settingsValuesCmd = &cobra.Command{
	Use:   "values [field]",
	Short: "List the allowed values for a field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, ok := service.ParseField(args[0])
		if !ok {
			return fmt.Errorf("unknown field %q (want one of %s)", args[0], fieldNames())
		}

		current := service.FieldValue(appInstance.Settings.Settings(), field)
		for _, v := range service.Values(field) {
			marker := " "
			if v == current {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, v)
		}
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appInstance.Settings.ResetToDefaults(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Settings restored to defaults")
		return nil
	},
}

func fieldNames() string {
	names := make([]string, len(service.Fields))
	for i, f := range service.Fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsValuesCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}
