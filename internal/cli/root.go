package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/tomatick/internal/app"
	"github.com/andy/tomatick/internal/config"
)

var appInstance *app.App

type rootFlags struct {
	configPath string
	debug      bool
	logFile    string
}

var flags rootFlags

var rootCmd = &cobra.Command{
	Use:   "tomatick",
	Short: "A Pomodoro timer for the terminal",
	Long: `Tomatick cycles through Pomodoro work intervals and short/long breaks.

By default, running tomatick without arguments launches the interactive TUI.
Use subcommands for a headless countdown or to change theme settings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},
	RunE: launchTUI,
}

// Execute runs the root command
func Execute() error {
	defer closeApp()
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use, skipping initialization
func SetApp(a *app.App) {
	appInstance = a
}

func initApp(cmd *cobra.Command) error {
	if appInstance != nil || !needsApp(cmd) {
		return nil
	}

	path := flags.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := setupLogging(cfg.Log, flags.debug, flags.logFile); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	a, err := app.NewWithConfig(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	a.ConfigPath = path
	appInstance = a
	return nil
}

// needsApp is false for help and shell completion commands
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func closeApp() {
	if appInstance != nil {
		_ = appInstance.Close()
		appInstance = nil
	}
	closeLogging()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/tomatick/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "write debug logs")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "log file (default from config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}
