package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andy/tomatick/internal/domain"
	"github.com/andy/tomatick/internal/timer"
)

type runOptions struct {
	minutes int
	seconds int
	noBell  bool
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run [mode]",
	Short: "Run a countdown in the terminal without the TUI",
	Long: `Run a single countdown and exit when it completes.

Mode is pomodoro (default), short or long. Ctrl+C stops the countdown.`,
	Example: `  tomatick run
  tomatick run short
  tomatick run pomodoro --minutes 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := domain.ModePomodoro
		if len(args) == 1 {
			m, ok := domain.ParseMode(args[0])
			if !ok {
				return fmt.Errorf("unknown mode %q (want pomodoro, short or long)", args[0])
			}
			mode = m
		}
		if runOpts.minutes < 0 || runOpts.seconds < 0 {
			return fmt.Errorf("--minutes and --seconds must not be negative")
		}
		if runOpts.minutes > domain.MaxClockMinutes || runOpts.seconds > 59 {
			return fmt.Errorf("--minutes must be at most %d and --seconds at most 59", domain.MaxClockMinutes)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		interactive := term.IsTerminal(int(os.Stdout.Fd()))
		palette := appInstance.Settings.Palette()
		accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.PrimaryHex))
		if palette.Dark {
			accent = accent.Foreground(lipgloss.Color(palette.HoverHex))
		}

		engine := appInstance.NewEngine(timer.WithMode(mode))
		scheduler := timer.NewTickerScheduler(clockwork.NewRealClock(), appInstance.Config.Timer.TickInterval)
		ctrl := timer.NewController(engine, scheduler, func(s domain.TimerState) {
			printProgress(out, s, interactive)
		})
		defer ctrl.Close()

		if cmd.Flags().Changed("minutes") || cmd.Flags().Changed("seconds") {
			ctrl.SetTime(runOpts.minutes, runOpts.seconds)
		}

		state := ctrl.State()
		if state.Remaining <= 0 {
			return fmt.Errorf("nothing to count down")
		}
		fmt.Fprintf(out, "%s %s\n", accent.Render(mode.Label()), state.String())

		ctrl.Start()

		select {
		case finished := <-ctrl.Completions():
			ctrl.Close()
			msg := domain.MessageFor(finished)
			if interactive {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n  %s\n", accent.Render(msg.Title), msg.Description)
			if appInstance.Config.Timer.Bell && !runOpts.noBell {
				fmt.Fprint(out, "\a")
			}
		case <-ctx.Done():
			ctrl.Close()
			if interactive {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "Stopped with %s left\n", ctrl.State().String())
		}

		return nil
	},
}

// printProgress redraws the clock in place on a terminal, and prints one
// line per minute otherwise
func printProgress(out io.Writer, s domain.TimerState, interactive bool) {
	if interactive {
		fmt.Fprintf(out, "\r  %s ", s.String())
		return
	}
	if s.Seconds() == 0 && s.Remaining > 0 {
		fmt.Fprintf(out, "%s remaining\n", s.String())
	}
}

func init() {
	runCmd.Flags().IntVar(&runOpts.minutes, "minutes", 0, "override the countdown minutes")
	runCmd.Flags().IntVar(&runOpts.seconds, "seconds", 0, "override the countdown seconds")
	runCmd.Flags().BoolVar(&runOpts.noBell, "no-bell", false, "do not ring the terminal bell on completion")
}
