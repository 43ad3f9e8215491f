package cli

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/andy/tomatick/internal/config"
)

var logFile *os.File

// setupLogging configures slog. Logs never go to the terminal since the TUI
// owns it: they are discarded unless --debug or log.level is set, and then
// written to the log file.
func setupLogging(cfg config.LogConfig, debug bool, fileOverride string) error {
	level := strings.TrimSpace(cfg.Level)
	if debug {
		level = "debug"
	}
	if level == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	path := cmp.Or(strings.TrimSpace(fileOverride), cfg.File, filepath.Join(config.Dir(), "tomatick.log"))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logFile = f

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func closeLogging() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
