package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	baseDir string
	logFile string
	debug   bool

	logCloser func() error
)

// SetVersion sets the version string
func SetVersion(v string) {
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "modalslot",
	Short: "Single-slot modal dialogs for bubbletea programs",
	Long: `modalslot - a modal controller that shows exactly one dialog at a time.

Views take typed input, report typed output when they close, can be dismissed
by the user, and can forward to another view without building a stack.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (the TUI owns the terminal)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log modal transitions")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// initLogging installs the default slog logger. Without --log-file logs
// are discarded so they never draw over the TUI.
func initLogging() error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if logFile == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logCloser = f.Close
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return nil
}
