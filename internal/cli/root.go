// Package cli implements the ruxx command tree. Every command is one
// interaction with the app: it restores the persisted session, applies
// the action to the state container, saves the session back, and draws
// the resulting screen. Consecutive invocations against the same
// database therefore behave like one continuous app session.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string
	SeedDir  string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the ruxx CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ruxx",
		Short: "Ruxx - restaurant ordering, local-first",
		Long: `Ruxx is a restaurant ordering app driven from the command line.

All state (menu, cart, orders, reels, accounts, branding) lives in a
local SQLite database; there is no server and no network. Each command
performs one interaction and prints the screen you land on.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", defaultDBPath(), "path to SQLite database")
	cmd.PersistentFlags().StringVar(&opts.SeedDir, "seed", "", "directory with a seed.yaml overriding the built-in defaults")

	cmd.AddCommand(NewHomeCommand(opts))
	cmd.AddCommand(NewReelsCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewAccountCommand(opts))
	cmd.AddCommand(NewDealsCommand(opts))
	cmd.AddCommand(NewOpenCommand(opts))
	cmd.AddCommand(NewBackCommand(opts))
	cmd.AddCommand(NewForwardCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewSignupCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewAddressCommand(opts))
	cmd.AddCommand(NewPaymentsCommand(opts))
	cmd.AddCommand(NewReelCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewAdminCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// defaultDBPath puts the database in the per-user config directory,
// falling back to the working directory when none is known.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ruxx.db"
	}
	return filepath.Join(dir, "ruxx", "ruxx.db")
}

// configureLogging routes slog to stderr so screen output on stdout
// stays clean in both formats.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
