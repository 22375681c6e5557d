package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/overlay"
	"github.com/ruxxapp/ruxx/internal/seed"
	"github.com/ruxxapp/ruxx/internal/store"
)

// NewRunCommand creates the run command, an interactive shell over the
// same command tree. Lines are parsed like shell words and dispatched
// as if each were its own invocation against the shared database.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Interactive session",
		Long: `Start an interactive session.

Shows the splash screen, then reads commands line by line. After a short
while a promo overlay appears; press enter on an empty line to dismiss
it. Type "exit" or "quit" to leave.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts, cmd)
		},
	}
}

func runShell(opts *RootOptions, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if err := printSplash(opts, out); err != nil {
		return err
	}

	promo := overlay.NewPromo()
	defer promo.Close()
	promo.Schedule(func() {
		st, err := openStore(opts)
		if err != nil {
			return
		}
		defer st.Close()
		settings := store.Load(st, store.KeySettings, seed.Builtin().Settings)
		fmt.Fprintf(out, "\n*** %s ***\n%s\n(press enter to dismiss)\n",
			settings.PromoTitle, settings.PromoSubtitle)
	})

	scanner := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			promo.Dismiss()
			fmt.Fprint(out, "> ")
			continue
		case "exit", "quit":
			return nil
		}

		words, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n> ", err)
			continue
		}
		if words[0] == "run" {
			fmt.Fprint(out, "Error: already in an interactive session\n> ")
			continue
		}

		sub := NewRootCommand()
		sub.SetIn(cmd.InOrStdin())
		sub.SetOut(out)
		sub.SetErr(cmd.ErrOrStderr())
		pass := append(words, "--db", opts.Database, "--format", opts.Format)
		if opts.SeedDir != "" {
			pass = append(pass, "--seed", opts.SeedDir)
		}
		sub.SetArgs(pass)
		if err := sub.Execute(); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// printSplash renders the branded splash shown while the app boots.
func printSplash(opts *RootOptions, out io.Writer) error {
	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()
	settings := store.Load(st, store.KeySettings, seed.Builtin().Settings)
	fmt.Fprintf(out, "=== %s ===\n%s\n\n", settings.AppName, settings.PromoTitle)
	return nil
}
