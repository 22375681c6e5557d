package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/nav"
	"github.com/ruxxapp/ruxx/internal/screen"
	"github.com/ruxxapp/ruxx/internal/seed"
	"github.com/ruxxapp/ruxx/internal/session"
	"github.com/ruxxapp/ruxx/internal/state"
	"github.com/ruxxapp/ruxx/internal/store"
)

// Session bundles everything one command invocation needs: the open
// store, the state container, the restored navigation controller, and
// the toasts raised while the command ran.
type Session struct {
	Store  *store.Store
	App    *state.App
	Nav    *nav.Controller
	Out    *OutputFormatter
	toasts []string
}

// openSession opens the database, seeds defaults on first run, and
// restores the navigation session persisted by the previous command.
func openSession(opts *RootOptions, cmd *cobra.Command) (*Session, error) {
	defaults := seed.Builtin()
	if opts.SeedDir != "" {
		var err error
		defaults, err = seed.LoadDir(opts.SeedDir)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load seed data", err)
		}
	}

	st, err := openStore(opts)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Store: st,
		Out: &OutputFormatter{
			Format:  opts.Format,
			Writer:  cmd.OutOrStdout(),
			Verbose: opts.Verbose,
		},
	}
	s.App = state.New(st, defaults,
		state.WithNotifier(func(message string) {
			s.toasts = append(s.toasts, message)
		}),
	)
	s.Nav = session.Restore(st, s.App.Authenticated, resolveView(s.App))
	return s, nil
}

// openStore opens the database, creating its parent directory first so
// the per-user default path works on first run.
func openStore(opts *RootOptions) (*store.Store, error) {
	if dir := filepath.Dir(opts.Database); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to create data directory", err)
		}
	}
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

// Close persists the navigation session and releases the store.
func (s *Session) Close() {
	session.Save(s.Store, s.Nav)
	s.Store.Close()
}

// Render draws the current screen plus any toasts raised by the
// command. A view whose target vanished falls back through history the
// way the in-app back gesture does.
func (s *Session) Render() error {
	var sb strings.Builder
	err := screen.Render(&sb, s.App, s.Nav.View(), s.Nav.Tab())
	var missing *screen.ErrTargetMissing
	if errors.As(err, &missing) {
		s.Nav.GoBack()
		sb.Reset()
		err = screen.Render(&sb, s.App, s.Nav.View(), s.Nav.Tab())
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "render failed", err)
	}
	for _, toast := range s.toasts {
		sb.WriteString("* " + toast + "\n")
	}
	var data interface{}
	if len(s.toasts) > 0 {
		data = map[string]interface{}{"toasts": s.toasts}
	}
	return s.Out.Screen(sb.String(), data)
}

// fail reports a domain failure in the configured format and carries
// the failure exit code.
func (s *Session) fail(message string) error {
	if err := s.Out.Error(message); err != nil {
		return WrapExitError(ExitCommandError, "write failed", err)
	}
	return NewExitError(ExitFailure, message)
}

// resolveView reports whether a view's target still exists in the
// container, so navigation can skip entries pointing at deleted data.
func resolveView(app *state.App) func(nav.View) bool {
	return func(v nav.View) bool {
		switch t := v.(type) {
		case nav.Product:
			_, ok := app.FoodItem(t.ID)
			return ok
		case nav.Track:
			_, ok := app.Order(t.ID)
			return ok
		case nav.CustomPage:
			_, ok := app.CustomPage(t.ID)
			return ok
		}
		return true
	}
}
