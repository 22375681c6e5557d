package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/state"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "login <email> <password>",
		Short:         "Sign in to your account",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if !s.App.Login(args[0], args[1]) {
				return s.fail("invalid email or password")
			}
			s.Nav.OnAuthenticated()
			return s.Render()
		},
	}
}

// NewSignupCommand creates the signup command.
func NewSignupCommand(opts *RootOptions) *cobra.Command {
	var name, email, phone, password string
	cmd := &cobra.Command{
		Use:           "signup",
		Short:         "Create an account and sign in",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.App.Signup(name, email, phone, password); err != nil {
				if errors.Is(err, state.ErrDuplicateEmail) {
					return s.fail("an account with this email already exists")
				}
				return s.fail(err.Error())
			}
			s.Nav.OnAuthenticated()
			return s.Render()
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// NewLogoutCommand creates the logout command. Logging out clears the
// current user and resets navigation to the home screen.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logout",
		Short:         "Sign out",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			s.App.Logout()
			s.Nav.OnLogout()
			return s.Render()
		},
	}
}
