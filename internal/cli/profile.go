package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/nav"
	"github.com/ruxxapp/ruxx/internal/state"
)

// NewProfileCommand creates the profile command.
func NewProfileCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "profile",
		Short:         "View your profile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			s.Nav.NavigateToView(nav.EditProfile{})
			return s.Render()
		},
	}
	cmd.AddCommand(newProfileEditCommand(opts))
	return cmd
}

func newProfileEditCommand(opts *RootOptions) *cobra.Command {
	var patch state.UserPatch
	cmd := &cobra.Command{
		Use:           "edit",
		Short:         "Update your profile fields",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			// Only fields whose flags were set end up in the patch.
			clearUnchanged(cmd, &patch)
			if !s.App.UpdateUser(patch) {
				return s.fail("sign in to edit your profile")
			}
			s.Nav.NavigateToView(nav.EditProfile{})
			return s.Render()
		},
	}
	patch.Name = new(string)
	patch.Email = new(string)
	patch.Phone = new(string)
	patch.Password = new(string)
	cmd.Flags().StringVar(patch.Name, "name", "", "full name")
	cmd.Flags().StringVar(patch.Email, "email", "", "email address")
	cmd.Flags().StringVar(patch.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(patch.Password, "password", "", "password")
	return cmd
}

func clearUnchanged(cmd *cobra.Command, patch *state.UserPatch) {
	if !cmd.Flags().Changed("name") {
		patch.Name = nil
	}
	if !cmd.Flags().Changed("email") {
		patch.Email = nil
	}
	if !cmd.Flags().Changed("phone") {
		patch.Phone = nil
	}
	if !cmd.Flags().Changed("password") {
		patch.Password = nil
	}
}

// NewPaymentsCommand creates the payments command.
func NewPaymentsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "payments",
		Short:         "View stored payment methods",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			s.Nav.NavigateToView(nav.Payments{})
			return s.Render()
		},
	}
}

// NewAddressCommand creates the address command.
func NewAddressCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "address",
		Short:         "Manage delivery addresses",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			s.Nav.NavigateToView(nav.Addresses{})
			return s.Render()
		},
	}
	cmd.AddCommand(newAddressAddCommand(opts))
	cmd.AddCommand(newAddressRemoveCommand(opts))
	return cmd
}

func newAddressAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "add <address>",
		Short:         "Save a delivery address",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if !s.App.AddAddress(args[0]) {
				return s.fail("sign in to manage addresses")
			}
			s.Nav.NavigateToView(nav.Addresses{})
			return s.Render()
		},
	}
}

func newAddressRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rm <index>",
		Short:         "Remove a saved address by index",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return NewExitError(ExitCommandError, "index must be a number")
			}
			if !s.App.RemoveAddress(index) {
				return s.fail("no address at index " + args[0])
			}
			s.Nav.NavigateToView(nav.Addresses{})
			return s.Render()
		},
	}
}
