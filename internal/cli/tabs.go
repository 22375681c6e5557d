package cli

import (
	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/nav"
)

// tabCommand builds one bottom-navigation command. Protected tabs route
// through the auth screen for signed-out users; the command still
// succeeds, it just lands on auth instead.
func tabCommand(opts *RootOptions, use, short string, tab domain.Tab) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			s.Nav.NavigateToTab(tab)
			return s.Render()
		},
	}
}

// NewHomeCommand creates the home command.
func NewHomeCommand(opts *RootOptions) *cobra.Command {
	return tabCommand(opts, "home", "Browse the menu", domain.TabHome)
}

// NewReelsCommand creates the reels command.
func NewReelsCommand(opts *RootOptions) *cobra.Command {
	return tabCommand(opts, "reels", "Watch the promo feed", domain.TabReels)
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(opts *RootOptions) *cobra.Command {
	return tabCommand(opts, "orders", "See your order history", domain.TabOrders)
}

// NewAccountCommand creates the account command.
func NewAccountCommand(opts *RootOptions) *cobra.Command {
	return tabCommand(opts, "account", "Manage your account", domain.TabAccount)
}

// NewDealsCommand creates the deals command.
func NewDealsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "deals",
		Short:         "Browse discounted items",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			s.Nav.NavigateToView(nav.Deals{})
			return s.Render()
		},
	}
}

// NewOpenCommand creates the open command for id-carrying views.
func NewOpenCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a product, order, or page by id",
	}
	cmd.AddCommand(openTarget(opts, "product <id>", "Open a menu item", func(id string) nav.View { return nav.Product{ID: id} }))
	cmd.AddCommand(openTarget(opts, "track <order-id>", "Track an order", func(id string) nav.View { return nav.Track{ID: id} }))
	cmd.AddCommand(openTarget(opts, "page <page-id>", "Open a custom page", func(id string) nav.View { return nav.CustomPage{ID: id} }))
	return cmd
}

func openTarget(opts *RootOptions, use, short string, view func(id string) nav.View) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			target := view(args[0])
			if !resolveView(s.App)(target) {
				return s.fail("no such target: " + args[0])
			}
			s.Nav.NavigateToView(target)
			return s.Render()
		},
	}
}

// NewBackCommand creates the back command.
func NewBackCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "back",
		Short:         "Go back one screen",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			s.Nav.GoBack()
			return s.Render()
		},
	}
}

// NewForwardCommand creates the forward command.
func NewForwardCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "forward",
		Short:         "Go forward one screen",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			s.Nav.GoForward()
			return s.Render()
		},
	}
}
