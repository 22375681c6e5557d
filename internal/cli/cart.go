package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/domain"
)

// NewCartCommand creates the cart command and its line-editing
// subcommands.
func NewCartCommand(opts *RootOptions) *cobra.Command {
	cmd := tabCommand(opts, "cart", "View your cart", domain.TabCart)
	cmd.AddCommand(newCartAddCommand(opts))
	cmd.AddCommand(newCartSetCommand(opts))
	return cmd
}

func newCartAddCommand(opts *RootOptions) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:           "add <food-id>",
		Short:         "Add a menu item to the cart",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			item, ok := s.App.FoodItem(args[0])
			if !ok {
				return s.fail("no such menu item: " + args[0])
			}
			s.App.AddToCart(item, qty)
			return s.Render()
		},
	}
	cmd.Flags().IntVar(&qty, "qty", 1, "quantity to add")
	return cmd
}

func newCartSetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "set <food-id> <qty>",
		Short:         "Set a cart line's quantity (0 removes it)",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return NewExitError(ExitCommandError, "quantity must be a number")
			}
			if !s.App.SetCartQuantity(args[0], qty) {
				return s.fail("item not in cart: " + args[0])
			}
			s.Nav.NavigateToTab(domain.TabCart)
			return s.Render()
		},
	}
}
