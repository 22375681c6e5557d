package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/nav"
	"github.com/ruxxapp/ruxx/internal/qr"
)

// NewOrderCommand creates the order command.
func NewOrderCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Act on a placed order",
	}
	cmd.AddCommand(newOrderCompleteCommand(opts))
	cmd.AddCommand(newOrderStatusCommand(opts))
	cmd.AddCommand(newOrderQRCommand(opts))
	return cmd
}

// newOrderCompleteCommand is the self-service "mark as delivered"
// action from order tracking.
func newOrderCompleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "complete <order-id>",
		Short:         "Mark an order as completed",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if !s.App.MarkOrderCompleted(args[0]) {
				return s.fail("no such order: " + args[0])
			}
			s.Nav.NavigateToView(nav.Track{ID: args[0]})
			return s.Render()
		},
	}
}

func newOrderStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "status <order-id> <status>",
		Short:         "Set an order's status",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			status := domain.OrderStatus(args[1])
			if !domain.ValidOrderStatus(status) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid status %q: must be %s, %s or %s",
						args[1], domain.OrderPending, domain.OrderCompleted, domain.OrderCancelled))
			}
			if !s.App.SetOrderStatus(args[0], status) {
				return s.fail("no such order: " + args[0])
			}
			s.Nav.NavigateToView(nav.Track{ID: args[0]})
			return s.Render()
		},
	}
}

// newOrderQRCommand writes the pickup code shown at the counter for
// in-store pickup orders.
func newOrderQRCommand(opts *RootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:           "qr <order-id>",
		Short:         "Write an order's pickup code as a PNG",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			order, ok := s.App.Order(args[0])
			if !ok {
				return s.fail("no such order: " + args[0])
			}
			png, err := qr.PickupCode(order)
			if err != nil {
				return WrapExitError(ExitCommandError, "encoding pickup code failed", err)
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return WrapExitError(ExitCommandError, "writing "+out+" failed", err)
			}
			return s.Out.Screen(fmt.Sprintf("Pickup code for %s written to %s\n", order.ID, out),
				map[string]string{"order": order.ID, "file": out})
		},
	}
	cmd.Flags().StringVar(&out, "out", "pickup.png", "output PNG path")
	return cmd
}
