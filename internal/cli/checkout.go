package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/nav"
)

// NewCheckoutCommand creates the checkout command.
//
// Choosing a delivery address is a checkout-screen concern: the
// container accepts whatever address string it is given, so the
// required-for-delivery rule is enforced here.
func NewCheckoutCommand(opts *RootOptions) *cobra.Command {
	var (
		fulfilment   string
		addressIndex int
	)
	cmd := &cobra.Command{
		Use:           "checkout",
		Short:         "Place an order from the cart",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.App.Authenticated() {
				s.Nav.NavigateToView(nav.Checkout{})
				if err := s.Render(); err != nil {
					return err
				}
				return NewExitError(ExitFailure, "sign in to check out")
			}
			// Bare "checkout" opens the summary screen; passing --type
			// confirms and places the order.
			if !cmd.Flags().Changed("type") {
				s.Nav.NavigateToView(nav.Checkout{})
				return s.Render()
			}
			if len(s.App.Cart()) == 0 {
				return s.fail("your cart is empty")
			}

			var deliveryType domain.DeliveryType
			switch fulfilment {
			case "delivery":
				deliveryType = domain.DeliveryHome
			case "pickup":
				deliveryType = domain.DeliveryPickup
			default:
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid --type %q: must be delivery or pickup", fulfilment))
			}

			var address string
			if deliveryType == domain.DeliveryHome {
				user := s.App.CurrentUser()
				if addressIndex < 0 || addressIndex >= len(user.Addresses) {
					return s.fail("no delivery address selected: add one or pass a valid --address-index")
				}
				address = user.Addresses[addressIndex]
			}

			if _, err := s.App.PlaceOrder(deliveryType, address); err != nil {
				return s.fail(err.Error())
			}
			s.Nav.NavigateToView(nav.Confirmation{})
			return s.Render()
		},
	}
	cmd.Flags().StringVar(&fulfilment, "type", "delivery", "fulfilment type (delivery|pickup)")
	cmd.Flags().IntVar(&addressIndex, "address-index", 0, "saved address to deliver to")
	return cmd
}
