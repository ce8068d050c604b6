package order

import (
	"errors"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/cart"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/delivery"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingAddress = errors.New("delivery address is required")
	ErrMissingTime    = errors.New("delivery time is required")
	ErrOutsideArea    = errors.New("address is outside the delivery area")
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
)

// Compose assembles a submittable order from the cart, the user identity and
// the delivery choice. For the delivery method both address and time must be
// present and the address must fall inside the serviceable areas; otherwise a
// validation error is returned and no order is produced. Methods other than
// delivery carry no address requirements.
func Compose(c *cart.Cart, user User, choice delivery.Choice, areas delivery.AreaSet) (*Order, error) {
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	if choice.Method == delivery.MethodDelivery {
		if choice.Address == "" {
			return nil, ErrMissingAddress
		}
		if choice.Time == "" {
			return nil, ErrMissingTime
		}
		if !areas.Eligible(choice.Address) {
			return nil, ErrOutsideArea
		}
	}

	_, total := c.Totals()

	return &Order{
		User:       user,
		Cart:       c.Lines(),
		TotalPrice: total,
		Delivery:   choice,
	}, nil
}

// IsValidationError reports whether the error blocks the action without
// corrupting state, as opposed to a backend or transport failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrMissingAddress) ||
		errors.Is(err, ErrMissingTime) ||
		errors.Is(err, ErrOutsideArea)
}
