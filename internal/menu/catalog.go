package menu

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/cart"
)

var (
	ErrItemNotFound   = errors.New("menu item not found")
	ErrNoOptionChosen = errors.New("no option chosen")
	ErrUnknownOption  = errors.New("option not available for this item")
)

var validate = validator.New()

// Validate checks a fetched menu against the model constraints before it is
// handed to a session.
func Validate(items []Item) error {
	for _, item := range items {
		if err := validate.Struct(item); err != nil {
			return err
		}
	}
	return nil
}

// SelectableOptions filters an item's options down to those a user can
// actually order. Options without a positive price are placeholders and are
// never shown.
func SelectableOptions(item Item) []Option {
	var out []Option
	for _, opt := range item.Options {
		if opt.Price > 0 {
			out = append(out, opt)
		}
	}
	return out
}

// FindItem looks an item up by name.
func FindItem(items []Item, name string) (Item, bool) {
	for _, item := range items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// ResolveSelection turns a chosen option plus quantity into a cart line.
// A quantity below 1 defaults to 1. The SKU must name one of the item's
// selectable options.
func ResolveSelection(item Item, sku string, quantity int) (cart.Line, error) {
	if sku == "" {
		return cart.Line{}, ErrNoOptionChosen
	}
	if quantity < 1 {
		quantity = 1
	}
	for _, opt := range SelectableOptions(item) {
		if opt.SKU == sku {
			return cart.Line{
				SKU:        opt.SKU,
				GroupName:  item.Name,
				OptionName: opt.Name,
				Price:      opt.Price,
				Quantity:   quantity,
			}, nil
		}
	}
	return cart.Line{}, ErrUnknownOption
}
