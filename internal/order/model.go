package order

import (
	"github.com/OfficePlata/rakuraku-bento-pages/internal/cart"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/delivery"
)

// User identifies the ordering customer as reported by the platform.
type User struct {
	ID          string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// Order is the payload submitted to the backend. It is constructed once at
// checkout and never mutated after it is sent.
type Order struct {
	User       User            `json:"user"`
	Cart       []cart.Line     `json:"cart"`
	TotalPrice int             `json:"totalPrice"`
	Delivery   delivery.Choice `json:"delivery"`
}
