package delivery

import "strings"

// Method selects how the order reaches the customer.
type Method string

const (
	MethodPickup   Method = "pickup"
	MethodDelivery Method = "delivery"
)

// Choice is the delivery selection attached to an order. Address and Time are
// only set when Method is MethodDelivery.
type Choice struct {
	Method  Method `json:"method"`
	Address string `json:"address,omitempty"`
	Time    string `json:"time,omitempty"`
}

// AreaSet is the whitelist of serviceable area names.
type AreaSet []string

// Eligible reports whether the address falls inside the serviceable areas.
// This is a plain substring check, not a geocoded match: an area name
// appearing anywhere in the address passes, so false positives and negatives
// are accepted. An empty address or an empty set is never eligible.
func (a AreaSet) Eligible(address string) bool {
	if address == "" || len(a) == 0 {
		return false
	}
	for _, area := range a {
		if strings.Contains(address, area) {
			return true
		}
	}
	return false
}
