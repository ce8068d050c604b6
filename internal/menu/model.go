package menu

// Item is a menu entry as served by the backend. Items are fetched once at
// session start and read-only afterwards.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Options     []Option `json:"options" validate:"dive"`
}

// Option is one purchasable variant of an item. Price is in the smallest
// currency unit.
type Option struct {
	SKU   string `json:"sku" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Price int    `json:"price" validate:"gte=0"`
}
