package cart

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Line is one selected option in the cart. SKU is unique within a cart:
// adding the same SKU again merges into the existing line.
type Line struct {
	SKU        string `json:"sku"`
	GroupName  string `json:"groupName"`
	OptionName string `json:"optionName"`
	Price      int    `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (l Line) Subtotal() int {
	return l.Price * l.Quantity
}

// Cart is an ordered sequence of lines; insertion order is display order.
type Cart struct {
	lines []Line
}

// Add merges the line into the cart. A line with the same SKU has its
// quantity incremented; otherwise the line is appended.
func (c *Cart) Add(line Line) error {
	if line.Quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].SKU == line.SKU {
			c.lines[i].Quantity += line.Quantity
			return nil
		}
	}
	c.lines = append(c.lines, line)
	return nil
}

// ChangeQuantity adds delta to the line at index. A resulting quantity of
// zero or less removes the line. Out-of-range indexes are a silent no-op.
func (c *Cart) ChangeQuantity(index, delta int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines[index].Quantity += delta
	if c.lines[index].Quantity <= 0 {
		c.Remove(index)
	}
}

// Remove deletes the line at index. Out-of-range indexes are a silent no-op.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// Totals recomputes the item count and total price from the lines. It is
// never cached.
func (c *Cart) Totals() (count, total int) {
	for _, l := range c.lines {
		count += l.Quantity
		total += l.Subtotal()
	}
	return count, total
}

// Lines returns a copy of the cart lines in display order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
