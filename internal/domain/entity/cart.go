package entity

// CartLine is a product captured in the cart together with its quantity.
// A line always carries a quantity of at least 1; reducing it to 0 removes
// the line from the cart instead of keeping it at zero.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price multiplied by quantity for this line.
func (l CartLine) LineTotal() int {
	return l.Price * l.Quantity
}

// Cart is the session-scoped, mutable collection of cart lines built before
// checkout. It holds at most one line per product identifier.
type Cart struct {
	Lines []CartLine
}

// AddItem puts a product into the cart. If the product is already present its
// quantity is incremented by 1, otherwise a new line with quantity 1 is added.
func (c *Cart) AddItem(p Product) {
	for i := range c.Lines {
		if c.Lines[i].ID == p.ID {
			c.Lines[i].Quantity++

			return
		}
	}

	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// ChangeQuantity adjusts the quantity of a line by delta, floored at 0.
// A resulting quantity of 0 removes the line. A missing product id is a no-op.
func (c *Cart) ChangeQuantity(productID string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ID != productID {
			continue
		}

		quantity := c.Lines[i].Quantity + delta
		if quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity = quantity
		}

		return
	}
}

// Clear empties the cart. Called exactly once per successful order.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Subtotal returns the sum of line totals over all lines.
func (c *Cart) Subtotal() int {
	total := 0
	for _, line := range c.Lines {
		total += line.LineTotal()
	}

	return total
}

// Snapshot returns value copies of the cart lines as immutable order lines.
func (c *Cart) Snapshot() []OrderLine {
	lines := make([]OrderLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, OrderLine{
			ProductID: line.ID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	return lines
}
