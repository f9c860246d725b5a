package models

// CartItem pairs a product with the selected quantity.
// Invariant: 1 <= Quantity <= Product.Stock at the time of the last change.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price times quantity for this line
func (i *CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart is the session-scoped shopping cart. Items are kept in insertion
// order and keyed by product identity: adding an already present product
// increments its quantity instead of appending a second entry.
type Cart struct {
	Items []CartItem `json:"items"`
}

// AddProduct adds one unit of the product to the cart. The quantity is
// clamped so it never exceeds the product's stock; adding an out-of-stock
// product is a no-op.
func (c *Cart) AddProduct(p Product) {
	if p.Stock < 1 {
		return
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			if c.Items[i].Quantity < p.Stock {
				c.Items[i].Quantity++
			}
			return
		}
	}

	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// RemoveProduct deletes the item with the given product identity.
// Removing an absent product is a no-op, not an error.
func (c *Cart) RemoveProduct(productID int) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the given product. A quantity of
// zero or less removes the item; a quantity above stock clamps to stock.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveProduct(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			if quantity > c.Items[i].Product.Stock {
				quantity = c.Items[i].Product.Stock
			}
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Total returns the sum over all items of price times quantity
func (c *Cart) Total() float64 {
	total := 0.0
	for i := range c.Items {
		total += c.Items[i].Subtotal()
	}
	return total
}

// Count returns the sum of quantities across all items, used for the
// cart badge. A cart with two products at quantities 3 and 1 counts 4.
func (c *Cart) Count() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty returns true if the cart holds no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Contains reports whether the cart holds an item for the given product
func (c *Cart) Contains(productID int) bool {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return true
		}
	}
	return false
}
