package models

// DiscountTier is the customer's loyalty tier as reported by the remote
// shop API: a count of qualifying prior purchases. The tier is a
// read-only projection of server state, never mutated locally.
type DiscountTier int

// Percent maps a tier to its discount percentage. Tier 3 and above maps
// to the top rate; there is no higher bracket.
func (t DiscountTier) Percent() int {
	switch {
	case t <= 0:
		return 0
	case t == 1:
		return 5
	case t == 2:
		return 10
	default:
		return 15
	}
}

// HasDiscount returns true if the tier grants a discount
func (t DiscountTier) HasDiscount() bool {
	return t.Percent() > 0
}

// Quote is the priced view of a cart for a given discount tier
type Quote struct {
	Subtotal        float64
	DiscountPercent int
	DiscountAmount  float64
	Total           float64
}

// ComputeQuote derives subtotal, discount and total from the cart
// contents and the customer's tier. An empty cart yields all zeros; the
// checkout flow rejects that state before any order is submitted.
func ComputeQuote(cart *Cart, tier DiscountTier) Quote {
	subtotal := cart.Total()
	percent := tier.Percent()
	discount := subtotal * float64(percent) / 100

	return Quote{
		Subtotal:        subtotal,
		DiscountPercent: percent,
		DiscountAmount:  discount,
		Total:           subtotal - discount,
	}
}
