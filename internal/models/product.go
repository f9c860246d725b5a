package models

import "errors"

// ProductCondition represents the condition of a product
type ProductCondition string

const (
	ConditionNew  ProductCondition = "new"
	ConditionUsed ProductCondition = "used"
)

// LowStockThreshold is the stock level at or below which the catalog
// shows a "few items left" badge.
const LowStockThreshold = 3

// Product represents a catalog item owned by the remote shop API.
// The client never mutates a product, only references it.
type Product struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Condition   ProductCondition `json:"condition"`
	Price       float64          `json:"price"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	Stock       int              `json:"stock"`
	CreatedAt   string           `json:"created_at,omitempty"`
}

// Validate validates the product data
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("product name is required")
	}

	if p.Price < 0 {
		return errors.New("product price cannot be negative")
	}

	if p.Stock < 0 {
		return errors.New("product stock cannot be negative")
	}

	return validateProductCondition(p.Condition)
}

func validateProductCondition(condition ProductCondition) error {
	switch condition {
	case ConditionNew, ConditionUsed:
		return nil
	default:
		return errors.New("invalid product condition")
	}
}

// IsAvailable returns true if the product is in stock
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// IsLowStock returns true if only a few items are left
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

// ConditionDisplayName returns a human-readable condition label
func (p *Product) ConditionDisplayName() string {
	if p.Condition == ConditionUsed {
		return "Б/У"
	}
	return "Новый"
}

// FilterByCondition returns the products matching the given condition
// filter. "all" (or an empty string) keeps every product.
func FilterByCondition(products []Product, condition string) []Product {
	if condition == "" || condition == "all" {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if string(p.Condition) == condition {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
