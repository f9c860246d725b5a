package models

import (
	"errors"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order represents an order as returned by the remote shop API. Orders
// are created server-side; the client only builds the creation request
// and displays the fetched representation.
type Order struct {
	ID              int         `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	DiscountPercent int         `json:"discount_percent"`
	Status          OrderStatus `json:"status"`
	IsPreorder      bool        `json:"is_preorder"`
	CreatedAt       string      `json:"created_at"`
}

// OrderItem is the minimal line-item shape the shop API expects when
// creating an order.
type OrderItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderCreateRequest represents the body of a create-order call
type OrderCreateRequest struct {
	Phone           string      `json:"phone"`
	Items           []OrderItem `json:"items"`
	DiscountPercent int         `json:"discount_percent"`
}

// Validate validates the order creation request before any network call
func (req *OrderCreateRequest) Validate() error {
	if req.Phone == "" {
		return errors.New("phone is required")
	}

	if len(req.Items) == 0 {
		return errors.New("order must contain at least one item")
	}

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return errors.New("item quantity must be positive")
		}
		if item.Price < 0 {
			return errors.New("item price cannot be negative")
		}
	}

	if req.DiscountPercent < 0 || req.DiscountPercent > 15 {
		return errors.New("discount percent out of range")
	}

	return nil
}

// NewOrderItems converts cart contents into the shape the shop API
// expects: product identity, quantity and unit price.
func NewOrderItems(cart *Cart) []OrderItem {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, OrderItem{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			Price:     it.Product.Price,
		})
	}
	return items
}

// validateOrderStatus validates an order status
func validateOrderStatus(status OrderStatus) error {
	switch status {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return nil
	default:
		return errors.New("invalid order status")
	}
}

// Validate validates the order data
func (o *Order) Validate() error {
	if o.CustomerPhone == "" {
		return errors.New("customer phone is required")
	}

	if o.TotalAmount < 0 {
		return errors.New("total amount cannot be negative")
	}

	return validateOrderStatus(o.Status)
}

// GetStatusDisplayName returns a human-readable status name
func (o *Order) GetStatusDisplayName() string {
	switch o.Status {
	case OrderPending:
		return "Ожидает"
	case OrderConfirmed:
		return "Подтвержден"
	case OrderCompleted:
		return "Выполнен"
	case OrderCancelled:
		return "Отменен"
	default:
		return string(o.Status)
	}
}

// StatusBadgeClass returns the CSS class for the status badge
func (o *Order) StatusBadgeClass() string {
	switch o.Status {
	case OrderConfirmed:
		return "badge badge-primary"
	case OrderCompleted:
		return "badge badge-outline"
	case OrderCancelled:
		return "badge badge-muted"
	default:
		return "badge badge-secondary"
	}
}

// createdAtLayouts covers the timestamp shapes the shop API has been
// seen to produce (ISO 8601 with and without fractional seconds or zone).
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// CreatedTime parses the order's creation timestamp. The second return
// value is false when the timestamp is absent or unparseable.
func (o *Order) CreatedTime() (time.Time, bool) {
	return parseAPITime(o.CreatedAt)
}

func parseAPITime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
