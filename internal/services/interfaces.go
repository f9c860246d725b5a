package services

import (
	"context"

	"apple-storefront/internal/models"
)

// ShopAPIInterface defines the client surface for the remote shop API.
// Every call is a single request-response exchange; there is no caching
// and no retry at this layer.
type ShopAPIInterface interface {
	GetProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetReviews(ctx context.Context) ([]models.Review, error)
	CheckDiscount(ctx context.Context, phone string) (*DiscountCheck, error)
	CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*OrderCreateResult, error)
	GetOrders(ctx context.Context, phone string) ([]models.Order, error)
}

// DiscountCheck is the response of a check-discount call. A missing or
// malformed tier decodes as zero, which maps to no discount.
type DiscountCheck struct {
	DiscountTier models.DiscountTier `json:"discount_tier"`
	TotalOrders  int                 `json:"total_orders"`
}

// OrderCreateResult is the response of a create-order call
type OrderCreateResult struct {
	OrderID int    `json:"order_id"`
	Message string `json:"message"`
}
