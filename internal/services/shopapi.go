package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"apple-storefront/internal/models"
)

// ShopAPIConfig represents shop API client configuration
type ShopAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ShopAPIService talks to the remote shop API. The API multiplexes all
// operations over a single endpoint selected by the "action" query
// parameter.
type ShopAPIService struct {
	config  ShopAPIConfig
	client  *http.Client
	baseURL string
}

// NewShopAPIService creates a new shop API client
func NewShopAPIService(config ShopAPIConfig) *ShopAPIService {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ShopAPIService{
		config:  config,
		client:  &http.Client{Timeout: timeout},
		baseURL: config.BaseURL,
	}
}

// ShopAPIError represents an error response from the shop API
type ShopAPIError struct {
	StatusCode int
	Message    string `json:"error"`
}

func (e *ShopAPIError) Error() string {
	return fmt.Sprintf("shop API error (%d): %s", e.StatusCode, e.Message)
}

// GetProducts fetches the product catalog. A limit of zero or less
// leaves the result count to the server.
func (s *ShopAPIService) GetProducts(ctx context.Context, limit int) ([]models.Product, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var products []models.Product
	if err := s.get(ctx, "products", params, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetReviews fetches the customer reviews collection
func (s *ShopAPIService) GetReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.get(ctx, "reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CheckDiscount looks up the discount tier for a phone number
func (s *ShopAPIService) CheckDiscount(ctx context.Context, phone string) (*DiscountCheck, error) {
	params := url.Values{}
	params.Set("phone", phone)

	var check DiscountCheck
	if err := s.get(ctx, "check-discount", params, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// CreateOrder submits an order creation request
func (s *ShopAPIService) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*OrderCreateResult, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.actionURL("create-order", nil), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send order request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, s.handleAPIError(resp.StatusCode, bodyBytes)
	}

	var result OrderCreateResult
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &result, nil
}

// GetOrders fetches the order history for a phone number
func (s *ShopAPIService) GetOrders(ctx context.Context, phone string) ([]models.Order, error) {
	params := url.Values{}
	params.Set("phone", phone)

	var orders []models.Order
	if err := s.get(ctx, "orders", params, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// get issues a GET for the given action and decodes the JSON response
// into out.
func (s *ShopAPIService) get(ctx context.Context, action string, params url.Values, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.actionURL(action, params), nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", action, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send %s request: %w", action, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return s.handleAPIError(resp.StatusCode, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", action, err)
	}

	return nil
}

// actionURL builds the endpoint URL for an action with extra query
// parameters.
func (s *ShopAPIService) actionURL(action string, params url.Values) string {
	query := url.Values{}
	query.Set("action", action)
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	return s.baseURL + "?" + query.Encode()
}

// handleAPIError turns a non-200 response into a typed error
func (s *ShopAPIService) handleAPIError(statusCode int, body []byte) error {
	apiErr := &ShopAPIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}
	log.Printf("shop API request failed: %v", apiErr)
	return apiErr
}
