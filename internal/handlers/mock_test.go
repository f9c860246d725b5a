package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"apple-storefront/internal/config"
	"apple-storefront/internal/models"
	"apple-storefront/internal/services"
)

// mockShopAPI is a testify mock of the shop API client
type mockShopAPI struct {
	mock.Mock
}

func (m *mockShopAPI) GetProducts(ctx context.Context, limit int) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopAPI) GetReviews(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).([]models.Review); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopAPI) CheckDiscount(ctx context.Context, phone string) (*services.DiscountCheck, error) {
	args := m.Called(ctx, phone)
	if c, ok := args.Get(0).(*services.DiscountCheck); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopAPI) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*services.OrderCreateResult, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*services.OrderCreateResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopAPI) GetOrders(ctx context.Context, phone string) ([]models.Order, error) {
	args := m.Called(ctx, phone)
	if o, ok := args.Get(0).([]models.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			Name:       "AquaApple",
			City:       "Вологда",
			Address:    "г. Вологда, ул. Каменный Мост, д. 6",
			Phone:      "+7 921 139-69-43",
			PhoneLink:  "tel:+79211396943",
			Email:      "info@aquaapple.ru",
			Hours:      "Пн-Вс: 10:00 - 20:00",
			MapURL:     "https://example.com/map",
			ReviewsURL: "https://example.com/reviews",
		},
	}
}

func testStore() sessions.Store {
	return sessions.NewCookieStore([]byte("test-session-secret"))
}

// sessionCookie seeds a session through the store and returns the
// resulting cookie for attaching to a request.
func sessionCookie(t *testing.T, store sessions.Store, seed func(*sessions.Session)) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	session, err := store.Get(req, sessionName)
	require.NoError(t, err)

	seed(session)
	require.NoError(t, session.Save(req, rec))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

// cartCookie seeds a session holding the given cart
func cartCookie(t *testing.T, store sessions.Store, cart *models.Cart) *http.Cookie {
	t.Helper()
	return sessionCookie(t, store, func(s *sessions.Session) {
		data, err := json.Marshal(cart)
		require.NoError(t, err)
		s.Values[cartSessionKey] = string(data)
	})
}

// responseCart decodes the cart from the session cookie set on the
// response.
func responseCart(t *testing.T, store sessions.Store, rec *httptest.ResponseRecorder) *models.Cart {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	session, err := store.Get(req, sessionName)
	require.NoError(t, err)
	return getCart(session)
}

func testProduct(id int, name string, price float64, stock int) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		Category:  "iPhone",
		Condition: models.ConditionNew,
		Price:     price,
		Stock:     stock,
	}
}
