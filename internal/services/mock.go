package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"apple-storefront/internal/models"
)

// MockShopAPIService provides canned shop data for demo mode and tests.
// Orders created through it are kept in memory, keyed by phone, so the
// order history page works without the remote API.
type MockShopAPIService struct {
	mu     sync.Mutex
	nextID int
	orders map[string][]models.Order
	tiers  map[string]models.DiscountTier
}

// NewMockShopAPIService creates a mock shop API with demo data
func NewMockShopAPIService() *MockShopAPIService {
	return &MockShopAPIService{
		nextID: 1000,
		orders: make(map[string][]models.Order),
		tiers: map[string]models.DiscountTier{
			"+79211396943": 2,
		},
	}
}

func (m *MockShopAPIService) GetProducts(ctx context.Context, limit int) ([]models.Product, error) {
	products := []models.Product{
		{
			ID: 1, Name: "iPhone 15 Pro 256GB", Category: "iPhone",
			Condition: models.ConditionNew, Price: 119990,
			Description: "Титановый корпус, чип A17 Pro, камера 48 Мп.",
			ImageURL:    "/static/img/iphone-15-pro.png", Stock: 4,
		},
		{
			ID: 2, Name: "MacBook Air 13 M3", Category: "Mac",
			Condition: models.ConditionNew, Price: 134990,
			Description: "Чип M3, 8 ГБ памяти, SSD 256 ГБ, до 18 часов работы.",
			ImageURL:    "/static/img/macbook-air-m3.png", Stock: 2,
		},
		{
			ID: 3, Name: "iPad Air 11 M2", Category: "iPad",
			Condition: models.ConditionNew, Price: 74990,
			Description: "Дисплей Liquid Retina, чип M2, поддержка Apple Pencil Pro.",
			ImageURL:    "/static/img/ipad-air-m2.png", Stock: 6,
		},
		{
			ID: 4, Name: "iPhone 13 128GB", Category: "iPhone",
			Condition: models.ConditionUsed, Price: 42990,
			Description: "Проверенный б/у, состояние отличное, аккумулятор 92%.",
			ImageURL:    "/static/img/iphone-13.png", Stock: 1,
		},
		{
			ID: 5, Name: "Apple Watch Series 9 45mm", Category: "Watch",
			Condition: models.ConditionNew, Price: 41990,
			Description: "Чип S9, дисплей Always-On Retina, датчик кислорода в крови.",
			ImageURL:    "/static/img/watch-s9.png", Stock: 8,
		},
		{
			ID: 6, Name: "AirPods Pro 2", Category: "AirPods",
			Condition: models.ConditionNew, Price: 22990,
			Description: "Активное шумоподавление, адаптивная прозрачность, USB-C.",
			ImageURL:    "/static/img/airpods-pro-2.png", Stock: 12,
		},
	}

	if limit > 0 && limit < len(products) {
		return products[:limit], nil
	}
	return products, nil
}

func (m *MockShopAPIService) GetReviews(ctx context.Context) ([]models.Review, error) {
	return []models.Review{
		{
			ID: 1, CustomerName: "Анна Кузнецова", Rating: 5,
			Comment: "Купила iPhone, всё оригинальное, проверили при мне. Очень довольна!",
			Source:  "Яндекс.Карты", CreatedAt: "2024-05-12T14:20:00",
		},
		{
			ID: 2, CustomerName: "Дмитрий Соколов", Rating: 5,
			Comment: "Брал б/у MacBook — состояние как новое, цена заметно ниже рынка.",
			Source:  "Яндекс.Карты", CreatedAt: "2024-04-03T11:05:00",
		},
		{
			ID: 3, CustomerName: "Мария Л.", Rating: 4,
			Comment: "Хороший магазин, вежливые консультанты. Ждала заказ на день дольше.",
			Source:  "Яндекс.Карты", CreatedAt: "2024-03-18T17:40:00",
		},
	}, nil
}

func (m *MockShopAPIService) CheckDiscount(ctx context.Context, phone string) (*DiscountCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// The tier is the count of prior orders, seeded plus in-memory
	tier := m.tiers[phone] + models.DiscountTier(len(m.orders[phone]))
	return &DiscountCheck{
		DiscountTier: tier,
		TotalOrders:  int(tier),
	}, nil
}

func (m *MockShopAPIService) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*OrderCreateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0.0
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}
	total -= total * float64(req.DiscountPercent) / 100

	m.nextID++
	order := models.Order{
		ID:              m.nextID,
		CustomerName:    "Клиент",
		CustomerPhone:   req.Phone,
		TotalAmount:     total,
		DiscountPercent: req.DiscountPercent,
		Status:          models.OrderPending,
		CreatedAt:       time.Now().Format(time.RFC3339),
	}
	m.orders[req.Phone] = append([]models.Order{order}, m.orders[req.Phone]...)

	return &OrderCreateResult{
		OrderID: order.ID,
		Message: fmt.Sprintf("Order %d created", order.ID),
	}, nil
}

func (m *MockShopAPIService) GetOrders(ctx context.Context, phone string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := m.orders[phone]
	result := make([]models.Order, len(orders))
	copy(result, orders)
	return result, nil
}
