package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"apple-storefront/internal/models"
)

func TestOrderHistoryWithoutPhoneShowsForm(t *testing.T) {
	api := new(mockShopAPI)
	h := NewOrdersHandler(api, testStore(), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()

	h.OrderHistory(rec, req)

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Показать заказы")
	assert.NotContains(t, body, "У вас пока нет заказов")
	api.AssertNotCalled(t, "GetOrders", mock.Anything, mock.Anything)
}

func TestOrderHistoryEmpty(t *testing.T) {
	api := new(mockShopAPI)
	h := NewOrdersHandler(api, testStore(), testConfig())

	api.On("GetOrders", mock.Anything, "+79001234567").Return([]models.Order{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders?phone=%2B79001234567", nil)
	rec := httptest.NewRecorder()

	h.OrderHistory(rec, req)

	assert.Contains(t, rec.Body.String(), "У вас пока нет заказов")
}

func TestOrderHistoryListsOrders(t *testing.T) {
	api := new(mockShopAPI)
	h := NewOrdersHandler(api, testStore(), testConfig())

	api.On("GetOrders", mock.Anything, "+79211396943").Return([]models.Order{
		{
			ID:              1001,
			CustomerPhone:   "+79211396943",
			TotalAmount:     89991,
			DiscountPercent: 10,
			Status:          models.OrderConfirmed,
			CreatedAt:       "2026-08-15T14:30:00.123456",
		},
		{
			ID:            987,
			CustomerPhone: "+79211396943",
			TotalAmount:   19990,
			Status:        models.OrderCompleted,
			IsPreorder:    true,
			CreatedAt:     "2026-07-01T10:00:00",
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders?phone=%2B79211396943", nil)
	rec := httptest.NewRecorder()

	h.OrderHistory(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "Заказ №1001")
	assert.Contains(t, body, "Подтвержден")
	assert.Contains(t, body, "Скидка 10%")
	assert.Contains(t, body, "15.08.2026 14:30")
	assert.Contains(t, body, "Заказ №987")
	assert.Contains(t, body, "Предзаказ")
	assert.Contains(t, body, "89 991 ₽")
}

func TestOrderHistoryAPIFailure(t *testing.T) {
	api := new(mockShopAPI)
	h := NewOrdersHandler(api, testStore(), testConfig())

	api.On("GetOrders", mock.Anything, "+79001234567").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/orders?phone=%2B79001234567", nil)
	rec := httptest.NewRecorder()

	h.OrderHistory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Не удалось загрузить заказы")
}
