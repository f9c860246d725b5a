package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"apple-storefront/internal/models"
)

func TestListProductsFullPage(t *testing.T) {
	api := new(mockShopAPI)
	h := NewProductsHandler(api, testStore(), testConfig())

	api.On("GetProducts", mock.Anything, 0).Return([]models.Product{
		testProduct(1, "iPhone 15 Pro", 99990, 5),
		testProduct(2, "MacBook Air M3", 129990, 2),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	h.ListProducts(rec, req)

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "iPhone 15 Pro")
	assert.Contains(t, body, "MacBook Air M3")
	assert.Contains(t, body, "99 990 ₽")
}

func TestListProductsConditionFilter(t *testing.T) {
	api := new(mockShopAPI)
	h := NewProductsHandler(api, testStore(), testConfig())

	used := testProduct(3, "iPhone 13", 39990, 1)
	used.Condition = models.ConditionUsed

	api.On("GetProducts", mock.Anything, 0).Return([]models.Product{
		testProduct(1, "iPhone 15 Pro", 99990, 5),
		used,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?condition=used", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "product-grid")
	rec := httptest.NewRecorder()

	h.ListProducts(rec, req)

	body := rec.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>", "HTMX filter should get just the grid")
	assert.Contains(t, body, "iPhone 13")
	assert.NotContains(t, body, "iPhone 15 Pro")
}

func TestListProductsAPIFailure(t *testing.T) {
	api := new(mockShopAPI)
	h := NewProductsHandler(api, testStore(), testConfig())

	api.On("GetProducts", mock.Anything, 0).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	h.ListProducts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Не удалось загрузить каталог")
}

func TestListProductsStockBadges(t *testing.T) {
	api := new(mockShopAPI)
	h := NewProductsHandler(api, testStore(), testConfig())

	api.On("GetProducts", mock.Anything, 0).Return([]models.Product{
		testProduct(1, "iPhone 15 Pro", 99990, 2),
		testProduct(2, "MacBook Air M3", 129990, 0),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	h.ListProducts(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "Осталось мало")
	assert.Contains(t, body, "Нет в наличии")
}
