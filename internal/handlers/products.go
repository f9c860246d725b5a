package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"apple-storefront/internal/config"
	"apple-storefront/internal/models"
	"apple-storefront/internal/services"
	"apple-storefront/web/templates/pages"
)

// ProductsHandler serves the catalog
type ProductsHandler struct {
	base
}

// NewProductsHandler creates a new catalog handler
func NewProductsHandler(api services.ShopAPIInterface, store sessions.Store, cfg *config.Config) *ProductsHandler {
	return &ProductsHandler{base{api: api, store: store, cfg: cfg}}
}

// ListProducts handles GET /products. HTMX requests get just the grid
// so the condition filter swaps in place.
func (h *ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	condition := r.URL.Query().Get("condition")

	products, err := h.api.GetProducts(r.Context(), 0)
	if err != nil {
		log.Printf("failed to load products: %v", err)
		setFlash(session, "error", "Не удалось загрузить каталог. Попробуйте обновить страницу.")
		products = []models.Product{}
	}

	filtered := models.FilterByCondition(products, condition)

	if isGridRequest(r) {
		renderPartial(w, r, pages.ProductGrid(filtered))
		return
	}

	h.renderPage(w, r, session, "Каталог", pages.ProductsPage(filtered, models.ProductCondition(condition)))
}

// isGridRequest reports whether the request is an HTMX filter swap
// rather than a full page load.
func isGridRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == "product-grid"
}
