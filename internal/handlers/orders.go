package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"apple-storefront/internal/config"
	"apple-storefront/internal/services"
	"apple-storefront/web/templates/pages"
)

// OrdersHandler serves the order history lookup
type OrdersHandler struct {
	base
}

// NewOrdersHandler creates a new order history handler
func NewOrdersHandler(api services.ShopAPIInterface, store sessions.Store, cfg *config.Config) *OrdersHandler {
	return &OrdersHandler{base{api: api, store: store, cfg: cfg}}
}

// OrderHistory handles GET /orders. Without a phone it shows just the
// lookup form; with one it fetches and lists that customer's orders.
func (h *OrdersHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	phone := strings.TrimSpace(r.URL.Query().Get("phone"))
	if phone == "" {
		h.renderPage(w, r, session, "Мои заказы", pages.OrdersPage("", nil, false))
		return
	}

	orders, err := h.api.GetOrders(r.Context(), phone)
	if err != nil {
		log.Printf("order lookup failed for %s: %v", phone, err)
		setFlash(session, "error", "Не удалось загрузить заказы. Попробуйте позже.")
		h.renderPage(w, r, session, "Мои заказы", pages.OrdersPage(phone, nil, false))
		return
	}

	h.renderPage(w, r, session, "Мои заказы", pages.OrdersPage(phone, orders, true))
}
