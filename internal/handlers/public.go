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

const featuredProductCount = 6

// PublicHandler serves the landing and contacts pages
type PublicHandler struct {
	base
}

// NewPublicHandler creates a new public pages handler
func NewPublicHandler(api services.ShopAPIInterface, store sessions.Store, cfg *config.Config) *PublicHandler {
	return &PublicHandler{base{api: api, store: store, cfg: cfg}}
}

// HomePage handles GET /
func (h *PublicHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	featured, err := h.api.GetProducts(r.Context(), featuredProductCount)
	if err != nil {
		log.Printf("failed to load featured products: %v", err)
		setFlash(session, "error", "Не удалось загрузить каталог. Попробуйте обновить страницу.")
		featured = []models.Product{}
	}

	h.renderPage(w, r, session, "", pages.HomePage(featured, h.cfg.Store))
}

// ContactsPage handles GET /contacts
func (h *PublicHandler) ContactsPage(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	h.renderPage(w, r, session, "Контакты", pages.ContactsPage(h.cfg.Store))
}

// HealthCheck handles GET /health
func (h *PublicHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
