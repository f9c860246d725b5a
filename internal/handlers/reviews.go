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

// ReviewsHandler serves the customer reviews page
type ReviewsHandler struct {
	base
}

// NewReviewsHandler creates a new reviews handler
func NewReviewsHandler(api services.ShopAPIInterface, store sessions.Store, cfg *config.Config) *ReviewsHandler {
	return &ReviewsHandler{base{api: api, store: store, cfg: cfg}}
}

// ListReviews handles GET /reviews
func (h *ReviewsHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	reviews, err := h.api.GetReviews(r.Context())
	if err != nil {
		log.Printf("failed to load reviews: %v", err)
		setFlash(session, "error", "Не удалось загрузить отзывы. Попробуйте обновить страницу.")
		reviews = []models.Review{}
	}

	h.renderPage(w, r, session, "Отзывы", pages.ReviewsPage(reviews, h.cfg.Store))
}
