package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"

	"apple-storefront/internal/config"
	"apple-storefront/internal/middleware"
	"apple-storefront/internal/models"
	"apple-storefront/internal/services"
	"apple-storefront/web/templates/components"
	"apple-storefront/web/templates/pages"
)

const sessionName = "session"

// Session keys. The cart is stored as a JSON string so the cookie
// codec never has to know about model types.
const (
	cartSessionKey           = "cart"
	flashKindSessionKey      = "flash_kind"
	flashTextSessionKey      = "flash_text"
	discountPhoneSessionKey  = "discount_phone"
	discountTierSessionKey   = "discount_tier"
	discountOrdersSessionKey = "discount_orders"
)

// base carries the dependencies every page handler needs.
type base struct {
	api   services.ShopAPIInterface
	store sessions.Store
	cfg   *config.Config
}

func (b *base) session(r *http.Request) *sessions.Session {
	// Get never fails fatally: a broken cookie yields a fresh session
	session, _ := b.store.Get(r, sessionName)
	return session
}

// getCart decodes the session cart. A missing or corrupt value yields
// an empty cart.
func getCart(session *sessions.Session) *models.Cart {
	cart := &models.Cart{}

	raw, ok := session.Values[cartSessionKey].(string)
	if !ok || raw == "" {
		return cart
	}

	if err := json.Unmarshal([]byte(raw), cart); err != nil {
		log.Printf("failed to decode session cart: %v", err)
		return &models.Cart{}
	}
	return cart
}

// saveCart encodes the cart back into the session
func saveCart(session *sessions.Session, cart *models.Cart) {
	data, err := json.Marshal(cart)
	if err != nil {
		log.Printf("failed to encode session cart: %v", err)
		return
	}
	session.Values[cartSessionKey] = string(data)
}

// setFlash queues a one-shot notice for the next rendered page
func setFlash(session *sessions.Session, kind, text string) {
	session.Values[flashKindSessionKey] = kind
	session.Values[flashTextSessionKey] = text
}

// popFlash consumes the queued notice, if any
func popFlash(session *sessions.Session) (kind, text string) {
	kind, _ = session.Values[flashKindSessionKey].(string)
	text, _ = session.Values[flashTextSessionKey].(string)
	delete(session.Values, flashKindSessionKey)
	delete(session.Values, flashTextSessionKey)
	return kind, text
}

// discountState reads the last discount check stored in the session
func discountState(session *sessions.Session) pages.DiscountState {
	phone, ok := session.Values[discountPhoneSessionKey].(string)
	if !ok || phone == "" {
		return pages.DiscountState{}
	}

	tier, _ := session.Values[discountTierSessionKey].(int)
	orders, _ := session.Values[discountOrdersSessionKey].(int)

	return pages.DiscountState{
		Phone:       phone,
		Checked:     true,
		Tier:        models.DiscountTier(tier),
		TotalOrders: orders,
	}
}

// saveDiscountState records a successful discount check
func saveDiscountState(session *sessions.Session, phone string, check *services.DiscountCheck) {
	session.Values[discountPhoneSessionKey] = phone
	session.Values[discountTierSessionKey] = int(check.DiscountTier)
	session.Values[discountOrdersSessionKey] = check.TotalOrders
}

// clearDiscountState drops the stored discount check
func clearDiscountState(session *sessions.Session) {
	delete(session.Values, discountPhoneSessionKey)
	delete(session.Values, discountTierSessionKey)
	delete(session.Values, discountOrdersSessionKey)
}

// redirect sends the browser to url, using HX-Redirect for HTMX
// requests so the whole page navigates.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	if middleware.IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// renderPage wraps content in the shared layout and writes it. The
// session is saved first because the flash is consumed here.
func (b *base) renderPage(w http.ResponseWriter, r *http.Request, session *sessions.Session, title string, content templ.Component) {
	cart := getCart(session)
	kind, text := popFlash(session)
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save session: %v", err)
	}

	data := components.PageData{
		Title:     title,
		CartCount: cart.Count(),
		Store:     b.cfg.Store,
		FlashKind: kind,
		FlashText: text,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.Layout(data, content).Render(r.Context(), w); err != nil {
		log.Printf("failed to render %s: %v", r.URL.Path, err)
	}
}

// renderPartial writes an HTMX fragment response
func renderPartial(w http.ResponseWriter, r *http.Request, parts ...templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, part := range parts {
		if err := part.Render(r.Context(), w); err != nil {
			log.Printf("failed to render partial for %s: %v", r.URL.Path, err)
			return
		}
	}
}
