package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/sessions"

	"apple-storefront/internal/config"
	"apple-storefront/internal/middleware"
	"apple-storefront/internal/models"
	"apple-storefront/internal/services"
	"apple-storefront/web/templates/components"
	"apple-storefront/web/templates/pages"
)

// CartHandler serves the cart, the discount check and checkout
type CartHandler struct {
	base
}

// NewCartHandler creates a new cart handler
func NewCartHandler(api services.ShopAPIInterface, store sessions.Store, cfg *config.Config) *CartHandler {
	return &CartHandler{base{api: api, store: store, cfg: cfg}}
}

// ViewCart handles GET /cart
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	cart := getCart(session)
	ds := discountState(session)
	quote := models.ComputeQuote(cart, ds.Tier)

	h.renderPage(w, r, session, "Корзина", pages.CartPage(cart, quote, ds))
}

// AddToCart handles POST /cart/add. The product is looked up in the
// live catalog so a stale page cannot add something that is gone.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	productID, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		http.Error(w, "Invalid product", http.StatusBadRequest)
		return
	}

	products, err := h.api.GetProducts(r.Context(), 0)
	if err != nil {
		log.Printf("failed to load products for cart add: %v", err)
		h.cartError(w, r, session, "Не удалось добавить товар. Попробуйте ещё раз.")
		return
	}

	var product *models.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		h.cartError(w, r, session, "Товар не найден.")
		return
	}

	cart := getCart(session)
	cart.AddProduct(*product)
	saveCart(session, cart)

	if middleware.IsHTMXRequest(r) {
		if err := session.Save(r, w); err != nil {
			log.Printf("failed to save session: %v", err)
		}
		renderPartial(w, r, components.CartBadge(cart.Count()))
		return
	}

	setFlash(session, "success", "Товар добавлен в корзину.")
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save session: %v", err)
	}
	redirect(w, r, "/products")
}

// UpdateItem handles POST /cart/update
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	productID, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		http.Error(w, "Invalid product", http.StatusBadRequest)
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	cart := getCart(session)
	cart.UpdateQuantity(productID, quantity)
	h.saveAndRenderCart(w, r, session, cart)
}

// RemoveItem handles POST /cart/remove
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	productID, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		http.Error(w, "Invalid product", http.StatusBadRequest)
		return
	}

	cart := getCart(session)
	cart.RemoveProduct(productID)
	h.saveAndRenderCart(w, r, session, cart)
}

// ClearCart handles POST /cart/clear
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	cart := getCart(session)
	cart.Clear()
	h.saveAndRenderCart(w, r, session, cart)
}

// CheckDiscount handles GET /cart/discount. A successful check is
// remembered in the session so checkout can apply it.
func (h *CartHandler) CheckDiscount(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	phone := strings.TrimSpace(r.URL.Query().Get("phone"))
	if phone == "" {
		renderPartial(w, r, components.Notice("error", "Укажите номер телефона."))
		return
	}

	check, err := h.api.CheckDiscount(r.Context(), phone)
	if err != nil {
		log.Printf("discount check failed for %s: %v", phone, err)
		clearDiscountState(session)
		session.Save(r, w)
		renderPartial(w, r, pages.DiscountResult(pages.DiscountState{}),
			components.Notice("error", "Не удалось проверить скидку. Попробуйте позже."))
		return
	}

	saveDiscountState(session, phone, check)
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save session: %v", err)
	}

	ds := discountState(session)

	if middleware.IsHTMXRequest(r) {
		cart := getCart(session)
		quote := models.ComputeQuote(cart, ds.Tier)
		// The summary changes with the tier, so refresh the cart too
		renderPartial(w, r, pages.DiscountResult(ds), pages.CartContentsOOB(cart, quote))
		return
	}

	redirect(w, r, "/cart")
}

// Checkout handles POST /checkout. Local validation runs before any
// network call so an empty cart or missing phone never leaves the
// process.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	cart := getCart(session)

	phone := strings.TrimSpace(r.FormValue("phone"))
	if phone == "" {
		setFlash(session, "error", "Укажите номер телефона для оформления заказа.")
		session.Save(r, w)
		redirect(w, r, "/cart")
		return
	}
	if cart.IsEmpty() {
		setFlash(session, "error", "Корзина пуста.")
		session.Save(r, w)
		redirect(w, r, "/cart")
		return
	}

	// The stored tier only applies to the phone it was checked for
	tier := models.DiscountTier(0)
	if ds := discountState(session); ds.Checked && ds.Phone == phone {
		tier = ds.Tier
	}

	req := &models.OrderCreateRequest{
		Phone:           phone,
		Items:           models.NewOrderItems(cart),
		DiscountPercent: tier.Percent(),
	}
	if err := req.Validate(); err != nil {
		log.Printf("invalid order request: %v", err)
		setFlash(session, "error", "Не удалось оформить заказ: проверьте данные и попробуйте ещё раз.")
		session.Save(r, w)
		redirect(w, r, "/cart")
		return
	}

	result, err := h.api.CreateOrder(r.Context(), req)
	if err != nil {
		log.Printf("order creation failed for %s: %v", phone, err)
		setFlash(session, "error", "Не удалось оформить заказ. Попробуйте ещё раз или позвоните нам.")
		session.Save(r, w)
		redirect(w, r, "/cart")
		return
	}

	cart.Clear()
	saveCart(session, cart)
	clearDiscountState(session)
	setFlash(session, "success", fmt.Sprintf("Заказ №%d оформлен! Мы свяжемся с вами для подтверждения.", result.OrderID))
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save session: %v", err)
	}

	redirect(w, r, "/")
}

// cartError reports a cart operation failure, as a fragment for HTMX
// and as a flash redirect otherwise.
func (h *CartHandler) cartError(w http.ResponseWriter, r *http.Request, session *sessions.Session, text string) {
	if middleware.IsHTMXRequest(r) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		renderPartial(w, r, components.Notice("error", text))
		return
	}
	setFlash(session, "error", text)
	session.Save(r, w)
	redirect(w, r, "/cart")
}

// saveAndRenderCart persists the cart and answers with the refreshed
// contents plus an out-of-band badge update.
func (h *CartHandler) saveAndRenderCart(w http.ResponseWriter, r *http.Request, session *sessions.Session, cart *models.Cart) {
	saveCart(session, cart)
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save session: %v", err)
	}

	if middleware.IsHTMXRequest(r) {
		ds := discountState(session)
		quote := models.ComputeQuote(cart, ds.Tier)
		renderPartial(w, r, pages.CartContents(cart, quote), components.CartBadgeOOB(cart.Count()))
		return
	}

	redirect(w, r, "/cart")
}
