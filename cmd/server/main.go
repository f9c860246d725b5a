package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"

	"apple-storefront/internal/config"
	"apple-storefront/internal/handlers"
	"apple-storefront/internal/middleware"
	"apple-storefront/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// The shop API owns all business data. Without a configured base
	// URL the app runs in demo mode on canned data.
	var shopAPI services.ShopAPIInterface
	if cfg.ShopAPI.BaseURL == "" {
		log.Println("SHOP_API_BASE_URL is not set, running in demo mode")
		shopAPI = services.NewMockShopAPIService()
	} else {
		shopAPI = services.NewShopAPIService(services.ShopAPIConfig{
			BaseURL: cfg.ShopAPI.BaseURL,
			Timeout: cfg.ShopAPI.Timeout,
		})
		log.Printf("Using shop API at %s", cfg.ShopAPI.BaseURL)
	}

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(shopAPI, sessionStore, cfg)
	productsHandler := handlers.NewProductsHandler(shopAPI, sessionStore, cfg)
	cartHandler := handlers.NewCartHandler(shopAPI, sessionStore, cfg)
	ordersHandler := handlers.NewOrdersHandler(shopAPI, sessionStore, cfg)
	reviewsHandler := handlers.NewReviewsHandler(shopAPI, sessionStore, cfg)

	csrfMiddleware := middleware.NewCSRFMiddleware(sessionStore)
	lookupLimiter := middleware.NewRateLimiter(20, time.Minute)

	// Setup router
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", "HX-Request", "HX-Target"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(csrfMiddleware.EnsureCSRFToken)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static/"))))

	// Public pages
	r.Get("/", publicHandler.HomePage)
	r.Get("/products", productsHandler.ListProducts)
	r.Get("/reviews", reviewsHandler.ListReviews)
	r.Get("/contacts", publicHandler.ContactsPage)
	r.Get("/health", publicHandler.HealthCheck)

	// Phone lookups hit the shop API, keep them rate limited
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitLookups(lookupLimiter))
		r.Get("/orders", ordersHandler.OrderHistory)
		r.Get("/cart/discount", cartHandler.CheckDiscount)
	})

	// Cart and checkout
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.ViewCart)

		r.Group(func(r chi.Router) {
			r.Use(csrfMiddleware.CSRFProtection)
			r.Post("/add", cartHandler.AddToCart)
			r.Post("/update", cartHandler.UpdateItem)
			r.Post("/remove", cartHandler.RemoveItem)
			r.Post("/clear", cartHandler.ClearCart)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware.CSRFProtection)
		r.Post("/checkout", cartHandler.Checkout)
	})

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Starting server on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
