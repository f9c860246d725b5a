package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gorilla/sessions"
)

// CSRFMiddleware provides CSRF protection functionality
type CSRFMiddleware struct {
	store sessions.Store
}

// NewCSRFMiddleware creates a new CSRF middleware
func NewCSRFMiddleware(store sessions.Store) *CSRFMiddleware {
	return &CSRFMiddleware{
		store: store,
	}
}

// GenerateCSRFToken generates a random CSRF token
func GenerateCSRFToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)
}

// EnsureCSRFToken middleware ensures a CSRF token is present in the
// session and request context so templates can embed it in forms.
func (m *CSRFMiddleware) EnsureCSRFToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, "session")
		if err == nil {
			token, ok := session.Values["csrf_token"].(string)
			if !ok || token == "" {
				token = GenerateCSRFToken()
				session.Values["csrf_token"] = token
				session.Save(r, w)
			}

			ctx := context.WithValue(r.Context(), CSRFTokenContextKey, token)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// CSRFProtection middleware validates the CSRF token on state-changing
// requests.
func (m *CSRFMiddleware) CSRFProtection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Safe methods skip the check
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.store.Get(r, "session")
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		sessionToken, ok := session.Values["csrf_token"].(string)
		if !ok || sessionToken == "" {
			sessionToken = GenerateCSRFToken()
			session.Values["csrf_token"] = sessionToken
			session.Save(r, w)
		}

		requestToken := r.Header.Get("X-CSRF-Token")
		if requestToken == "" {
			requestToken = r.FormValue("csrf_token")
		}

		if requestToken != sessionToken {
			if IsHTMXRequest(r) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`<div class="notice notice-error">Истёк токен безопасности. Обновите страницу и попробуйте снова.</div>`))
			} else {
				http.Error(w, "CSRF token mismatch", http.StatusForbidden)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}
