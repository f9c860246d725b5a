package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
)

// ErrorHandlingMiddleware handles panics and errors
func ErrorHandlingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				// Log the panic with stack trace
				log.Printf("PANIC: %v\n%s", err, debug.Stack())

				if IsHTMXRequest(r) {
					w.Header().Set("Content-Type", "text/html")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`<div class="notice notice-error">Что-то пошло не так. Попробуйте ещё раз.</div>`))
				} else {
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsHTMXRequest(r) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`<div class="notice notice-info">Страница не найдена.</div>`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<!DOCTYPE html>
<html lang="ru">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Страница не найдена - AquaApple</title>
	<link href="/static/css/style.css" rel="stylesheet">
</head>
<body>
	<div class="error-page">
		<h1>404</h1>
		<h2>Страница не найдена</h2>
		<p>Такой страницы не существует.</p>
		<a href="/" class="btn btn-primary">На главную</a>
	</div>
</body>
</html>`))
	})
}
