package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"apple-storefront/internal/config"
)

// PageData carries everything the shared page chrome needs.
type PageData struct {
	Title     string
	CartCount int
	Store     config.StoreConfig

	// Flash, when set, is rendered as a notice above the page content.
	FlashKind string
	FlashText string
}

// CartBadge renders the cart counter shown in the navigation. HTMX
// cart operations swap this element in place.
func CartBadge(count int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if count > 0 {
			_, err := fmt.Fprintf(w, `<span id="cart-badge" class="cart-badge">%d</span>`, count)
			return err
		}
		_, err := io.WriteString(w, `<span id="cart-badge" class="cart-badge cart-badge-empty"></span>`)
		return err
	})
}

// CartBadgeOOB renders the cart counter as an HTMX out-of-band swap so
// cart partials can refresh the navigation badge in the same response.
func CartBadgeOOB(count int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if count > 0 {
			_, err := fmt.Fprintf(w, `<span id="cart-badge" class="cart-badge" hx-swap-oob="true">%d</span>`, count)
			return err
		}
		_, err := io.WriteString(w, `<span id="cart-badge" class="cart-badge cart-badge-empty" hx-swap-oob="true"></span>`)
		return err
	})
}

// Layout renders the shared chrome (header, navigation, footer) around
// the given page content.
func Layout(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := data.Store.Name
		if data.Title != "" {
			title = data.Title + " - " + data.Store.Name
		}

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="ru">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>%s</title>
	<link href="/static/css/style.css" rel="stylesheet">
	<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
	<header class="site-header">
		<div class="container header-inner">
			<a href="/" class="logo">%s</a>
			<nav class="main-nav">
				<a href="/products">Каталог</a>
				<a href="/reviews">Отзывы</a>
				<a href="/orders">Мои заказы</a>
				<a href="/contacts">Контакты</a>
				<a href="/cart" class="cart-link">Корзина`,
			templ.EscapeString(title),
			templ.EscapeString(data.Store.Name),
		); err != nil {
			return err
		}

		if err := CartBadge(data.CartCount).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `</a>
			</nav>
		</div>
	</header>
	<main class="container">
`); err != nil {
			return err
		}

		if data.FlashText != "" {
			if err := Notice(data.FlashKind, data.FlashText).Render(ctx, w); err != nil {
				return err
			}
		}

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `
	</main>
	<footer class="site-footer">
		<div class="container footer-inner">
			<div>
				<strong>%s</strong>
				<p>%s</p>
			</div>
			<div>
				<a href="%s">%s</a>
				<p>%s</p>
			</div>
			<div>
				<a href="%s" target="_blank" rel="noopener">Мы на карте</a>
				<a href="%s" target="_blank" rel="noopener">Отзывы о нас</a>
			</div>
		</div>
	</footer>
</body>
</html>`,
			templ.EscapeString(data.Store.Name),
			templ.EscapeString(data.Store.Address),
			templ.EscapeString(data.Store.PhoneLink),
			templ.EscapeString(data.Store.Phone),
			templ.EscapeString(data.Store.Hours),
			templ.EscapeString(data.Store.MapURL),
			templ.EscapeString(data.Store.ReviewsURL),
		)
		return err
	})
}
