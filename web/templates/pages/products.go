package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"apple-storefront/internal/models"
	"apple-storefront/web/templates/components"
)

// ProductsPage renders the catalog with the condition filter bar.
func ProductsPage(products []models.Product, condition models.ProductCondition) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Каталог</h1>
	<div class="filter-bar">`); err != nil {
			return err
		}

		for _, f := range conditionFilters {
			class := "filter-btn"
			if f.Value == condition {
				class += " filter-btn-active"
			}
			if _, err := fmt.Fprintf(w,
				`<a href="/products?condition=%s" class="%s" hx-get="/products?condition=%s" hx-target="#product-grid" hx-swap="outerHTML" hx-push-url="true">%s</a>`,
				templ.EscapeString(string(f.Value)), class,
				templ.EscapeString(string(f.Value)), templ.EscapeString(f.Label),
			); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</div>
`); err != nil {
			return err
		}

		return ProductGrid(products).Render(ctx, w)
	})
}

// ProductGrid renders the product cards. HTMX filter requests swap
// this element in place.
func ProductGrid(products []models.Product) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(products) == 0 {
			_, err := io.WriteString(w,
				`<div id="product-grid" class="product-grid"><p class="empty-state">Товары не найдены.</p></div>`)
			return err
		}

		if _, err := io.WriteString(w, `<div id="product-grid" class="product-grid">`); err != nil {
			return err
		}
		for _, p := range products {
			if err := ProductCard(p).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// ProductCard renders a single catalog entry with its add-to-cart
// control.
func ProductCard(p models.Product) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="product-card">
		<div class="product-image"><img src="%s" alt="%s" loading="lazy"></div>
		<div class="product-info">
			<span class="condition-badge condition-%s">%s</span>
			<h3>%s</h3>
			<p class="product-category">%s</p>
			<p class="product-description">%s</p>`,
			templ.EscapeString(p.ImageURL),
			templ.EscapeString(p.Name),
			templ.EscapeString(string(p.Condition)),
			templ.EscapeString(p.ConditionDisplayName()),
			templ.EscapeString(p.Name),
			templ.EscapeString(p.Category),
			templ.EscapeString(p.Description),
		); err != nil {
			return err
		}

		if label, class := stockLabel(p); label != "" {
			if _, err := fmt.Fprintf(w, `<span class="%s">%s</span>`, class, templ.EscapeString(label)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<div class="product-footer">
			<span class="product-price">%s</span>`,
			templ.EscapeString(components.FormatPrice(p.Price)),
		); err != nil {
			return err
		}

		if p.IsAvailable() {
			if _, err := fmt.Fprintf(w, `<form hx-post="/cart/add" hx-target="#cart-badge" hx-swap="outerHTML">`); err != nil {
				return err
			}
			if err := components.CSRFInput().Render(ctx, w); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `<input type="hidden" name="product_id" value="%d">
				<button type="submit" class="btn btn-primary">В корзину</button>
			</form>`, p.ID); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<button class="btn btn-secondary" disabled>Нет в наличии</button>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>
		</div>
	</div>`)
		return err
	})
}
