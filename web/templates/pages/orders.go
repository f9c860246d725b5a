package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"apple-storefront/internal/models"
	"apple-storefront/web/templates/components"
)

// OrdersPage renders the order history lookup form and, once a phone
// has been searched, the matching orders.
func OrdersPage(phone string, orders []models.Order, searched bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Мои заказы</h1>
	<p>Введите номер телефона, указанный при оформлении заказа.</p>
	<form class="inline-form" method="GET" action="/orders">
		<input type="tel" name="phone" placeholder="+7 900 000-00-00" value="%s" required>
		<button type="submit" class="btn btn-primary">Показать заказы</button>
	</form>
`, templ.EscapeString(phone)); err != nil {
			return err
		}

		if !searched {
			return nil
		}

		if len(orders) == 0 {
			_, err := io.WriteString(w, `
	<div class="notice notice-info">У вас пока нет заказов.</div>`)
			return err
		}

		if _, err := io.WriteString(w, `
	<div class="order-list">`); err != nil {
			return err
		}

		for _, o := range orders {
			if err := orderCard(o).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `
	</div>`)
		return err
	})
}

func orderCard(o models.Order) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `
		<div class="order-card">
			<div class="order-header">
				<span class="order-number">Заказ №%d</span>
				<span class="%s">%s</span>`,
			o.ID, o.StatusBadgeClass(), templ.EscapeString(o.GetStatusDisplayName()),
		); err != nil {
			return err
		}

		if o.IsPreorder {
			if _, err := io.WriteString(w, `
				<span class="badge badge-outline">Предзаказ</span>`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `
			</div>
			<div class="order-body">`); err != nil {
			return err
		}

		if t, ok := o.CreatedTime(); ok {
			if _, err := fmt.Fprintf(w, `
				<span class="order-date">%s</span>`,
				templ.EscapeString(components.FormatDateTime(t))); err != nil {
				return err
			}
		}

		if o.DiscountPercent > 0 {
			if _, err := fmt.Fprintf(w, `
				<span class="order-discount">Скидка %d%%</span>`, o.DiscountPercent); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `
				<span class="order-total">%s</span>
			</div>
		</div>`, templ.EscapeString(components.FormatPrice(o.TotalAmount)))
		return err
	})
}
