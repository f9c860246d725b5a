package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"apple-storefront/internal/models"
	"apple-storefront/web/templates/components"
)

// DiscountState is what the cart page knows about the last discount
// check performed in this session.
type DiscountState struct {
	Phone       string
	Checked     bool
	Tier        models.DiscountTier
	TotalOrders int
}

// CartPage renders the cart with the discount check and checkout forms.
func CartPage(cart *models.Cart, quote models.Quote, ds DiscountState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Корзина</h1>
`); err != nil {
			return err
		}

		if err := CartContents(cart, quote).Render(ctx, w); err != nil {
			return err
		}

		if cart.IsEmpty() {
			return nil
		}

		if _, err := io.WriteString(w, `
	<section class="discount-box">
		<h2>Скидка постоянного покупателя</h2>
		<p>Проверьте по номеру телефона, какая скидка вам уже доступна: 5% после первого заказа, 10% после второго и 15% начиная с третьего.</p>
		<form class="inline-form" hx-get="/cart/discount" hx-target="#discount-result" hx-swap="outerHTML">
			<input type="tel" name="phone" placeholder="+7 900 000-00-00" value="`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(ds.Phone)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `" required>
			<button type="submit" class="btn btn-secondary">Проверить скидку</button>
		</form>
`); err != nil {
			return err
		}

		if err := DiscountResult(ds).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `
	</section>
	<section class="checkout-box">
		<h2>Оформление заказа</h2>
		<form method="POST" action="/checkout">
`); err != nil {
			return err
		}
		if err := components.CSRFInput().Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `
			<label for="checkout-phone">Телефон для связи</label>
			<input type="tel" id="checkout-phone" name="phone" placeholder="+7 900 000-00-00" value="%s" required>
			<p class="form-hint">Скидка применяется к номеру, для которого она была проверена.</p>
			<button type="submit" class="btn btn-primary btn-lg">Оформить заказ</button>
		</form>
	</section>`, templ.EscapeString(ds.Phone))
		return err
	})
}

// CartContents renders the item table and totals. Cart operations over
// HTMX swap this element in place.
func CartContents(cart *models.Cart, quote models.Quote) templ.Component {
	return cartContents(cart, quote, "")
}

// CartContentsOOB renders the cart contents as an out-of-band swap so
// the discount check can refresh the totals in the same response.
func CartContentsOOB(cart *models.Cart, quote models.Quote) templ.Component {
	return cartContents(cart, quote, ` hx-swap-oob="true"`)
}

func cartContents(cart *models.Cart, quote models.Quote, oobAttr string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if cart.IsEmpty() {
			_, err := fmt.Fprintf(w, `<div id="cart-contents" class="cart-contents"%s>
		<p class="empty-state">Корзина пуста.</p>
		<a href="/products" class="btn btn-primary">Перейти в каталог</a>
	</div>`, oobAttr)
			return err
		}

		if _, err := fmt.Fprintf(w, `<div id="cart-contents" class="cart-contents"%s>
		<table class="cart-table">
			<thead>
				<tr><th>Товар</th><th>Цена</th><th>Количество</th><th>Сумма</th><th></th></tr>
			</thead>
			<tbody>`, oobAttr); err != nil {
			return err
		}

		for _, item := range cart.Items {
			if _, err := fmt.Fprintf(w, `
				<tr>
					<td>
						<div class="cart-item-name">%s</div>
						<div class="cart-item-meta">%s</div>
					</td>
					<td>%s</td>
					<td>
						<form class="qty-form" hx-post="/cart/update" hx-target="#cart-contents" hx-swap="outerHTML">`,
				templ.EscapeString(item.Product.Name),
				templ.EscapeString(item.Product.ConditionDisplayName()),
				templ.EscapeString(components.FormatPrice(item.Product.Price)),
			); err != nil {
				return err
			}
			if err := components.CSRFInput().Render(ctx, w); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `
							<input type="hidden" name="product_id" value="%d">
							<input type="number" name="quantity" value="%d" min="0" max="%d">
							<button type="submit" class="btn btn-small">Обновить</button>
						</form>
					</td>
					<td>%s</td>
					<td>
						<form hx-post="/cart/remove" hx-target="#cart-contents" hx-swap="outerHTML">`,
				item.Product.ID, item.Quantity, item.Product.Stock,
				templ.EscapeString(components.FormatPrice(item.Subtotal())),
			); err != nil {
				return err
			}
			if err := components.CSRFInput().Render(ctx, w); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `
							<input type="hidden" name="product_id" value="%d">
							<button type="submit" class="btn btn-small btn-danger">Удалить</button>
						</form>
					</td>
				</tr>`, item.Product.ID); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `
			</tbody>
		</table>
		<div class="cart-actions">
			<form hx-post="/cart/clear" hx-target="#cart-contents" hx-swap="outerHTML" hx-confirm="Очистить корзину?">`); err != nil {
			return err
		}
		if err := components.CSRFInput().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `
				<button type="submit" class="btn btn-small btn-danger">Очистить корзину</button>
			</form>
		</div>
		<div class="cart-summary">`); err != nil {
			return err
		}

		if quote.DiscountPercent > 0 {
			if _, err := fmt.Fprintf(w, `
			<div class="summary-row"><span>Сумма</span><span>%s</span></div>
			<div class="summary-row summary-discount"><span>Скидка %d%%</span><span>−%s</span></div>`,
				templ.EscapeString(components.FormatPrice(quote.Subtotal)),
				quote.DiscountPercent,
				templ.EscapeString(components.FormatPrice(quote.DiscountAmount)),
			); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `
			<div class="summary-row summary-total"><span>Итого</span><span>%s</span></div>
		</div>
	</div>`, templ.EscapeString(components.FormatPrice(quote.Total)))
		return err
	})
}

// DiscountResult renders the outcome of a discount check. HTMX swaps
// it in place when the customer checks a phone number.
func DiscountResult(ds DiscountState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !ds.Checked {
			_, err := io.WriteString(w, `<div id="discount-result"></div>`)
			return err
		}

		if ds.Tier.HasDiscount() {
			_, err := fmt.Fprintf(w, `<div id="discount-result">
			<div class="notice notice-success">Ваша скидка — %d%% (заказов: %d). Она уже учтена в сумме заказа.</div>
		</div>`, ds.Tier.Percent(), ds.TotalOrders)
			return err
		}

		_, err := io.WriteString(w, `<div id="discount-result">
			<div class="notice notice-info">Скидка пока не накоплена — она появится после первого заказа.</div>
		</div>`)
		return err
	})
}
