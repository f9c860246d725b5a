package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"apple-storefront/internal/config"
	"apple-storefront/internal/models"
)

// HomePage renders the landing page with the featured products.
func HomePage(featured []models.Product, store config.StoreConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="hero">
		<h1>Техника Apple в Вологде</h1>
		<p>Новые и проверенные Б/У устройства с гарантией магазина. Скидки постоянным покупателям — до 15%%.</p>
		<div class="hero-actions">
			<a href="/products" class="btn btn-primary btn-lg">Перейти в каталог</a>
			<a href="%s" class="btn btn-secondary btn-lg">Позвонить</a>
		</div>
	</section>
	<section class="benefits">
		<div class="benefit"><h3>Гарантия</h3><p>Проверяем каждое устройство перед продажей.</p></div>
		<div class="benefit"><h3>Скидки</h3><p>5%% после первого заказа, 10%% после второго, 15%% с третьего.</p></div>
		<div class="benefit"><h3>Рядом</h3><p>%s</p></div>
	</section>
	<section class="featured">
		<h2>Популярные товары</h2>
`,
			templ.EscapeString(store.PhoneLink),
			templ.EscapeString(store.Address),
		); err != nil {
			return err
		}

		if err := ProductGrid(featured).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `
		<div class="featured-more"><a href="/products" class="btn btn-secondary">Смотреть все товары</a></div>
	</section>`)
		return err
	})
}
