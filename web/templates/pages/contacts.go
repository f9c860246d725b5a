package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"apple-storefront/internal/config"
)

// ContactsPage renders the store's contact details.
func ContactsPage(store config.StoreConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>Контакты</h1>
	<div class="contacts">
		<div class="contact-block">
			<h3>Адрес</h3>
			<p>%s</p>
			<a href="%s" target="_blank" rel="noopener" class="btn btn-secondary">Открыть на карте</a>
		</div>
		<div class="contact-block">
			<h3>Телефон</h3>
			<p><a href="%s">%s</a></p>
			<p><a href="mailto:%s">%s</a></p>
			<p class="contact-hint">Звоните — подскажем по наличию и подберём устройство.</p>
		</div>
		<div class="contact-block">
			<h3>Режим работы</h3>
			<p>%s</p>
		</div>
		<div class="contact-block">
			<h3>Отзывы</h3>
			<p><a href="%s" target="_blank" rel="noopener">Мы на Яндекс.Картах</a></p>
		</div>
	</div>`,
			templ.EscapeString(store.Address),
			templ.EscapeString(store.MapURL),
			templ.EscapeString(store.PhoneLink),
			templ.EscapeString(store.Phone),
			templ.EscapeString(store.Email),
			templ.EscapeString(store.Email),
			templ.EscapeString(store.Hours),
			templ.EscapeString(store.ReviewsURL),
		)
		return err
	})
}
