package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Notice renders a flash message. Kind is one of "success", "error"
// or "info" and maps onto the stylesheet's notice classes.
func Notice(kind, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<div class="notice notice-%s">%s</div>`,
			templ.EscapeString(kind), templ.EscapeString(text))
		return err
	})
}

// CSRFInput renders the hidden form field carrying the session's CSRF
// token.
func CSRFInput() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<input type="hidden" name="csrf_token" value="%s">`,
			templ.EscapeString(getCSRFToken(ctx)))
		return err
	})
}
