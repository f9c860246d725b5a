package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"apple-storefront/internal/config"
	"apple-storefront/internal/models"
	"apple-storefront/web/templates/components"
)

// ReviewsPage renders customer reviews with the average rating.
func ReviewsPage(reviews []models.Review, store config.StoreConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Отзывы</h1>
`); err != nil {
			return err
		}

		if len(reviews) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty-state">Отзывов пока нет. <a href="%s" target="_blank" rel="noopener">Станьте первым!</a></p>`,
				templ.EscapeString(store.ReviewsURL))
			return err
		}

		avg := models.AverageRating(reviews)
		// Russian decimal comma
		avgText := strings.Replace(fmt.Sprintf("%.1f", avg), ".", ",", 1)

		if _, err := fmt.Fprintf(w, `<div class="reviews-summary">
		<span class="rating-stars">%s</span>
		<span class="rating-value">%s из 5</span>
		<span class="rating-count">· отзывов: %d</span>
		<a href="%s" target="_blank" rel="noopener" class="btn btn-secondary">Оставить отзыв</a>
	</div>
	<div class="review-list">`,
			components.RatingStars(int(avg+0.5)),
			templ.EscapeString(avgText),
			len(reviews),
			templ.EscapeString(store.ReviewsURL),
		); err != nil {
			return err
		}

		for _, r := range reviews {
			if err := reviewCard(r).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `
	</div>`)
		return err
	})
}

func reviewCard(r models.Review) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `
		<div class="review-card">
			<div class="review-header">
				<span class="review-avatar">%s</span>
				<div>
					<div class="review-author">%s</div>`,
			templ.EscapeString(r.Initials()),
			templ.EscapeString(r.CustomerName),
		); err != nil {
			return err
		}

		if t, ok := r.CreatedTime(); ok {
			if _, err := fmt.Fprintf(w, `
					<div class="review-date">%s</div>`,
				templ.EscapeString(components.FormatDate(t))); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `
				</div>
				<span class="rating-stars">%s</span>
			</div>
			<p class="review-comment">%s</p>`,
			components.RatingStars(r.Rating),
			templ.EscapeString(r.Comment),
		); err != nil {
			return err
		}

		if r.Source != "" {
			if _, err := fmt.Fprintf(w, `
			<div class="review-source">%s</div>`, templ.EscapeString(r.Source)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `
		</div>`)
		return err
	})
}
