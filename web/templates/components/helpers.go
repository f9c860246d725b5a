package components

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"apple-storefront/internal/middleware"
)

// getCSRFToken gets the CSRF token from the request context
func getCSRFToken(ctx context.Context) string {
	return middleware.GetCSRFToken(ctx)
}

// FormatPrice renders a price the way Russian storefronts write it,
// with spaces between thousands: "79 990 ₽".
func FormatPrice(price float64) string {
	whole := int64(price)
	frac := int64(math.Round((price - float64(whole)) * 100))
	if frac >= 100 {
		whole++
		frac = 0
	}

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}

	if frac > 0 {
		return fmt.Sprintf("%s,%02d ₽", b.String(), frac)
	}
	return b.String() + " ₽"
}

// FormatDate renders a timestamp in the Russian day-first convention.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateTime renders a timestamp with the time of day included.
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// RatingStars renders a 1-5 rating as filled and empty stars.
func RatingStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
