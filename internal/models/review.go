package models

import (
	"errors"
	"strings"
	"time"
)

// Review represents a customer review fetched from the remote shop API.
// Read-only from the client's perspective.
type Review struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Source       string `json:"source"`
	CreatedAt    string `json:"created_at"`
}

// Validate validates the review data
func (r *Review) Validate() error {
	if r.CustomerName == "" {
		return errors.New("customer name is required")
	}

	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	return nil
}

// Initials returns the customer's initials for the avatar placeholder
func (r *Review) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(r.CustomerName) {
		runes := []rune(part)
		if len(runes) > 0 {
			b.WriteString(strings.ToUpper(string(runes[0])))
		}
	}
	return b.String()
}

// CreatedTime parses the review's creation timestamp
func (r *Review) CreatedTime() (time.Time, bool) {
	return parseAPITime(r.CreatedAt)
}

// AverageRating returns the mean rating across reviews, zero for an
// empty collection.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
