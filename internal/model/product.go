package model

import (
	"time"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// Categories lists the categories a product or shopping item may be filed under.
var Categories = []string{
	"Food & Drinks",
	"Health & Beauty",
	"Household",
	"Electronics",
	"Clothing",
	"Other",
}

const (
	DefaultProductCategory  = "Food & Drinks"
	DefaultShoppingCategory = "General"
)

// IsCategory reports whether c is one of the known categories.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}

	return false
}

// ExpiryStatus is a coarse freshness bucket derived from days until expiration.
type ExpiryStatus string

const (
	StatusExpired ExpiryStatus = "expired"
	StatusUrgent  ExpiryStatus = "urgent"
	StatusSoon    ExpiryStatus = "soon"
	StatusFresh   ExpiryStatus = "fresh"
)

// Product represents a tracked perishable product.
type Product struct {
	ID             uuid.UUID `json:"id"`              // unique identifier, assigned at creation
	Name           string    `json:"name"`            // display name
	Category       string    `json:"category"`        // one of Categories
	ExpirationDate time.Time `json:"expiration_date"` // date-only, midnight in the configured zone
	Image          []byte    `json:"image,omitempty"` // optional photo
	CreatedAt      time.Time `json:"created_at"`      // set once at creation
}

// IsExpired reports whether the expiration date lies before now.
func (p Product) IsExpired(now time.Time) bool {
	return p.ExpirationDate.Before(now)
}

// DaysUntilExpiration returns the number of whole calendar days between now
// and the expiration date, truncated toward zero, counted in the expiration
// date's zone so a day with a DST shift still counts as one. It is negative
// for products that expired more than a day ago.
func (p Product) DaysUntilExpiration(now time.Time) int {
	exp := p.ExpirationDate
	now = now.In(exp.Location())

	n := int(exp.Sub(now) / day)
	if !exp.Before(now) {
		for !now.AddDate(0, 0, n+1).After(exp) {
			n++
		}
		for n > 0 && now.AddDate(0, 0, n).After(exp) {
			n--
		}
		return n
	}

	for !now.AddDate(0, 0, n-1).Before(exp) {
		n--
	}
	for n < 0 && now.AddDate(0, 0, n).Before(exp) {
		n++
	}
	return n
}

// Status buckets the product by how close it is to expiring.
func (p Product) Status(now time.Time) ExpiryStatus {
	days := p.DaysUntilExpiration(now)

	switch {
	case p.IsExpired(now):
		return StatusExpired
	case days <= 3:
		return StatusUrgent
	case days <= 7:
		return StatusSoon
	default:
		return StatusFresh
	}
}

// ShoppingItem is an entry on the shopping list.
type ShoppingItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	Notes       *string   `json:"notes,omitempty"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}
