package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/aliskhannn/keepsafe/internal/model"
)

// ProductRequest is the body of product create and update calls.
type ProductRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	ExpirationDate string `json:"expiration_date" validate:"required,datetime=2006-01-02"`
	Category       string `json:"category" validate:"omitempty,category"`
	Image          []byte `json:"image,omitempty"` // base64 in JSON
}

// Product converts the request, reading the date as midnight in loc.
func (r ProductRequest) Product(loc *time.Location) (model.Product, error) {
	exp, err := time.ParseInLocation(DateLayout, r.ExpirationDate, loc)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid expiration date: %w", err)
	}

	if strings.TrimSpace(r.Name) == "" {
		return model.Product{}, fmt.Errorf("name is blank")
	}

	return model.Product{
		Name:           r.Name,
		Category:       r.Category,
		ExpirationDate: exp,
		Image:          r.Image,
	}, nil
}

// ProductResponse is a product with its freshness.
type ProductResponse struct {
	model.Product
	DaysUntilExpiration int                `json:"days_until_expiration"`
	Status              model.ExpiryStatus `json:"status"`
}

// NewProductResponse derives the freshness of p at now.
func NewProductResponse(p model.Product, now time.Time) ProductResponse {
	return ProductResponse{
		Product:             p,
		DaysUntilExpiration: p.DaysUntilExpiration(now),
		Status:              p.Status(now),
	}
}

// NewProductResponses maps NewProductResponse over ps.
func NewProductResponses(ps []model.Product, now time.Time) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProductResponse(p, now))
	}

	return out
}
