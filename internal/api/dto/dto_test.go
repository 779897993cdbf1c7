package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/keepsafe/internal/model"
)

func TestValidator_Product(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     ProductRequest
		wantErr bool
	}{
		{"valid", ProductRequest{Name: "Milk", ExpirationDate: "2025-03-20", Category: "Household"}, false},
		{"default category", ProductRequest{Name: "Milk", ExpirationDate: "2025-03-20"}, false},
		{"missing name", ProductRequest{ExpirationDate: "2025-03-20"}, true},
		{"bad date", ProductRequest{Name: "Milk", ExpirationDate: "20.03.2025"}, true},
		{"unknown category", ProductRequest{Name: "Milk", ExpirationDate: "2025-03-20", Category: "Toys"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProductRequest_Product(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	p, err := ProductRequest{Name: "Milk", ExpirationDate: "2025-03-20"}.Product(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, loc), p.ExpirationDate)

	_, err = ProductRequest{Name: "   ", ExpirationDate: "2025-03-20"}.Product(loc)
	assert.Error(t, err)
}

func TestNewProductResponse(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	p := model.Product{Name: "Milk", ExpirationDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)}

	r := NewProductResponse(p, now)

	assert.Equal(t, 1, r.DaysUntilExpiration)
	assert.Equal(t, model.StatusUrgent, r.Status)
}

func TestValidator_Requests(t *testing.T) {
	v := NewValidator()
	yes := true

	assert.NoError(t, v.Struct(PermissionRequest{Status: model.PermissionAuthorized}))
	assert.Error(t, v.Struct(PermissionRequest{Status: "maybe"}))

	assert.NoError(t, v.Struct(PremiumRequest{Active: &yes}))
	assert.Error(t, v.Struct(PremiumRequest{}))

	assert.NoError(t, v.Struct(ShoppingItemRequest{Name: "Bread"}))
	assert.Error(t, v.Struct(ShoppingItemRequest{Name: "Bread", Quantity: -1}))

	assert.NoError(t, v.Struct(SettingsRequest{NotificationsEnabled: &yes, Language: "en", DateFormat: "medium", SortPreference: "name"}))
	assert.Error(t, v.Struct(SettingsRequest{NotificationsEnabled: &yes, Language: "en", DateFormat: "medium", SortPreference: "price"}))
}
