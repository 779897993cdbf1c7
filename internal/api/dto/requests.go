package dto

import (
	"time"

	"github.com/aliskhannn/keepsafe/internal/model"
)

// ShoppingItemRequest is the body of a shopping item create call.
type ShoppingItemRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Quantity int     `json:"quantity" validate:"omitempty,min=1"`
	Category string  `json:"category" validate:"omitempty,category"`
	Notes    *string `json:"notes"`
}

func (r ShoppingItemRequest) Item() model.ShoppingItem {
	return model.ShoppingItem{
		Name:     r.Name,
		Quantity: r.Quantity,
		Category: r.Category,
		Notes:    r.Notes,
	}
}

type PermissionRequest struct {
	Status model.PermissionStatus `json:"status" validate:"required,oneof=notDetermined denied authorized provisional ephemeral"`
}

type PremiumRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type SettingsRequest struct {
	NotificationsEnabled *bool  `json:"notifications_enabled" validate:"required"`
	Language             string `json:"language" validate:"required,max=16"`
	DateFormat           string `json:"date_format" validate:"required,oneof=short medium long full"`
	SortPreference       string `json:"sort_preference" validate:"required,oneof=expiration name created"`
}

func (r SettingsRequest) Settings() model.Settings {
	return model.Settings{
		NotificationsEnabled: *r.NotificationsEnabled,
		Language:             r.Language,
		DateFormat:           r.DateFormat,
		SortPreference:       r.SortPreference,
	}
}

// PendingNotification is a pending request as shown to API clients.
type PendingNotification struct {
	model.NotificationRequest
	FireAt time.Time `json:"fire_at"`
}

func NewPendingNotifications(reqs []model.NotificationRequest) []PendingNotification {
	out := make([]PendingNotification, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, PendingNotification{NotificationRequest: r, FireAt: r.FireAt()})
	}

	return out
}
