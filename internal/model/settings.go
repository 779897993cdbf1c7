package model

// Sort preferences for the product list.
const (
	SortByExpiration = "expiration"
	SortByName       = "name"
	SortByCreated    = "created"
)

// Settings holds user preferences.
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled"`
	Language             string `json:"language"`
	DateFormat           string `json:"date_format"`
	SortPreference       string `json:"sort_preference"`
}

// DefaultSettings returns the preferences of a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		Language:             "en",
		DateFormat:           "medium",
		SortPreference:       SortByExpiration,
	}
}

// Limits describes how many items a user may keep. Zero means unlimited.
type Limits struct {
	MaxProducts      int `json:"max_products"`
	MaxShoppingItems int `json:"max_shopping_items"`
}

// Features lists the premium-only capabilities.
type Features struct {
	CloudSync          bool `json:"cloud_sync"`
	Analytics          bool `json:"analytics"`
	SmartNotifications bool `json:"smart_notifications"`
	CustomThemes       bool `json:"custom_themes"`
}

// Premium is the premium status together with what it unlocks.
type Premium struct {
	Active   bool     `json:"active"`
	Limits   Limits   `json:"limits"`
	Features Features `json:"features"`
}
