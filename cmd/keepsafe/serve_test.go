package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/keepsafe/internal/config"
)

func TestDeliveryChannels(t *testing.T) {
	c := &config.Config{
		Delivery: config.Delivery{Channels: []string{"telegram", "email"}},
		Telegram: config.Telegram{Token: "token", ChatID: "42"},
		Email:    config.Email{SMTPHost: "smtp.example.com", SMTPPort: "587", To: "me@example.com"},
	}

	channels, err := deliveryChannels(c)
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "42", channels["telegram"].To)
	assert.Equal(t, "me@example.com", channels["email"].To)
}

func TestDeliveryChannels_BadPort(t *testing.T) {
	c := &config.Config{
		Delivery: config.Delivery{Channels: []string{"email"}},
		Email:    config.Email{SMTPPort: "smtp"},
	}

	_, err := deliveryChannels(c)
	assert.Error(t, err)
}

func TestDeliveryChannels_Unknown(t *testing.T) {
	c := &config.Config{Delivery: config.Delivery{Channels: []string{"pigeon"}}}

	_, err := deliveryChannels(c)
	assert.Error(t, err)
}
