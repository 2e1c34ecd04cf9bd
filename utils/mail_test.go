package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

func TestNewMailer_UnconfiguredReturnsNil(t *testing.T) {
	assert.Nil(t, NewMailer(&config.Config{}))
	assert.Nil(t, NewMailer(&config.Config{FromEmail: "shop@example.com"}))
	assert.Nil(t, NewMailer(&config.Config{SMTPAddress: "localhost:587"}))
}

func TestNewMailer_Configured(t *testing.T) {
	m := NewMailer(&config.Config{
		FromEmail:   "shop@example.com",
		SMTPAddress: "localhost:587",
		SMTPHost:    "localhost",
	})
	assert.NotNil(t, m)
}

func TestSendOrderConfirmation_NilReceiverIsNoOp(t *testing.T) {
	var m *Mailer
	require.NotPanics(t, func() {
		err := m.SendOrderConfirmation("client@example.com", &models.Order{ID: "order-1", Total: 42.50})
		assert.NoError(t, err)
	})
}
