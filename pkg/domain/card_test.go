package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cardwise/pkg/domain-errors"
)

func TestNewCard(t *testing.T) {
	cardID := CardID(uuid.New())
	institution := InstitutionID(uuid.New())

	t.Run("valid card", func(t *testing.T) {
		card, err := NewCard(cardID, institution, "  Chase Sapphire Reserve ", "4242", "", true, NetworkVisa)
		require.NoError(t, err)
		assert.Equal(t, "Chase Sapphire Reserve", card.ProductName)
		assert.Equal(t, "Chase Sapphire Reserve ••4242", card.DisplayName())
	})

	tests := []struct {
		name    string
		id      CardID
		product string
		last4   string
		network Network
	}{
		{"nil id", CardID(uuid.Nil), "Card", "1234", NetworkVisa},
		{"empty product", cardID, "   ", "1234", NetworkVisa},
		{"short last4", cardID, "Card", "123", NetworkVisa},
		{"non-digit last4", cardID, "Card", "12a4", NetworkVisa},
		{"unknown network", cardID, "Card", "1234", Network("diners")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard(tt.id, institution, tt.product, tt.last4, "", false, tt.network)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}

func TestParseNetwork(t *testing.T) {
	n, err := ParseNetwork(" AMEX ")
	require.NoError(t, err)
	assert.Equal(t, NetworkAmex, n)

	_, err = ParseNetwork("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	_, err = ParseNetwork("unionpay")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestParseVenueKey(t *testing.T) {
	v, err := ParseVenueKey("  cafe-42 ")
	require.NoError(t, err)
	assert.Equal(t, VenueKey("cafe-42"), v)

	_, err = ParseVenueKey("   ")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
