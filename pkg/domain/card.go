package domain

import (
	"strings"

	dErrors "cardwise/pkg/domain-errors"
)

// Network is the payment network a card runs on.
type Network string

const (
	NetworkVisa       Network = "visa"
	NetworkMastercard Network = "mastercard"
	NetworkAmex       Network = "amex"
	NetworkDiscover   Network = "discover"
)

var validNetworks = map[Network]bool{
	NetworkVisa:       true,
	NetworkMastercard: true,
	NetworkAmex:       true,
	NetworkDiscover:   true,
}

// ParseNetwork normalizes and validates a network name.
func ParseNetwork(s string) (Network, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "network cannot be empty")
	}
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	if !n.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid network")
	}
	return n, nil
}

func (n Network) IsValid() bool {
	return validNetworks[n]
}

func (n Network) String() string {
	return string(n)
}

// Card is a payment card held by the user. Values are immutable once built;
// callers pass them by value.
type Card struct {
	ID            CardID        `json:"id"`
	InstitutionID InstitutionID `json:"institution_id"`
	ProductName   string        `json:"product_name"`
	Last4         string        `json:"last4"`
	ArtURL        string        `json:"art_url,omitempty"`
	Premium       bool          `json:"premium"`
	Network       Network       `json:"network"`
}

// NewCard builds a Card with domain invariant validation.
func NewCard(id CardID, institution InstitutionID, productName, last4, artURL string, premium bool, network Network) (Card, error) {
	if id.IsNil() {
		return Card{}, dErrors.New(dErrors.CodeInvariantViolation, "card id cannot be nil")
	}
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return Card{}, dErrors.New(dErrors.CodeInvariantViolation, "product name cannot be empty")
	}
	if !isLast4(last4) {
		return Card{}, dErrors.New(dErrors.CodeInvariantViolation, "last4 must be exactly four digits")
	}
	if !network.IsValid() {
		return Card{}, dErrors.New(dErrors.CodeInvariantViolation, "invalid network")
	}
	return Card{
		ID:            id,
		InstitutionID: institution,
		ProductName:   productName,
		Last4:         last4,
		ArtURL:        artURL,
		Premium:       premium,
		Network:       network,
	}, nil
}

// DisplayName renders the card the way it appears in suggestion text.
func (c Card) DisplayName() string {
	return c.ProductName + " ••" + c.Last4
}

func isLast4(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
