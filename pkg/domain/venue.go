package domain

import (
	"strings"

	dErrors "cardwise/pkg/domain-errors"
)

// VenueKey identifies a physical merchant location for rate limiting.
// The value is opaque; only equality matters.
type VenueKey string

// ParseVenueKey trims and validates a venue key from untrusted input.
func ParseVenueKey(s string) (VenueKey, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "venue cannot be empty")
	}
	return VenueKey(trimmed), nil
}

func (v VenueKey) String() string {
	return string(v)
}
