package domain

import (
	"github.com/google/uuid"

	dErrors "cardwise/pkg/domain-errors"
)

// Typed identifiers keep card, institution and notification IDs from being
// swapped at call sites.
type (
	CardID         uuid.UUID
	InstitutionID  uuid.UUID
	NotificationID uuid.UUID
)

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return parsed, nil
}

// ParseCardID parses a non-nil card UUID.
func ParseCardID(s string) (CardID, error) {
	u, err := parseUUID(s, "card_id")
	return CardID(u), err
}

// ParseInstitutionID parses a non-nil institution UUID.
func ParseInstitutionID(s string) (InstitutionID, error) {
	u, err := parseUUID(s, "institution_id")
	return InstitutionID(u), err
}

// ParseNotificationID parses a non-nil notification UUID.
func ParseNotificationID(s string) (NotificationID, error) {
	u, err := parseUUID(s, "notification_id")
	return NotificationID(u), err
}

// NewNotificationID returns a fresh random notification ID.
func NewNotificationID() NotificationID {
	return NotificationID(uuid.New())
}

func (id CardID) String() string         { return uuid.UUID(id).String() }
func (id CardID) IsNil() bool            { return uuid.UUID(id) == uuid.Nil }
func (id InstitutionID) String() string  { return uuid.UUID(id).String() }
func (id InstitutionID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id NotificationID) String() string { return uuid.UUID(id).String() }
func (id NotificationID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id CardID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *CardID) UnmarshalText(b []byte) error {
	parsed, err := ParseCardID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id InstitutionID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *InstitutionID) UnmarshalText(b []byte) error {
	parsed, err := ParseInstitutionID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id NotificationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *NotificationID) UnmarshalText(b []byte) error {
	parsed, err := ParseNotificationID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
