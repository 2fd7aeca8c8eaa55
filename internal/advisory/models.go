package advisory

import (
	"time"

	"cardwise/pkg/domain"
)

const (
	// DefaultCooldown is the per-venue window during which repeat
	// suggestions are suppressed.
	DefaultCooldown = 3600 * time.Second

	// DefaultTriggerDelay is how long the notifier waits before showing
	// a delivered request.
	DefaultTriggerDelay = time.Second

	// AuditLogKey is the store key holding the ordered audit trail.
	AuditLogKey = "notif_audit_log"

	cooldownKeyPrefix = "notif_last_venue_"
)

// CooldownKey returns the store key holding a venue's last-fired timestamp.
func CooldownKey(venue domain.VenueKey) string {
	return cooldownKeyPrefix + string(venue)
}

// Suggestion is a card suggestion the caller wants shown at a venue.
type Suggestion struct {
	Title  string
	Body   string
	Venue  domain.VenueKey
	Reason string
}

// Sound and interruption levels understood by notifiers.
const (
	SoundDefault              = "default"
	InterruptionTimeSensitive = "time-sensitive"
)

// Request is what the advisory hands to a Notifier.
type Request struct {
	ID                domain.NotificationID `json:"id"`
	Title             string                `json:"title"`
	Body              string                `json:"body"`
	Sound             string                `json:"sound"`
	InterruptionLevel string                `json:"interruption_level"`
	TriggerDelay      time.Duration         `json:"trigger_delay"`
	Repeats           bool                  `json:"repeats"`
}

// Status classifies what happened to a suggestion.
type Status string

const (
	StatusDelivered  Status = "delivered"
	StatusSuppressed Status = "suppressed"
	StatusFailed     Status = "failed"
)

// Outcome describes a single ScheduleSuggestion call. It is reported to
// observers only; callers of ScheduleSuggestion never see it.
type Outcome struct {
	Status         Status
	Venue          domain.VenueKey
	NotificationID domain.NotificationID
	At             time.Time
	// LastFired is set when a prior dispatch for the venue was on record.
	LastFired *time.Time
	Err       error
}
