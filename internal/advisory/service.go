package advisory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cardwise/internal/advisory/metrics"
	"cardwise/pkg/domain"
	"cardwise/pkg/platform/audit"
	"cardwise/pkg/platform/sentinel"
	"cardwise/pkg/requestcontext"
)

// Service decides whether a suggestion may be shown for a venue, hands it
// to the notifier and records what was delivered.
//
// Every failure mode is silent to the caller: a suppressed suggestion and a
// failed delivery look the same from ScheduleSuggestion. Outcomes are
// reported to the optional Observer, the logger and metrics instead.
type Service struct {
	notifier     Notifier
	store        Store
	auditLog     *audit.Log
	logger       *slog.Logger
	metrics      *metrics.Metrics
	observer     Observer
	tracer       trace.Tracer
	cooldown     time.Duration
	triggerDelay time.Duration
	locks        *venueLocks
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithObserver registers a hook that receives every dispatch Outcome.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

func WithCooldown(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cooldown = d
		}
	}
}

func WithTriggerDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.triggerDelay = d
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(notifier Notifier, store Store, opts ...Option) (*Service, error) {
	if notifier == nil {
		return nil, errors.New("notifier is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}

	svc := &Service{
		notifier:     notifier,
		store:        store,
		auditLog:     audit.NewLog(store, AuditLogKey),
		tracer:       otel.Tracer("cardwise/advisory"),
		cooldown:     DefaultCooldown,
		triggerDelay: DefaultTriggerDelay,
		locks:        newVenueLocks(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// RequestPermission asks the notifier whether suggestions may be delivered.
// Errors collapse to false.
func (s *Service) RequestPermission(ctx context.Context) bool {
	granted, err := s.notifier.RequestAuthorization(ctx)
	if err != nil {
		s.warn(ctx, "notification permission request failed", "error", err)
		s.metrics.IncrementPermission("error")
		return false
	}
	s.metrics.IncrementPermission(strconv.FormatBool(granted))
	return granted
}

// ScheduleSuggestion delivers the suggestion unless the venue is cooling
// down. Nothing is returned; see Service for the failure contract.
func (s *Service) ScheduleSuggestion(ctx context.Context, sg Suggestion) {
	outcome := s.dispatch(ctx, sg)
	s.metrics.IncrementOutcome(string(outcome.Status))
	s.report(ctx, sg, outcome)
	if s.observer != nil {
		s.observer.Observe(ctx, outcome)
	}
}

func (s *Service) dispatch(ctx context.Context, sg Suggestion) Outcome {
	ctx, span := s.tracer.Start(ctx, "advisory.ScheduleSuggestion",
		trace.WithAttributes(attribute.String("venue", string(sg.Venue))))
	defer span.End()

	unlock := s.locks.Lock(string(sg.Venue))
	defer unlock()

	now := requestcontext.Now(ctx)
	outcome := Outcome{Venue: sg.Venue, At: now}

	if last, ok := s.lastFired(ctx, sg.Venue); ok {
		outcome.LastFired = &last
		if now.Sub(last) <= s.cooldown {
			outcome.Status = StatusSuppressed
			span.SetAttributes(attribute.String("outcome", string(outcome.Status)))
			return outcome
		}
	}

	req := Request{
		ID:                domain.NewNotificationID(),
		Title:             sg.Title,
		Body:              sg.Body,
		Sound:             SoundDefault,
		InterruptionLevel: InterruptionTimeSensitive,
		TriggerDelay:      s.triggerDelay,
		Repeats:           false,
	}
	outcome.NotificationID = req.ID

	start := time.Now()
	err := s.notifier.Deliver(ctx, req)
	s.metrics.ObserveDeliverLatency(time.Since(start))
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, "deliver failed")
		span.SetAttributes(attribute.String("outcome", string(outcome.Status)))
		return outcome
	}

	outcome.Status = StatusDelivered
	span.SetAttributes(attribute.String("outcome", string(outcome.Status)))

	// The handoff already happened, so the writes must outlive a caller
	// that has gone away.
	persistCtx := context.WithoutCancel(ctx)
	if err := s.store.Set(persistCtx, CooldownKey(sg.Venue), encodeEpoch(now)); err != nil {
		s.warn(ctx, "failed to persist venue cooldown", "venue", sg.Venue, "error", err)
	}
	entry := audit.Entry{
		ID:        uuid.NewString(),
		Title:     sg.Title,
		Body:      sg.Body,
		Timestamp: now,
		Reason:    sg.Reason,
	}
	if err := s.auditLog.Append(persistCtx, entry); err != nil {
		s.warn(ctx, "failed to append suggestion audit entry", "venue", sg.Venue, "error", err)
	}
	return outcome
}

// lastFired reads the venue's last dispatch time. Missing or unreadable
// values count as never fired.
func (s *Service) lastFired(ctx context.Context, venue domain.VenueKey) (time.Time, bool) {
	raw, err := s.store.Get(ctx, CooldownKey(venue))
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.warn(ctx, "failed to read venue cooldown", "venue", venue, "error", err)
		}
		return time.Time{}, false
	}
	last, err := decodeEpoch(raw)
	if err != nil {
		s.warn(ctx, "ignoring unreadable venue cooldown", "venue", venue, "error", err)
		return time.Time{}, false
	}
	return last, true
}

// AuditLog returns delivered suggestions in chronological order.
func (s *Service) AuditLog(ctx context.Context) ([]audit.Entry, error) {
	entries, skipped, err := s.auditLog.Entries(ctx)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.warn(ctx, "skipped unreadable audit entries", "count", skipped)
	}
	return entries, nil
}

func (s *Service) report(ctx context.Context, sg Suggestion, outcome Outcome) {
	if s.logger == nil {
		return
	}
	args := []any{
		"request_id", requestcontext.RequestID(ctx),
		"venue", sg.Venue,
		"outcome", outcome.Status,
		"log_type", "audit",
	}
	switch outcome.Status {
	case StatusDelivered:
		args = append(args, "notification_id", outcome.NotificationID.String(), "reason", sg.Reason)
		s.logger.InfoContext(ctx, "suggestion_delivered", args...)
	case StatusSuppressed:
		if outcome.LastFired != nil {
			args = append(args, "last_fired", outcome.LastFired.UTC())
		}
		s.logger.DebugContext(ctx, "suggestion_suppressed", args...)
	case StatusFailed:
		args = append(args, "error", outcome.Err)
		s.logger.WarnContext(ctx, "suggestion_failed", args...)
	}
}

func (s *Service) warn(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg, args...)
	}
}

// Cooldown timestamps are stored as decimal epoch seconds with millisecond
// precision, e.g. "1767225600.125".
func encodeEpoch(t time.Time) []byte {
	secs := float64(t.UnixMilli()) / 1000
	return []byte(strconv.FormatFloat(secs, 'f', 3, 64))
}

func decodeEpoch(raw []byte) (time.Time, error) {
	secs, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", sentinel.ErrCorrupt, err)
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return time.Time{}, fmt.Errorf("%w: non-finite timestamp", sentinel.ErrCorrupt)
	}
	return time.UnixMilli(int64(secs*1000 + 0.5)), nil
}
