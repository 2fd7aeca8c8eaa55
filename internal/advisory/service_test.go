package advisory_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"cardwise/internal/advisory"
	"cardwise/internal/advisory/metrics"
	"cardwise/internal/advisory/mocks"
	"cardwise/internal/storage"
	"cardwise/pkg/domain"
	"cardwise/pkg/platform/sentinel"
	"cardwise/pkg/requestcontext"
)

// =============================================================================
// Advisory Service Test Suite
// =============================================================================
// The advisory never returns errors, so assertions go through the store,
// the mocked notifier and the observer hook.

type AdvisoryServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockNotifier *mocks.MockNotifier
	store        *storage.InMemoryStore
	metrics      *metrics.Metrics
	service      *advisory.Service

	mu       sync.Mutex
	outcomes []advisory.Outcome
}

func TestAdvisoryServiceSuite(t *testing.T) {
	suite.Run(t, new(AdvisoryServiceSuite))
}

var baseTime = time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)

func (s *AdvisoryServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNotifier = mocks.NewMockNotifier(s.ctrl)
	s.store = storage.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.outcomes = nil

	svc, err := advisory.New(s.mockNotifier, s.store,
		advisory.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		advisory.WithMetrics(s.metrics),
		advisory.WithObserver(advisory.ObserverFunc(s.record)),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *AdvisoryServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AdvisoryServiceSuite) record(_ context.Context, o advisory.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, o)
}

func (s *AdvisoryServiceSuite) lastOutcome() advisory.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.outcomes)
	return s.outcomes[len(s.outcomes)-1]
}

func at(offset time.Duration) context.Context {
	return requestcontext.WithTime(context.Background(), baseTime.Add(offset))
}

func suggestion(venue string) advisory.Suggestion {
	return advisory.Suggestion{
		Title:  "Use Sapphire Reserve",
		Body:   "3× on dining at Blue Bottle",
		Venue:  domain.VenueKey(venue),
		Reason: "3× on dining",
	}
}

func (s *AdvisoryServiceSuite) auditLen() int {
	entries, err := s.service.AuditLog(context.Background())
	s.Require().NoError(err)
	return len(entries)
}

// =============================================================================
// Constructor
// =============================================================================

func (s *AdvisoryServiceSuite) TestNew() {
	s.Run("nil notifier returns error", func() {
		_, err := advisory.New(nil, s.store)
		s.Require().Error(err)
		s.Contains(err.Error(), "notifier is required")
	})

	s.Run("nil store returns error", func() {
		_, err := advisory.New(s.mockNotifier, nil)
		s.Require().Error(err)
		s.Contains(err.Error(), "store is required")
	})
}

// =============================================================================
// RequestPermission
// =============================================================================

func (s *AdvisoryServiceSuite) TestRequestPermission() {
	s.Run("granted", func() {
		s.mockNotifier.EXPECT().RequestAuthorization(gomock.Any()).Return(true, nil)
		s.True(s.service.RequestPermission(context.Background()))
	})

	s.Run("denied", func() {
		s.mockNotifier.EXPECT().RequestAuthorization(gomock.Any()).Return(false, nil)
		s.False(s.service.RequestPermission(context.Background()))
	})

	s.Run("error collapses to false", func() {
		s.mockNotifier.EXPECT().RequestAuthorization(gomock.Any()).Return(true, errors.New("prompt failed"))
		s.False(s.service.RequestPermission(context.Background()))
	})

	s.Equal(1.0, testutil.ToFloat64(s.metrics.PermissionRequests.WithLabelValues("error")))
}

// =============================================================================
// ScheduleSuggestion
// =============================================================================

func (s *AdvisoryServiceSuite) TestFirstSuggestionIsDelivered() {
	var delivered advisory.Request
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req advisory.Request) error {
			delivered = req
			return nil
		})

	s.service.ScheduleSuggestion(at(0), suggestion("V1"))

	s.False(delivered.ID.IsNil())
	s.Equal("Use Sapphire Reserve", delivered.Title)
	s.Equal(advisory.SoundDefault, delivered.Sound)
	s.Equal(advisory.InterruptionTimeSensitive, delivered.InterruptionLevel)
	s.Equal(time.Second, delivered.TriggerDelay)
	s.False(delivered.Repeats)

	entries, err := s.service.AuditLog(context.Background())
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.NotEqual(delivered.ID.String(), entries[0].ID)
	_, parseErr := uuid.Parse(entries[0].ID)
	s.NoError(parseErr)
	s.Equal("3× on dining", entries[0].Reason)
	s.True(baseTime.Equal(entries[0].Timestamp))

	raw, err := s.store.Get(context.Background(), advisory.CooldownKey("V1"))
	s.Require().NoError(err)
	s.Equal("1777919400.000", string(raw))

	o := s.lastOutcome()
	s.Equal(advisory.StatusDelivered, o.Status)
	s.Nil(o.LastFired)
	s.Equal(delivered.ID, o.NotificationID)
}

func (s *AdvisoryServiceSuite) TestCooldownWindow() {
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s.service.ScheduleSuggestion(at(0), suggestion("V1"))

	s.Run("within window is suppressed", func() {
		s.service.ScheduleSuggestion(at(10*time.Minute), suggestion("V1"))
		s.Equal(advisory.StatusSuppressed, s.lastOutcome().Status)
		s.Equal(1, s.auditLen())
	})

	s.Run("exactly at window edge is suppressed", func() {
		s.service.ScheduleSuggestion(at(3600*time.Second), suggestion("V1"))
		o := s.lastOutcome()
		s.Equal(advisory.StatusSuppressed, o.Status)
		s.Require().NotNil(o.LastFired)
		s.True(baseTime.Equal(*o.LastFired))
	})

	s.Run("after window is delivered", func() {
		s.service.ScheduleSuggestion(at(3601*time.Second), suggestion("V1"))
		s.Equal(advisory.StatusDelivered, s.lastOutcome().Status)
		s.Equal(2, s.auditLen())
	})

	s.Equal(2.0, testutil.ToFloat64(s.metrics.Suggestions.WithLabelValues("suppressed")))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.Suggestions.WithLabelValues("delivered")))
}

func (s *AdvisoryServiceSuite) TestVenuesAreIndependent() {
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s.service.ScheduleSuggestion(at(0), suggestion("V1"))
	s.service.ScheduleSuggestion(at(time.Minute), suggestion("V2"))

	s.Equal(2, s.auditLen())
}

func (s *AdvisoryServiceSuite) TestDeliveryFailureLeavesNoTrace() {
	boom := errors.New("notification center unavailable")
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(boom)

	s.service.ScheduleSuggestion(at(0), suggestion("V1"))

	o := s.lastOutcome()
	s.Equal(advisory.StatusFailed, o.Status)
	s.ErrorIs(o.Err, boom)
	s.Equal(0, s.auditLen())
	_, err := s.store.Get(context.Background(), advisory.CooldownKey("V1"))
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Run("next attempt is not rate limited", func() {
		s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)
		s.service.ScheduleSuggestion(at(time.Second), suggestion("V1"))
		s.Equal(advisory.StatusDelivered, s.lastOutcome().Status)
	})
}

func (s *AdvisoryServiceSuite) TestUnreadableCooldownCountsAsNeverFired() {
	s.Require().NoError(s.store.Set(context.Background(), advisory.CooldownKey("V1"), []byte("garbage")))
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)

	s.service.ScheduleSuggestion(at(0), suggestion("V1"))

	s.Equal(advisory.StatusDelivered, s.lastOutcome().Status)
}

func (s *AdvisoryServiceSuite) TestConcurrentSameVenueDeliversOnce() {
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	const goroutines = 25
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			s.service.ScheduleSuggestion(at(0), suggestion("V1"))
		}()
	}
	wg.Wait()

	s.Equal(1, s.auditLen())
	s.Equal(float64(goroutines-1), testutil.ToFloat64(s.metrics.Suggestions.WithLabelValues("suppressed")))
}

func (s *AdvisoryServiceSuite) TestAuditLogIsChronological() {
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	for i, venue := range []string{"A", "B", "C"} {
		s.service.ScheduleSuggestion(at(time.Duration(i)*time.Minute), suggestion(venue))
	}

	entries, err := s.service.AuditLog(context.Background())
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	for i := 1; i < len(entries); i++ {
		s.True(entries[i-1].Timestamp.Before(entries[i].Timestamp))
	}
}

func (s *AdvisoryServiceSuite) TestAuditEntriesGetTheirOwnIDs() {
	var ids []string
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req advisory.Request) error {
			ids = append(ids, req.ID.String())
			return nil
		}).Times(2)

	s.service.ScheduleSuggestion(at(0), suggestion("A"))
	s.service.ScheduleSuggestion(at(time.Minute), suggestion("B"))

	entries, err := s.service.AuditLog(context.Background())
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.NotEqual(entries[0].ID, entries[1].ID)
	for _, e := range entries {
		s.NotContains(ids, e.ID)
	}
}

func (s *AdvisoryServiceSuite) TestCancelledCallerStillRecordsDelivery() {
	store := &cancellationAwareStore{InMemoryStore: storage.NewInMemoryStore()}
	svc, err := advisory.New(s.mockNotifier, store)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(at(0))
	defer cancel()

	// The client goes away right after the handoff.
	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, advisory.Request) error {
			cancel()
			return nil
		}).Times(1)

	svc.ScheduleSuggestion(ctx, suggestion("V1"))
	svc.ScheduleSuggestion(at(time.Minute), suggestion("V1"))

	raw, err := store.Get(context.Background(), advisory.CooldownKey("V1"))
	s.Require().NoError(err)
	s.Equal("1777919400.000", string(raw))

	entries, err := svc.AuditLog(context.Background())
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *AdvisoryServiceSuite) TestTriggerDelayOption() {
	svc, err := advisory.New(s.mockNotifier, s.store, advisory.WithTriggerDelay(0))
	s.Require().NoError(err)

	s.mockNotifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req advisory.Request) error {
			s.Equal(time.Duration(0), req.TriggerDelay)
			return nil
		})

	svc.ScheduleSuggestion(at(0), suggestion("V1"))
}

// cancellationAwareStore fails writes on a done context the way the Redis
// and Postgres clients do.
type cancellationAwareStore struct {
	*storage.InMemoryStore
}

func (c *cancellationAwareStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.InMemoryStore.Set(ctx, key, value)
}

func (c *cancellationAwareStore) Append(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.InMemoryStore.Append(ctx, key, value)
}

// =============================================================================
// Tracing
// =============================================================================

func TestScheduleSuggestion_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	svc, err := advisory.New(notifier, storage.NewInMemoryStore(),
		advisory.WithTracer(provider.Tracer("advisory-test")))
	require.NoError(t, err)

	notifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)
	svc.ScheduleSuggestion(at(0), suggestion("V1"))
	svc.ScheduleSuggestion(at(time.Minute), suggestion("V1"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	want := []string{string(advisory.StatusDelivered), string(advisory.StatusSuppressed)}
	for i, span := range spans {
		require.Equal(t, "advisory.ScheduleSuggestion", span.Name())
		attrs := map[attribute.Key]string{}
		for _, kv := range span.Attributes() {
			attrs[kv.Key] = kv.Value.Emit()
		}
		require.Equal(t, "V1", attrs["venue"])
		require.Equal(t, want[i], attrs["outcome"])
	}
}

// =============================================================================
// Store failures (mocked store)
// =============================================================================

func TestScheduleSuggestion_StoreWriteFailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	store := mocks.NewMockStore(ctrl)
	observer := mocks.NewMockObserver(ctrl)

	svc, err := advisory.New(notifier, store, advisory.WithObserver(observer))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	store.EXPECT().Get(gomock.Any(), advisory.CooldownKey("V9")).Return(nil, sentinel.ErrNotFound)
	notifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().Set(gomock.Any(), advisory.CooldownKey("V9"), gomock.Any()).Return(errors.New("disk full"))
	store.EXPECT().Append(gomock.Any(), advisory.AuditLogKey, gomock.Any()).Return(errors.New("disk full"))
	observer.EXPECT().Observe(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, o advisory.Outcome) {
			if o.Status != advisory.StatusDelivered {
				t.Errorf("expected delivered outcome, got %s", o.Status)
			}
		})

	svc.ScheduleSuggestion(at(0), suggestion("V9"))
}

func TestScheduleSuggestion_StoreReadFailureProceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	store := mocks.NewMockStore(ctrl)

	svc, err := advisory.New(notifier, store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrUnavailable)
	notifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc.ScheduleSuggestion(at(0), suggestion("V9"))
}
