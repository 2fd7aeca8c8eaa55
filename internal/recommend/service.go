package recommend

import (
	"context"
	"log/slog"
	"strconv"

	"cardwise/internal/recommend/metrics"
	"cardwise/pkg/domain"
	"cardwise/pkg/requestcontext"
)

// Service exposes the recommendation rules with logging and metrics.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
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

func New(opts ...Option) *Service {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Recommend picks the best card among candidates for the spending category.
func (s *Service) Recommend(ctx context.Context, category string, candidates []domain.Card) Result {
	result := Recommend(category, candidates)
	matched := result.Card != nil
	s.metrics.IncrementRecommendation(result.Rule, strconv.FormatBool(matched))

	if s.logger != nil {
		s.logger.DebugContext(ctx, "card recommended",
			"request_id", requestcontext.RequestID(ctx),
			"rule", result.Rule,
			"candidates", len(candidates),
			"matched", matched,
		)
	}
	return result
}
