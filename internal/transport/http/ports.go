package httptransport

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks CardProvider,Recommender,Advisor,SecretStore

import (
	"context"

	"cardwise/internal/advisory"
	"cardwise/internal/cards"
	"cardwise/internal/recommend"
	"cardwise/pkg/domain"
	"cardwise/pkg/platform/audit"
)

// CardProvider serves the wallet.
type CardProvider interface {
	Cards(ctx context.Context) []domain.Card
	ValidateArt(ctx context.Context) []cards.ArtStatus
}

// Recommender picks a card for a spending category.
type Recommender interface {
	Recommend(ctx context.Context, category string, candidates []domain.Card) recommend.Result
}

// Advisor fires rate-limited suggestion notifications.
type Advisor interface {
	RequestPermission(ctx context.Context) bool
	ScheduleSuggestion(ctx context.Context, sg advisory.Suggestion)
	AuditLog(ctx context.Context) ([]audit.Entry, error)
}

// SecretStore saves named secrets.
type SecretStore interface {
	Save(ctx context.Context, name, value string) error
	Read(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, name string) error
}
