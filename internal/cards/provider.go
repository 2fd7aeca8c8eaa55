// Package cards serves the user's wallet from a mock card provider and
// checks that card art is reachable.
package cards

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cardwise/pkg/domain"
)

const (
	DefaultArtTimeout     = 3 * time.Second
	DefaultArtConcurrency = 4
	defaultArtBaseURL     = "https://art.cardwise.example/cards/"
)

// Provider returns a fixed wallet of cards. There is no issuer integration.
type Provider struct {
	cards       []domain.Card
	client      *http.Client
	timeout     time.Duration
	concurrency int
	logger      *slog.Logger
	metrics     ArtMetrics
}

// ArtMetrics records art validation results.
type ArtMetrics interface {
	ObserveArtCheck(reachable bool, latency time.Duration)
}

type Option func(*Provider)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

// WithArtTimeout bounds each HEAD request.
func WithArtTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithArtConcurrency caps in-flight HEAD requests.
func WithArtConcurrency(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func WithMetrics(m ArtMetrics) Option {
	return func(p *Provider) {
		p.metrics = m
	}
}

// WithCards replaces the default wallet.
func WithCards(cards []domain.Card) Option {
	return func(p *Provider) {
		p.cards = append([]domain.Card(nil), cards...)
	}
}

// NewMockProvider builds a provider over the demo wallet.
func NewMockProvider(opts ...Option) *Provider {
	p := &Provider{
		cards:       defaultWallet(defaultArtBaseURL),
		client:      http.DefaultClient,
		timeout:     DefaultArtTimeout,
		concurrency: DefaultArtConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Cards returns the wallet in provider order.
func (p *Provider) Cards(_ context.Context) []domain.Card {
	return append([]domain.Card(nil), p.cards...)
}

var (
	chaseID = domain.InstitutionID(uuid.MustParse("6f1d1c52-0b7e-4b8e-9a51-1f2a4c9e0a01"))
	amexID  = domain.InstitutionID(uuid.MustParse("6f1d1c52-0b7e-4b8e-9a51-1f2a4c9e0a02"))
	citiID  = domain.InstitutionID(uuid.MustParse("6f1d1c52-0b7e-4b8e-9a51-1f2a4c9e0a03"))
)

func defaultWallet(artBase string) []domain.Card {
	type seed struct {
		id          string
		institution domain.InstitutionID
		product     string
		last4       string
		art         string
		premium     bool
		network     domain.Network
	}
	seeds := []seed{
		{"0b0c7a2e-5d55-4c1c-8d0f-6a3c1b000001", chaseID, "Chase Sapphire Preferred", "4821", "sapphire-preferred.png", true, domain.NetworkVisa},
		{"0b0c7a2e-5d55-4c1c-8d0f-6a3c1b000002", chaseID, "Chase Freedom Unlimited", "1137", "freedom-unlimited.png", false, domain.NetworkVisa},
		{"0b0c7a2e-5d55-4c1c-8d0f-6a3c1b000003", amexID, "Amex Blue Cash Preferred", "3005", "blue-cash-preferred.png", false, domain.NetworkAmex},
		{"0b0c7a2e-5d55-4c1c-8d0f-6a3c1b000004", citiID, "Citi Custom Cash", "7790", "custom-cash.png", false, domain.NetworkMastercard},
	}
	cards := make([]domain.Card, 0, len(seeds))
	for _, s := range seeds {
		card, err := domain.NewCard(domain.CardID(uuid.MustParse(s.id)), s.institution, s.product, s.last4, artBase+s.art, s.premium, s.network)
		if err != nil {
			panic(err)
		}
		cards = append(cards, card)
	}
	return cards
}
