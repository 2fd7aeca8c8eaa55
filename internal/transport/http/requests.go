package httptransport

import (
	"strings"

	"cardwise/internal/cards"
	"cardwise/pkg/domain"
	dErrors "cardwise/pkg/domain-errors"
	"cardwise/pkg/platform/audit"
)

const (
	maxTitleLength  = 200
	maxBodyLength   = 1000
	maxSecretLength = 8192
)

type RecommendationRequest struct {
	Category string `json:"category"`
}

func (r *RecommendationRequest) Normalize() {
	r.Category = strings.TrimSpace(r.Category)
}

// Validate accepts an empty category; it falls through to the everyday rule.
func (r *RecommendationRequest) Validate() error {
	return nil
}

type RecommendationResponse struct {
	Card      *domain.Card `json:"card,omitempty"`
	Hint      string       `json:"hint"`
	Rationale string       `json:"rationale"`
	Benefits  string       `json:"benefits,omitempty"`
}

type SuggestionRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Venue  string `json:"venue"`
	Reason string `json:"reason"`
}

func (r *SuggestionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
	r.Venue = strings.TrimSpace(r.Venue)
	r.Reason = strings.TrimSpace(r.Reason)
}

func (r *SuggestionRequest) Validate() error {
	if r.Title == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "title is required")
	}
	if len(r.Title) > maxTitleLength {
		return dErrors.New(dErrors.CodeInvalidInput, "title is too long")
	}
	if len(r.Body) > maxBodyLength {
		return dErrors.New(dErrors.CodeInvalidInput, "body is too long")
	}
	if r.Venue == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "venue is required")
	}
	return nil
}

type SecretRequest struct {
	Value string `json:"value"`
}

func (r *SecretRequest) Normalize() {}

func (r *SecretRequest) Validate() error {
	if len(r.Value) > maxSecretLength {
		return dErrors.New(dErrors.CodeInvalidInput, "secret value is too long")
	}
	return nil
}

type SecretResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type PermissionResponse struct {
	Granted bool `json:"granted"`
}

type BenefitsResponse struct {
	Name     string `json:"name"`
	Benefits string `json:"benefits"`
}

type CardsResponse struct {
	Cards []domain.Card `json:"cards"`
}

type ArtStatusResponse struct {
	Results []cards.ArtStatus `json:"results"`
}

type AuditResponse struct {
	Entries []audit.Entry `json:"entries"`
}
