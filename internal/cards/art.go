package cards

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"cardwise/pkg/domain"
)

// ArtStatus is the reachability of one card's art URL.
type ArtStatus struct {
	CardID     domain.CardID `json:"card_id"`
	URL        string        `json:"url"`
	Reachable  bool          `json:"reachable"`
	StatusCode int           `json:"status_code,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// ValidateArt issues HEAD requests for every card's art URL in parallel.
// Results follow wallet order. Unreachable art never removes a card.
func (p *Provider) ValidateArt(ctx context.Context) []ArtStatus {
	results := make([]ArtStatus, len(p.cards))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, card := range p.cards {
		g.Go(func() error {
			results[i] = p.checkArt(ctx, card)
			return nil
		})
	}
	// checkArt never fails the group
	_ = g.Wait()

	if p.logger != nil {
		unreachable := 0
		for _, r := range results {
			if !r.Reachable {
				unreachable++
			}
		}
		p.logger.InfoContext(ctx, "card art validated",
			"cards", len(results),
			"unreachable", unreachable,
		)
	}
	return results
}

func (p *Provider) checkArt(ctx context.Context, card domain.Card) ArtStatus {
	status := ArtStatus{CardID: card.ID, URL: card.ArtURL}
	if card.ArtURL == "" {
		status.Error = "no art url"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if p.metrics != nil {
			p.metrics.ObserveArtCheck(status.Reachable, time.Since(start))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, card.ArtURL, nil)
	if err != nil {
		status.Error = fmt.Sprintf("build request: %v", err)
		return status
	}
	resp, err := p.client.Do(req)
	if err != nil {
		status.Error = err.Error()
		if p.logger != nil {
			p.logger.DebugContext(ctx, "card art unreachable", "card_id", card.ID.String(), "error", err)
		}
		return status
	}
	_ = resp.Body.Close()

	status.StatusCode = resp.StatusCode
	status.Reachable = resp.StatusCode >= 200 && resp.StatusCode < 400
	return status
}
