package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cardwise/internal/catalog"
	dErrors "cardwise/pkg/domain-errors"
	"cardwise/pkg/platform/httputil"
	"cardwise/pkg/requestcontext"
)

// CardsHandler serves the wallet and the card catalog.
type CardsHandler struct {
	cards  CardProvider
	logger *slog.Logger
}

func NewCardsHandler(cards CardProvider, logger *slog.Logger) *CardsHandler {
	return &CardsHandler{cards: cards, logger: logger}
}

// Register mounts card and catalog endpoints on the router.
func (h *CardsHandler) Register(r chi.Router) {
	r.Get("/cards", h.handleListCards)
	r.Get("/cards/art-status", h.handleArtStatus)
	r.Get("/catalog", h.handleCatalog)
	r.Get("/catalog/benefits", h.handleBenefits)
}

func (h *CardsHandler) handleListCards(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, CardsResponse{Cards: h.cards.Cards(r.Context())})
}

func (h *CardsHandler) handleArtStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.cards.ValidateArt(ctx)
	h.logger.InfoContext(ctx, "card art status requested",
		"request_id", requestcontext.RequestID(ctx),
		"cards", len(results),
	)
	httputil.WriteJSON(w, http.StatusOK, ArtStatusResponse{Results: results})
}

func (h *CardsHandler) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"entries": catalog.Entries()})
}

func (h *CardsHandler) handleBenefits(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "name query parameter is required"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, BenefitsResponse{Name: name, Benefits: catalog.Benefits(name)})
}
