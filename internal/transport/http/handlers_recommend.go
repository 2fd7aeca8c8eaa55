package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cardwise/internal/catalog"
	"cardwise/pkg/platform/httputil"
	"cardwise/pkg/requestcontext"
)

// RecommendationHandler answers "which card should I use here?".
type RecommendationHandler struct {
	cards       CardProvider
	recommender Recommender
	logger      *slog.Logger
}

func NewRecommendationHandler(cards CardProvider, recommender Recommender, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{cards: cards, recommender: recommender, logger: logger}
}

// Register mounts recommendation endpoints on the router.
func (h *RecommendationHandler) Register(r chi.Router) {
	r.Post("/recommendations", h.handleRecommend)
}

func (h *RecommendationHandler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RecommendationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.recommender.Recommend(ctx, req.Category, h.cards.Cards(ctx))
	resp := RecommendationResponse{
		Card:      result.Card,
		Hint:      result.Hint,
		Rationale: result.Rationale,
	}
	if result.Card != nil {
		resp.Benefits = catalog.Benefits(result.Card.ProductName)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
