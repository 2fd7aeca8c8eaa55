package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cardwise/internal/advisory"
	"cardwise/pkg/domain"
	"cardwise/pkg/platform/audit"
	"cardwise/pkg/platform/httputil"
	"cardwise/pkg/requestcontext"
)

// AdvisoryHandler exposes notification permission, suggestion scheduling
// and the delivered-suggestion audit trail.
type AdvisoryHandler struct {
	advisor Advisor
	logger  *slog.Logger
}

func NewAdvisoryHandler(advisor Advisor, logger *slog.Logger) *AdvisoryHandler {
	return &AdvisoryHandler{advisor: advisor, logger: logger}
}

// Register mounts advisory endpoints on the router.
func (h *AdvisoryHandler) Register(r chi.Router) {
	r.Post("/notifications/permission", h.handlePermission)
	r.Post("/suggestions", h.handleSchedule)
	r.Get("/suggestions/audit", h.handleAudit)
}

func (h *AdvisoryHandler) handlePermission(w http.ResponseWriter, r *http.Request) {
	granted := h.advisor.RequestPermission(r.Context())
	httputil.WriteJSON(w, http.StatusOK, PermissionResponse{Granted: granted})
}

// handleSchedule answers 202 whether the suggestion was delivered,
// suppressed by cooldown, or dropped by the notifier.
func (h *AdvisoryHandler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SuggestionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	venue, err := domain.ParseVenueKey(req.Venue)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.advisor.ScheduleSuggestion(ctx, advisory.Suggestion{
		Title:  req.Title,
		Body:   req.Body,
		Venue:  venue,
		Reason: req.Reason,
	})
	w.WriteHeader(http.StatusAccepted)
}

func (h *AdvisoryHandler) handleAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.advisor.AuditLog(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read suggestion audit log",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	httputil.WriteJSON(w, http.StatusOK, AuditResponse{Entries: entries})
}
