package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "cardwise/pkg/domain-errors"
	"cardwise/pkg/platform/httputil"
	"cardwise/pkg/requestcontext"
)

// SecretsHandler exposes the secret store.
type SecretsHandler struct {
	secrets SecretStore
	logger  *slog.Logger
}

func NewSecretsHandler(secrets SecretStore, logger *slog.Logger) *SecretsHandler {
	return &SecretsHandler{secrets: secrets, logger: logger}
}

// Register mounts secret endpoints on the router.
func (h *SecretsHandler) Register(r chi.Router) {
	r.Put("/secrets/{name}", h.handleSave)
	r.Get("/secrets/{name}", h.handleRead)
	r.Delete("/secrets/{name}", h.handleDelete)
}

func (h *SecretsHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	name := chi.URLParam(r, "name")

	req, ok := httputil.DecodeAndPrepare[SecretRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.secrets.Save(ctx, name, req.Value); err != nil {
		h.logFailure(r, "save", name, err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SecretsHandler) handleRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	value, err := h.secrets.Read(ctx, name)
	if err != nil {
		h.logFailure(r, "read", name, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SecretResponse{Name: name, Value: value})
}

func (h *SecretsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	if err := h.secrets.Delete(ctx, name); err != nil {
		h.logFailure(r, "delete", name, err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// logFailure skips not-found and validation errors; those are caller mistakes.
func (h *SecretsHandler) logFailure(r *http.Request, op, name string, err error) {
	if dErrors.HasCode(err, dErrors.CodeNotFound) || dErrors.HasCode(err, dErrors.CodeInvalidInput) {
		return
	}
	ctx := r.Context()
	h.logger.ErrorContext(ctx, "secret operation failed",
		"request_id", requestcontext.RequestID(ctx),
		"op", op,
		"secret", name,
		"error", err,
	)
}
