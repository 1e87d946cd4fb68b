package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isandov/storefront-be/internal/services"
)

// HealthHandler serves liveness and store-connectivity diagnostics.
type HealthHandler struct {
	service services.HealthServiceProvider
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(service services.HealthServiceProvider) *HealthHandler {
	return &HealthHandler{service: service}
}

// Root handles GET /, a dependency-free liveness acknowledgment.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("API is running ✅"))
}

// TestDB handles GET /api/test-db, verifying store reachability with a
// trivial round trip independent of business logic.
func (h *HealthHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	now, err := h.service.Now(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Database round trip failed")
		writeStoreError(w, "DB error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"time":    map[string]any{"now": now},
	})
}
