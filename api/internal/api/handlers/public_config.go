package handlers

import (
	"net/http"

	"muebleria/api/internal/config"
)

// PublicConfigHandler serves the browser-safe configuration snapshot.
// Only ClientConfig ever reaches this handler: the server snapshot,
// with its credentials, is not representable here by construction.
type PublicConfigHandler struct {
	cfg *config.ClientConfig
}

func NewPublicConfigHandler(cfg *config.ClientConfig) *PublicConfigHandler {
	return &PublicConfigHandler{cfg: cfg}
}

// Get handles GET /api/v1/config
func (h *PublicConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cfg)
}
