package handlers

import (
	"context"
	"net/http"
	"time"

	"muebleria/api/internal/core/domain"
)

// HealthHandler verifies that the hosted store answers on the
// restricted handle before declaring the process healthy.
type HealthHandler struct {
	catalog domain.CatalogRepository
}

func NewHealthHandler(catalog domain.CatalogRepository) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	// 🛡️ Tight timeout: a health probe must never hang
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if _, err := h.catalog.CountProducts(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unhealthy: data store unreachable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("healthy"))
}
