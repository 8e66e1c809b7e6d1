package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"muebleria/api/internal/core/domain"
	"muebleria/api/internal/core/services"
)

// DashboardProvider assembles the aggregate stats view.
type DashboardProvider interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

// AdminHandler covers operator login and the dashboard aggregates.
type AdminHandler struct {
	auth  *services.AdminAuthService
	stats DashboardProvider
}

func NewAdminHandler(auth *services.AdminAuthService, stats DashboardProvider) *AdminHandler {
	return &AdminHandler{auth: auth, stats: stats}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Credenciales inválidas"})
			return
		}
		HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Dashboard(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
