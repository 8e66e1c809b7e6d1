package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"muebleria/api/internal/core/domain"
)

// InquirySubmitter is the workflow contract this handler depends on.
type InquirySubmitter interface {
	Submit(ctx context.Context, req domain.ContactRequest) (string, error)
}

// ContactHandler is the HTTP boundary of the submission workflow.
type ContactHandler struct {
	service InquirySubmitter
}

func NewContactHandler(service InquirySubmitter) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Datos del formulario inválidos"})
		return
	}

	inquiryID, err := h.service.Submit(r.Context(), req)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Consulta enviada exitosamente",
		"inquiryId": inquiryID,
	})
}

// Preflight handles OPTIONS /api/v1/contact, permissive by design:
// the form is meant to be postable from anywhere the site is embedded.
func (h *ContactHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}
