package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"muebleria/api/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// HandleError maps domain failures to HTTP semantics. Validation is the
// caller's fault (400, with the full field list); store failures are
// ours (500, generic body — the real error is logged, never leaked).
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Datos del formulario inválidos",
			"fields": ve.Violations,
		})
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "No encontrado"})
		return
	}

	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		slog.Error("store failure", "code", pe.Code, "message", pe.Message, "hint", pe.Hint, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error al guardar la consulta"})
		return
	}

	// 🛡️ Generic fallback: log internally, say nothing useful outward.
	slog.Error("unhandled error", "error", err, "path", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno del servidor"})
}
