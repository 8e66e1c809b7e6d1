package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"muebleria/api/internal/core/domain"
	"muebleria/api/internal/whatsapp"
)

// WhatsAppHandler composes outbound chat links server-side from the
// configured business phone, optionally enriched with a product.
type WhatsAppHandler struct {
	phone   string
	catalog domain.CatalogRepository
}

func NewWhatsAppHandler(phone string, catalog domain.CatalogRepository) *WhatsAppHandler {
	return &WhatsAppHandler{phone: phone, catalog: catalog}
}

// Link handles GET /api/v1/whatsapp-link?message=...&product_id=...
func (h *WhatsAppHandler) Link(w http.ResponseWriter, r *http.Request) {
	if h.phone == "" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "WhatsApp no está configurado"})
		return
	}

	msg := r.URL.Query().Get("message")

	var product *domain.Product
	if productID := r.URL.Query().Get("product_id"); productID != "" {
		if _, err := uuid.Parse(productID); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Identificador de producto inválido"})
			return
		}
		p, err := h.catalog.GetProduct(r.Context(), productID)
		if err != nil {
			// An unknown product still yields a usable plain link.
			if !errors.Is(err, domain.ErrNotFound) {
				HandleError(w, r, err)
				return
			}
		} else {
			product = p
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url": whatsapp.BuildLink(h.phone, msg, product),
	})
}
