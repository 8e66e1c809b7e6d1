package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muebleria/api/internal/api/handlers"
	"muebleria/api/internal/api/router"
	"muebleria/api/internal/config"
	"muebleria/api/internal/core/domain"
)

// fakeWorkflow implements handlers.InquirySubmitter.
type fakeWorkflow struct {
	inserted int
}

func (f *fakeWorkflow) Submit(ctx context.Context, req domain.ContactRequest) (string, error) {
	f.inserted++
	return "e2e-inquiry-id", nil
}

// fakeCatalog implements domain.CatalogRepository.
type fakeCatalog struct{}

func (f *fakeCatalog) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	return []domain.Product{}, nil
}
func (f *fakeCatalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return []domain.Category{}, nil
}
func (f *fakeCatalog) CountProducts(ctx context.Context) (int64, error) { return 0, nil }

func newMux(workflow *fakeWorkflow) http.Handler {
	catalog := &fakeCatalog{}
	return router.NewRouter(router.RouterConfig{
		AllowedOrigins: []string{"*"},
		ContactHandler: handlers.NewContactHandler(workflow),
		CatalogHandler: handlers.NewCatalogHandler(catalog),
		ConfigHandler:  handlers.NewPublicConfigHandler(&config.ClientConfig{Environment: "test"}),
		WhatsHandler:   handlers.NewWhatsAppHandler("5491122223333", catalog),
		HealthHandler:  handlers.NewHealthHandler(catalog),
		Logger:         slog.Default(),
	})
}

func TestRouter_ContactEndToEnd(t *testing.T) {
	workflow := &fakeWorkflow{}
	mux := newMux(workflow)

	body := `{"name":"Ana Ruiz","email":"ana@example.com","phone":"+5491122223333","message":"Busco un sofá de 3 cuerpos","product_id":null}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success   bool   `json:"success"`
		InquiryID string `json:"inquiryId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.InquiryID)
	assert.Equal(t, 1, workflow.inserted, "exactly one row per submission")
}

func TestRouter_ContactPreflight(t *testing.T) {
	mux := newMux(&fakeWorkflow{})

	// A browser preflight carries Access-Control-Request-Method; it must
	// pass through the cors layer and hit the 204 contact handler.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://muebleria.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	// Header-less OPTIONS gets the same answer.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://muebleria.example")
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	mux := newMux(&fakeWorkflow{})

	for _, path := range []string{
		"/api/v1/productos",
		"/api/v1/categorias",
		"/api/v1/config",
		"/health",
		"/ping",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestRouter_AdminRoutesAbsentWhenUnconfigured(t *testing.T) {
	mux := newMux(&fakeWorkflow{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
