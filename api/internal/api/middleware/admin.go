package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"muebleria/api/internal/core/services"
)

type contextKey string

// AdminContextKey carries the verified admin claims through the request.
const AdminContextKey contextKey = "admin"

// AdminGuard protects the dashboard routes with the env-backed
// operator session token.
type AdminGuard struct {
	auth   *services.AdminAuthService
	logger *slog.Logger
}

func NewAdminGuard(auth *services.AdminAuthService, logger *slog.Logger) *AdminGuard {
	return &AdminGuard{auth: auth, logger: logger}
}

func (g *AdminGuard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearer(r)
		if token == "" {
			http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
			return
		}

		claims, err := g.auth.VerifyToken(token)
		if err != nil {
			g.logger.Warn("rejected admin token", "error", err)
			http.Error(w, `{"error": "Invalid token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
