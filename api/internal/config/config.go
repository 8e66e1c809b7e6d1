// Package config is the single source of truth for environment input.
// No other package may read raw environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Persistence-failure policies for the submission workflow (see services).
const (
	PolicyFail          = "fail"
	PolicyDegradeTempID = "degrade-with-temp-id"
)

// ConfigError reports a missing or malformed required key. It is a
// construction-time failure: the process must not limp along without it.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s (%s)", e.Key, e.Reason)
}

// ServerConfig is the server-only snapshot. It carries privileged
// credentials and must never be serialized toward the browser.
type ServerConfig struct {
	Environment string

	// Hosted data store
	SupabaseURL     string
	SupabaseAnonKey string
	// 🛡️ Bypasses row-level security. Server-side only, by construction.
	SupabaseServiceKey string

	// Email transport
	EmailHost string
	EmailPort int
	EmailUser string
	EmailPass string

	// Optional public-facing extras
	WhatsAppPhone string
	AnalyticsID   string

	// HTTP gateway
	Port           string
	AllowedOrigins []string

	// Workflow policy: PolicyFail or PolicyDegradeTempID
	OnPersistenceFailure string

	// Admin dashboard access (optional; all three or none)
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
}

// AdminEnabled reports whether the admin surface is configured.
func (c *ServerConfig) AdminEnabled() bool {
	return c.AdminEmail != "" && c.AdminPasswordHash != "" && c.JWTSecret != ""
}

// ClientConfig is the browser-safe subset. Everything here may appear
// verbatim in a public asset or an unauthenticated response.
type ClientConfig struct {
	Environment     string `json:"environment"`
	SupabaseURL     string `json:"supabaseUrl"`
	SupabaseAnonKey string `json:"supabaseAnonKey"`
	WhatsAppPhone   string `json:"whatsappPhone"`
	AnalyticsID     string `json:"gaId"`
}

// LoadServer reads and validates the full server snapshot. Any missing
// required key fails immediately with a *ConfigError naming the key;
// optional keys degrade to "" with a warning. One summary line is
// logged, no network calls are made.
func LoadServer() (*ServerConfig, error) {
	_ = godotenv.Load()

	cfg := &ServerConfig{
		Environment: getEnv("NODE_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
	}

	var missing []string
	required := func(key string) string {
		v := os.Getenv(key)
		if strings.TrimSpace(v) == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg.SupabaseURL = required("NEXT_PUBLIC_SUPABASE_URL")
	cfg.SupabaseAnonKey = required("NEXT_PUBLIC_SUPABASE_ANON_KEY")
	cfg.SupabaseServiceKey = required("SUPABASE_SERVICE_KEY")
	cfg.EmailHost = getEnv("EMAIL_HOST", "smtp.gmail.com")
	cfg.EmailUser = required("EMAIL_USER")
	cfg.EmailPass = required("EMAIL_PASS")

	if len(missing) > 0 {
		slog.Error("server configuration incomplete", "missing", missing)
		return nil, &ConfigError{Key: missing[0], Reason: "required key is missing or empty"}
	}

	// A present but non-numeric port is a deployment typo, not a reason
	// to silently fall back to 587.
	port, err := parsePort(os.Getenv("EMAIL_PORT"), 587)
	if err != nil {
		return nil, err
	}
	cfg.EmailPort = port

	cfg.WhatsAppPhone = optional("NEXT_PUBLIC_WHATSAPP_PHONE")
	cfg.AnalyticsID = optional("NEXT_PUBLIC_GA_ID")

	cfg.AllowedOrigins = strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",")

	cfg.OnPersistenceFailure = getEnv("ON_PERSISTENCE_FAILURE", PolicyFail)
	if cfg.OnPersistenceFailure != PolicyFail && cfg.OnPersistenceFailure != PolicyDegradeTempID {
		return nil, &ConfigError{
			Key:    "ON_PERSISTENCE_FAILURE",
			Reason: fmt.Sprintf("must be %q or %q", PolicyFail, PolicyDegradeTempID),
		}
	}

	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	set := 0
	for _, v := range []string{cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret} {
		if v != "" {
			set++
		}
	}
	if set > 0 && set < 3 {
		return nil, &ConfigError{
			Key:    "ADMIN_EMAIL/ADMIN_PASSWORD_HASH/JWT_SECRET",
			Reason: "admin access needs all three keys or none",
		}
	}
	if set == 0 {
		slog.Warn("admin credentials not configured, dashboard routes disabled")
	}

	slog.Info("server configuration loaded",
		"environment", cfg.Environment,
		"email_host", cfg.EmailHost,
		"email_port", cfg.EmailPort,
		"admin_enabled", cfg.AdminEnabled(),
	)
	return cfg, nil
}

// LoadClient reads only the public-prefixed keys. It never fails:
// a missing store URL or anon key is warned about and the data access
// facade degrades instead of the process dying.
func LoadClient() *ClientConfig {
	_ = godotenv.Load()

	cfg := &ClientConfig{
		Environment:     getEnv("NODE_ENV", "development"),
		SupabaseURL:     os.Getenv("NEXT_PUBLIC_SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("NEXT_PUBLIC_SUPABASE_ANON_KEY"),
		WhatsAppPhone:   os.Getenv("NEXT_PUBLIC_WHATSAPP_PHONE"),
		AnalyticsID:     os.Getenv("NEXT_PUBLIC_GA_ID"),
	}

	var missing []string
	if cfg.SupabaseURL == "" {
		missing = append(missing, "NEXT_PUBLIC_SUPABASE_URL")
	}
	if cfg.SupabaseAnonKey == "" {
		missing = append(missing, "NEXT_PUBLIC_SUPABASE_ANON_KEY")
	}
	if len(missing) > 0 {
		slog.Warn("client configuration incomplete, store reads will degrade", "missing", missing)
	} else {
		slog.Info("client configuration loaded", "environment", cfg.Environment)
	}
	return cfg
}

func parsePort(raw string, fallback int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port <= 0 || port > 65535 {
		return 0, &ConfigError{Key: "EMAIL_PORT", Reason: fmt.Sprintf("not a valid port number: %q", raw)}
	}
	return port, nil
}

func optional(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Warn("optional configuration key not set", "key", key)
	}
	return v
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
