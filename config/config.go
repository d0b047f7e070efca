// ABOUTME: Environment-driven configuration for the booking backend
// ABOUTME: Collects port, calendar ID, credential path, CORS origins, timeouts
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

const (
	defaultPort        = "3000"
	defaultCalendarID  = "primary"
	defaultHTTPTimeout = 30 * time.Second
)

// Config carries everything the components need. It is built once at
// startup and passed into constructors so tests can substitute their own
// calendars and origins.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// CalendarID is the fixed calendar all operations target.
	CalendarID string

	// CredentialsFile is the service-account credential JSON path.
	CredentialsFile string

	// AllowedOrigins for cross-origin requests.
	AllowedOrigins []string

	// HTTPTimeout bounds each external calendar call.
	HTTPTimeout time.Duration
}

// FromEnv builds a Config from environment variables, falling back to
// defaults where unset.
func FromEnv() *Config {
	cfg := &Config{
		Port:            getenv("PORT", defaultPort),
		CalendarID:      getenv("CALENDAR_ID", defaultCalendarID),
		CredentialsFile: getenv("GOOGLE_CREDENTIALS_FILE", defaultCredentialsFile()),
		AllowedOrigins:  splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		HTTPTimeout:     defaultHTTPTimeout,
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}

	return cfg
}

// defaultCredentialsFile returns the XDG-compliant credential location.
func defaultCredentialsFile() string {
	return filepath.Join(xdg.ConfigHome, "cabana-booking", "service-account.json")
}

// splitOrigins parses a comma-separated origin list. An empty value allows
// any origin.
func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
