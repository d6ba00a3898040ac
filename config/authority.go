package config

import "time"

// AuthorityConfig contains configuration for the external authorization
// server that issues sessions for password, api-key, and refresh grants.
type AuthorityConfig struct {
	// BaseURL is the authority's base URL (e.g., "https://auth.example.com").
	BaseURL string `env:"URL"`

	// Scopes is the set of requested capabilities, space-joined on the wire.
	Scopes []string `env:"SCOPES" envDefault:"login" envSeparator:" "`

	// Timeout bounds each grant round-trip. An unbounded call risks
	// exhausting caller-side concurrency under authority slowness.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to authority configuration values.
func (a *AuthorityConfig) Sanitize() {
	if a.Timeout <= 0 {
		a.Timeout = 30 * time.Second
	}
	if a.Timeout > 2*time.Minute {
		a.Timeout = 2 * time.Minute
	}
}
