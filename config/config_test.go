package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSourceUnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    TokenSource
		expectError bool
	}{
		{name: "header", input: "header", expected: TokenSourceHeader},
		{name: "cookie", input: "cookie", expected: TokenSourceCookie},
		{name: "mixed case", input: "Header", expected: TokenSourceHeader},
		{name: "invalid", input: "query", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TokenSource
			err := ts.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ts)
		})
	}
}

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, TokenSourceHeader, cfg.Auth.TokenSource)
	assert.Equal(t, "access_token", cfg.Auth.CookieName)
	assert.Equal(t, "X-App-User-Id", cfg.Auth.MachineHeader)
	assert.Equal(t, []string{"RS256"}, cfg.Auth.Verifier.AllowedAlgorithms)
	assert.False(t, cfg.Auth.Bypass.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Authority.Timeout)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestAppConfigFromEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SOURCE", "cookie")
	t.Setenv("AUTH_COOKIE_NAME", "gw_token")
	t.Setenv("AUTH_VERIFIER_ALLOWED_ALGS", "RS256,RS384")
	t.Setenv("AUTHORITY_URL", "https://auth.example.com")
	t.Setenv("AUTHORITY_SCOPES", "login projects documents")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, TokenSourceCookie, cfg.Auth.TokenSource)
	assert.Equal(t, "gw_token", cfg.Auth.CookieName)
	assert.Equal(t, []string{"RS256", "RS384"}, cfg.Auth.Verifier.AllowedAlgorithms)
	assert.Equal(t, "https://auth.example.com", cfg.Authority.BaseURL)
	assert.Equal(t, []string{"login", "projects", "documents"}, cfg.Authority.Scopes)
}

func TestAuthoritySanitizeClampsTimeout(t *testing.T) {
	a := AuthorityConfig{Timeout: -1 * time.Second}
	a.Sanitize()
	assert.Equal(t, 30*time.Second, a.Timeout)

	a = AuthorityConfig{Timeout: time.Hour}
	a.Sanitize()
	assert.Equal(t, 2*time.Minute, a.Timeout)
}
