package config

import (
	"fmt"
	"strings"
)

// TokenSource selects which extraction strategy is bound to the
// authentication entry point. A deployment binds exactly one; the header and
// cookie strategies are never active simultaneously for the same endpoint.
type TokenSource string

const (
	// TokenSourceHeader extracts the credential from the Authorization header.
	TokenSourceHeader TokenSource = "header"
	// TokenSourceCookie extracts the credential from a named cookie.
	TokenSourceCookie TokenSource = "cookie"
)

// UnmarshalText implements encoding.TextUnmarshaler for TokenSource.
func (t *TokenSource) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "header", "cookie":
		*t = TokenSource(v)
		return nil
	default:
		return fmt.Errorf("invalid TokenSource: %q (valid options: header, cookie)", v)
	}
}

// VerifierConfig contains claim verification configuration. The public key
// and algorithm allow-list are loaded once at process start and treated as
// immutable for the process lifetime.
type VerifierConfig struct {
	// PublicKeyPEM is the PEM-encoded public key of the token authority.
	PublicKeyPEM string `env:"PUBLIC_KEY"`

	// AllowedAlgorithms is the signature algorithm allow-list. Fixed to a
	// single asymmetric family by default; tokens never negotiate their own
	// algorithm.
	AllowedAlgorithms []string `env:"ALLOWED_ALGS" envDefault:"RS256" envSeparator:","`

	// Issuer is the expected iss claim. Empty disables issuer checking.
	Issuer string `env:"ISSUER"`
}

// BypassConfig controls the synthetic-identity bypass used only in
// controlled test environments. Disabled by default.
type BypassConfig struct {
	Enabled   bool   `env:"ENABLED"    envDefault:"false"`
	UserID    string `env:"USER_ID"    envDefault:"test-user"`
	FirstName string `env:"FIRST_NAME" envDefault:"Test"`
	LastName  string `env:"LAST_NAME"  envDefault:"User"`
	Email     string `env:"EMAIL"      envDefault:"test@user.com"`
}

// AuthConfig groups all credential-resolution configuration.
type AuthConfig struct {
	// TokenSource determines the bound extraction strategy.
	TokenSource TokenSource `env:"TOKEN_SOURCE" envDefault:"header"`

	// CookieName is the cookie read when TokenSource=cookie.
	CookieName string `env:"COOKIE_NAME" envDefault:"access_token"`

	// MachineHeader carries the trusted machine-to-machine user identifier.
	// It must only be deliverable by an internal, pre-authenticated hop; the
	// resolver does not verify its provenance.
	MachineHeader string `env:"MACHINE_HEADER" envDefault:"X-App-User-Id"`

	// Verifier configuration for signed tokens.
	Verifier VerifierConfig `envPrefix:"VERIFIER_"`

	// Bypass configuration (used only in controlled test environments).
	Bypass BypassConfig `envPrefix:"BYPASS_"`
}
