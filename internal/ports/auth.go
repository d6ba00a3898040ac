// Package ports defines interfaces (hexagonal ports) for credential
// resolution and token issuance. Implementations live in internal/adapters;
// orchestration in internal/service.
package ports

import (
	"context"
	"net/http"

	domainauth "github.com/clearview/authgate/internal/domain/auth"
)

// ExtractionStrategy extracts zero or one raw credential from a request's
// transport-level fields. A deployment binds exactly one strategy per
// authentication entry point. Failures are classified ResolutionErrors
// (KindMissingCredential, KindMalformedCredential).
type ExtractionStrategy interface {
	Extract(r *http.Request) (domainauth.Credential, error)
}

// ClaimsVerifier validates a compact signed token against a known public key
// and claim constraints, producing a trusted claim set or a classified
// ResolutionError.
type ClaimsVerifier interface {
	Verify(ctx context.Context, rawToken, expectedAudience string) (domainauth.ClaimSet, error)
}

// PasswordGrantInput groups parameters for a password grant.
type PasswordGrantInput struct {
	ClientID string
	Username string
	Password string
}

// APIKeyGrantInput groups parameters for an api-key grant.
type APIKeyGrantInput struct {
	ClientID  string
	APIKey    string
	APISecret string
}

// RefreshGrantInput groups parameters for a refresh-token grant.
type RefreshGrantInput struct {
	ClientID     string
	ProviderUUID string
	RefreshToken string
}

// AuthorityClient exchanges credentials for a Session against the external
// authorization server. Every failure is surfaced as an
// *domainauth.AuthorityError; calls are single round-trips with no retry.
type AuthorityClient interface {
	PasswordGrant(ctx context.Context, in PasswordGrantInput) (domainauth.Session, error)
	APIKeyGrant(ctx context.Context, in APIKeyGrantInput) (domainauth.Session, error)
	RefreshGrant(ctx context.Context, in RefreshGrantInput) (domainauth.Session, error)
}
