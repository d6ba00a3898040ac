// Package auth contains domain-level types for credential resolution and
// token issuance. It is pure and free of framework/adapter concerns.
package auth

import "time"

// CredentialSource identifies where a raw credential was extracted from.
// Keep string form for easy logging and comparison.
type CredentialSource string

const (
	SourceHeaderBearer  CredentialSource = "header_bearer"
	SourceCookie        CredentialSource = "cookie"
	SourceTrustedHeader CredentialSource = "trusted_header"
)

// Credential is a (raw value, source) pair extracted from a request.
// At most one Credential is extracted per request.
type Credential struct {
	Raw    string
	Source CredentialSource
}

// RequestContext carries the request-scoped inputs of one resolution call as
// named, immutable fields. It replaces ad-hoc attributes attached to the
// transport request.
type RequestContext struct {
	// Token is the raw credential produced by the bound extraction strategy.
	Token string
	// Source is where Token came from.
	Source CredentialSource
	// UserIDHint is the trusted machine identifier header value, if present.
	UserIDHint string
	// ClientID is the routing-supplied audience for this request.
	ClientID string
}

// Principal is the resolved identity attached to a request for downstream
// authorization decisions. Constructed once per inbound request; immutable
// after construction; never persisted.
type Principal struct {
	// SubjectID is the opaque unique identifier of the principal.
	SubjectID string
	FirstName string
	LastName  string
	Email     string
	// IsMachine is true when the principal was resolved via the trusted
	// machine-identifier header without claim verification.
	IsMachine bool
	// RawCredential is the original opaque token that produced this
	// Principal, retained for propagation to downstream collaborators.
	RawCredential string
}

// ClaimSet is the decoded, verified payload of a signed token. A ClaimSet is
// only ever produced after signature, audience, and expiry checks pass.
type ClaimSet struct {
	Subject  string
	Name     string
	Email    string
	Audience string
	Issuer   string
	Expiry   time.Time
}

// SessionUser is the user summary embedded in an authority response.
type SessionUser struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Session is a bearer access token plus metadata issued by the external
// authority. Produced only by the authority client; never mutated after
// construction. JSON tags mirror the authority response so the payload
// passes through to callers losslessly.
type Session struct {
	User         SessionUser `json:"user"`
	TokenType    string      `json:"token_type"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	ExpiresIn    int         `json:"expires_in"`
	Scope        string      `json:"scope"`
}
