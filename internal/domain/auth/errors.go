package auth

import (
	"errors"
	"fmt"
)

// ResolutionErrorKind classifies a credential-resolution failure. The
// resolver switches on the kind; callers never see the underlying cause.
type ResolutionErrorKind string

const (
	// KindMissingCredential means no credential was present in the request.
	KindMissingCredential ResolutionErrorKind = "missing_credential"
	// KindMalformedCredential means a credential was present but not in the
	// expected transport form (e.g. a bare Authorization header).
	KindMalformedCredential ResolutionErrorKind = "malformed_credential"
	// KindMalformedToken means the token is structurally invalid.
	KindMalformedToken ResolutionErrorKind = "malformed_token"
	// KindExpiredToken means the token's expiry is not in the future.
	KindExpiredToken ResolutionErrorKind = "expired_token"
	// KindInvalidClaims means the audience or issuer did not match.
	KindInvalidClaims ResolutionErrorKind = "invalid_claims"
	// KindUnknown covers every other decode/validation failure.
	KindUnknown ResolutionErrorKind = "unknown"
)

// ResolutionError is a classified credential-resolution failure. The cause is
// retained for logging only and must not leak to the original caller.
type ResolutionError struct {
	Kind  ResolutionErrorKind
	cause error
}

// NewResolutionError builds a ResolutionError of the given kind. cause may be
// nil when the classification alone carries the information.
func NewResolutionError(kind ResolutionErrorKind, cause error) *ResolutionError {
	return &ResolutionError{Kind: kind, cause: cause}
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return string(e.Kind)
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *ResolutionError) Unwrap() error { return e.cause }

// KindOf returns the classification of err, or KindUnknown when err is not a
// ResolutionError.
func KindOf(err error) ResolutionErrorKind {
	var re *ResolutionError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// AuthorityError is a failure reported while exchanging credentials with the
// external authority. Status is 0 for transport-level failures and the HTTP
// status echoed from the authority otherwise.
type AuthorityError struct {
	Status  int    `json:"service_status"`
	Message string `json:"service_message"`
}

// Error implements the error interface.
func (e *AuthorityError) Error() string {
	return fmt.Sprintf("authority error (status %d): %s", e.Status, e.Message)
}
