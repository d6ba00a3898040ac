// Package jwtverify implements claim verification for compact signed tokens
// against a statically configured public key. The algorithm allow-list is
// fixed at construction; tokens never negotiate their own algorithm.
package jwtverify

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/clearview/authgate/internal/domain/auth"
	"github.com/clearview/authgate/internal/ports"
)

var _ ports.ClaimsVerifier = (*Verifier)(nil)

// Config controls verification behavior.
type Config struct {
	// PublicKeyPEM is the PEM-encoded RSA public key of the token authority.
	PublicKeyPEM string
	// AllowedAlgorithms is the signature algorithm allow-list; defaults to
	// RS256 only.
	AllowedAlgorithms []string
	// Issuer is the expected iss claim; empty disables issuer checking.
	Issuer string
}

// Verifier validates signed tokens and produces trusted ClaimSets. It holds
// no mutable state after construction and is safe for concurrent use.
type Verifier struct {
	publicKey   *rsa.PublicKey
	allowedAlgs []string
	issuer      string
	keyfunc     jwt.Keyfunc
}

// NewVerifier parses the configured public key and constructs a Verifier.
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.PublicKeyPEM == "" {
		return nil, errors.New("public key is required")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	algs := cfg.AllowedAlgorithms
	if len(algs) == 0 {
		algs = []string{"RS256"}
	}

	v := &Verifier{
		publicKey:   key,
		allowedAlgs: algs,
		issuer:      cfg.Issuer,
	}
	v.keyfunc = func(t *jwt.Token) (any, error) {
		alg := t.Method.Alg()
		for _, a := range v.allowedAlgs {
			if alg == a {
				return v.publicKey, nil
			}
		}
		return nil, fmt.Errorf("disallowed alg: %s", alg)
	}
	return v, nil
}

// Verify validates rawToken against the configured key, the expected
// audience, and the configured issuer. Failures are classified
// ResolutionErrors; the underlying library error is retained as the cause
// for logging only. A ClaimSet is returned only after every check passes.
func (v *Verifier) Verify(_ context.Context, rawToken, expectedAudience string) (domainauth.ClaimSet, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(v.allowedAlgs),
		jwt.WithExpirationRequired(),
		jwt.WithAudience(expectedAudience),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	parser := jwt.NewParser(opts...)

	parsed, err := parser.Parse(rawToken, v.keyfunc)
	if err != nil {
		return domainauth.ClaimSet{}, domainauth.NewResolutionError(classify(err), err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domainauth.ClaimSet{}, domainauth.NewResolutionError(
			domainauth.KindUnknown, errors.New("unexpected claims type"))
	}
	return buildClaimSet(claims)
}

// classify maps library validation errors onto the resolution taxonomy.
// Expiry wins over claim mismatches so an expired token is never reported as
// anything else.
func classify(err error) domainauth.ResolutionErrorKind {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainauth.KindMalformedToken
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainauth.KindExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return domainauth.KindInvalidClaims
	default:
		return domainauth.KindUnknown
	}
}

// buildClaimSet maps verified claims into the domain shape: email trimmed
// and required, name defaulting to empty string.
func buildClaimSet(claims jwt.MapClaims) (domainauth.ClaimSet, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domainauth.ClaimSet{}, domainauth.NewResolutionError(
			domainauth.KindUnknown, errors.New("missing sub claim"))
	}

	email, _ := claims["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return domainauth.ClaimSet{}, domainauth.NewResolutionError(
			domainauth.KindUnknown, errors.New("missing email claim"))
	}

	name, _ := claims["name"].(string)

	var audience string
	if aud, audErr := claims.GetAudience(); audErr == nil && len(aud) > 0 {
		audience = aud[0]
	}
	issuer, _ := claims.GetIssuer()

	var expiry time.Time
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		expiry = exp.Time
	}

	return domainauth.ClaimSet{
		Subject:  sub,
		Name:     name,
		Email:    email,
		Audience: audience,
		Issuer:   issuer,
		Expiry:   expiry,
	}, nil
}
