package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	domainauth "github.com/clearview/authgate/internal/domain/auth"
	"github.com/clearview/authgate/internal/ports"
)

// BypassIdentity is the fixed synthetic identity returned when the resolver
// runs in test-bypass mode. Disabled by default; must never be enabled in
// production configuration.
type BypassIdentity struct {
	Enabled   bool
	UserID    string
	FirstName string
	LastName  string
	Email     string
}

// ResolverOptions groups dependencies for ResolverService.
type ResolverOptions struct {
	Strategy ports.ExtractionStrategy
	Verifier ports.ClaimsVerifier
	// MachineHeader is the trusted machine-identifier header name.
	MachineHeader string
	Bypass        BypassIdentity
	Logger        *slog.Logger
}

// ResolverService orchestrates credential extraction and claim verification
// into a Principal. It holds no mutable state across calls; each resolution
// is a single-attempt, side-effect-free computation besides logging.
type ResolverService struct {
	strategy      ports.ExtractionStrategy
	verifier      ports.ClaimsVerifier
	machineHeader string
	bypass        BypassIdentity
	logger        *slog.Logger
}

// NewResolverService constructs a new ResolverService.
func NewResolverService(opts ResolverOptions) *ResolverService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	machineHeader := opts.MachineHeader
	if machineHeader == "" {
		machineHeader = "X-App-User-Id"
	}
	return &ResolverService{
		strategy:      opts.Strategy,
		verifier:      opts.Verifier,
		machineHeader: machineHeader,
		bypass:        opts.Bypass,
		logger:        logger,
	}
}

// Authenticate resolves the request's credentials into a Principal. The
// second return value is false when no usable credential is present; every
// failure path is logged and collapsed into that single unauthenticated
// outcome, never an error.
//
// The trusted machine-identifier path wins over claim verification. Claim
// verification is only attempted when no machine identifier is present.
func (s *ResolverService) Authenticate(ctx context.Context, r *http.Request, clientID string) (*domainauth.Principal, bool) {
	if s.bypass.Enabled {
		return &domainauth.Principal{
			SubjectID:     s.bypass.UserID,
			FirstName:     s.bypass.FirstName,
			LastName:      s.bypass.LastName,
			Email:         s.bypass.Email,
			RawCredential: uuid.NewString(),
		}, true
	}

	cred, extractErr := s.strategy.Extract(r)

	rc := domainauth.RequestContext{
		Token:      cred.Raw,
		Source:     cred.Source,
		UserIDHint: r.Header.Get(s.machineHeader),
		ClientID:   clientID,
	}

	// The machine path is absolute: it wins even when the bound strategy
	// found no token or the token would fail verification.
	if rc.UserIDHint != "" {
		return machinePrincipal(rc), true
	}

	if extractErr != nil {
		s.logExtractionFailure(ctx, extractErr)
		return nil, false
	}

	return s.resolveFromClaims(ctx, rc)
}

// resolveFromClaims verifies the extracted token and builds a human
// Principal from the resulting claim set.
func (s *ResolverService) resolveFromClaims(ctx context.Context, rc domainauth.RequestContext) (*domainauth.Principal, bool) {
	if rc.ClientID == "" {
		s.logger.ErrorContext(ctx, "unable to get client id")
		return nil, false
	}

	claims, err := s.verifier.Verify(ctx, rc.Token, rc.ClientID)
	if err != nil {
		s.logVerificationFailure(ctx, err)
		return nil, false
	}

	return &domainauth.Principal{
		SubjectID:     claims.Subject,
		LastName:      claims.Name,
		Email:         claims.Email,
		RawCredential: rc.Token,
	}, true
}

// machinePrincipal builds a machine Principal from the trusted identifier.
// No claim verification is performed; the deployment guarantees the header
// only reaches the resolver via an internal, pre-authenticated hop.
func machinePrincipal(rc domainauth.RequestContext) *domainauth.Principal {
	return &domainauth.Principal{
		SubjectID:     rc.UserIDHint,
		FirstName:     "M2M",
		LastName:      "User",
		IsMachine:     true,
		RawCredential: rc.Token,
	}
}

func (s *ResolverService) logExtractionFailure(ctx context.Context, err error) {
	switch domainauth.KindOf(err) {
	case domainauth.KindMissingCredential:
		s.logger.ErrorContext(ctx, "authorization credential not found")
	case domainauth.KindMalformedCredential:
		s.logger.ErrorContext(ctx, "malformed authentication header")
	default:
		s.logger.ErrorContext(ctx, "credential extraction failed", "error", err)
	}
}

func (s *ResolverService) logVerificationFailure(ctx context.Context, err error) {
	switch domainauth.KindOf(err) {
	case domainauth.KindExpiredToken:
		s.logger.ErrorContext(ctx, "token expired")
	case domainauth.KindInvalidClaims:
		s.logger.ErrorContext(ctx, "incorrect claims, please check the audience and issuer")
	case domainauth.KindMalformedToken:
		s.logger.ErrorContext(ctx, "malformed token")
	default:
		s.logger.ErrorContext(ctx, "unable to parse authentication", "error", err)
	}
}
