package service

import (
	"context"
	"strings"

	domainauth "github.com/clearview/authgate/internal/domain/auth"
	"github.com/clearview/authgate/internal/ports"
)

// TokenOptions groups dependencies for TokenService.
type TokenOptions struct {
	Authority ports.AuthorityClient
}

// TokenService orchestrates token issuance for callers without a token: it
// validates grant fields locally and forwards the grant to the external
// authority. Authority failures pass through as *domainauth.AuthorityError.
type TokenService struct {
	authority ports.AuthorityClient
}

// NewTokenService constructs a new TokenService.
func NewTokenService(opts TokenOptions) *TokenService {
	return &TokenService{authority: opts.Authority}
}

// ValidationError carries field-level validation failures for a grant
// request. The map is rendered directly as the 400 response payload.
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	return "invalid grant fields: " + strings.Join(names, ", ")
}

// fieldErrors accumulates validation messages per field.
type fieldErrors map[string][]string

func (f fieldErrors) requireField(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = append(f[field], "This field is required.")
	}
}

func (f fieldErrors) asError() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// PasswordLoginInput groups parameters for a password grant.
type PasswordLoginInput struct {
	ClientID string
	Email    string
	Password string
}

// PasswordLogin exchanges a username/password pair for a Session.
func (s *TokenService) PasswordLogin(ctx context.Context, in PasswordLoginInput) (domainauth.Session, error) {
	fe := fieldErrors{}
	fe.requireField("email", in.Email)
	fe.requireField("password", in.Password)
	if err := fe.asError(); err != nil {
		return domainauth.Session{}, err
	}

	return s.authority.PasswordGrant(ctx, ports.PasswordGrantInput{
		ClientID: in.ClientID,
		Username: in.Email,
		Password: in.Password,
	})
}

// APIKeyLoginInput groups parameters for an api-key grant.
type APIKeyLoginInput struct {
	ClientID  string
	APIKey    string
	APISecret string
}

// APIKeyLogin exchanges an API key/secret pair for a Session.
func (s *TokenService) APIKeyLogin(ctx context.Context, in APIKeyLoginInput) (domainauth.Session, error) {
	fe := fieldErrors{}
	fe.requireField("api_key", in.APIKey)
	fe.requireField("api_secret", in.APISecret)
	if err := fe.asError(); err != nil {
		return domainauth.Session{}, err
	}

	return s.authority.APIKeyGrant(ctx, ports.APIKeyGrantInput{
		ClientID:  in.ClientID,
		APIKey:    in.APIKey,
		APISecret: in.APISecret,
	})
}

// RefreshLoginInput groups parameters for a refresh-token grant.
// ProviderUUID is optional and passes through when present.
type RefreshLoginInput struct {
	ClientID     string
	ProviderUUID string
	RefreshToken string
}

// RefreshLogin exchanges a refresh token for a new Session.
func (s *TokenService) RefreshLogin(ctx context.Context, in RefreshLoginInput) (domainauth.Session, error) {
	fe := fieldErrors{}
	fe.requireField("refresh_token", in.RefreshToken)
	if err := fe.asError(); err != nil {
		return domainauth.Session{}, err
	}

	return s.authority.RefreshGrant(ctx, ports.RefreshGrantInput{
		ClientID:     in.ClientID,
		ProviderUUID: in.ProviderUUID,
		RefreshToken: in.RefreshToken,
	})
}
