package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/clearview/authgate/config"
	"github.com/clearview/authgate/internal/adapters/authority"
	"github.com/clearview/authgate/internal/adapters/extract"
	"github.com/clearview/authgate/internal/adapters/jwtverify"
	"github.com/clearview/authgate/internal/ports"
	"github.com/clearview/authgate/internal/service"
)

// ResolverConfig contains configuration for the resolver service.
type ResolverConfig struct {
	Auth   config.AuthConfig
	Logger *slog.Logger
}

// BuildResolver creates the credential resolution service from configuration:
// the bound extraction strategy, the claims verifier, and the optional
// synthetic-identity bypass.
func BuildResolver(cfg ResolverConfig) (*service.ResolverService, error) {
	verifier, err := jwtverify.NewVerifier(jwtverify.Config{
		PublicKeyPEM:      cfg.Auth.Verifier.PublicKeyPEM,
		AllowedAlgorithms: cfg.Auth.Verifier.AllowedAlgorithms,
		Issuer:            cfg.Auth.Verifier.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("build verifier: %w", err)
	}

	return service.NewResolverService(service.ResolverOptions{
		Strategy:      buildStrategy(cfg.Auth),
		Verifier:      verifier,
		MachineHeader: cfg.Auth.MachineHeader,
		Bypass: service.BypassIdentity{
			Enabled:   cfg.Auth.Bypass.Enabled,
			UserID:    cfg.Auth.Bypass.UserID,
			FirstName: cfg.Auth.Bypass.FirstName,
			LastName:  cfg.Auth.Bypass.LastName,
			Email:     cfg.Auth.Bypass.Email,
		},
		Logger: cfg.Logger,
	}), nil
}

// buildStrategy selects the extraction strategy bound for the deployment.
// Exactly one strategy is active per process.
func buildStrategy(cfg config.AuthConfig) ports.ExtractionStrategy {
	if cfg.TokenSource == config.TokenSourceCookie {
		return &extract.Cookie{Name: cfg.CookieName}
	}
	return &extract.HeaderBearer{}
}

// BuildAuthorityClient creates the external authority client, or returns nil
// when no authority URL is configured (token grant endpoints disabled).
func BuildAuthorityClient(cfg config.AuthorityConfig, logger *slog.Logger) (*service.TokenService, error) {
	if cfg.BaseURL == "" {
		if logger != nil {
			logger.Warn("token grants disabled: authority URL not configured")
		}
		return nil, nil
	}

	client, err := authority.NewClient(authority.Config{
		BaseURL: cfg.BaseURL,
		Scopes:  cfg.Scopes,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build authority client: %w", err)
	}

	return service.NewTokenService(service.TokenOptions{Authority: client}), nil
}
