package httpx

import (
	"log/slog"
	"net/http"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Tokens   TokenServiceInterface
	Resolver ResolverInterface
	Logger   *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	principalHandlers := &PrincipalHandlers{}

	if services.Tokens != nil {
		registerTokenRoutes(mux, &TokenHandlers{Svc: services.Tokens, Logger: services.Logger})
	}
	registerPrincipalRoutes(mux, principalHandlers, services.Resolver)
	mux.HandleFunc("GET /healthz", Health)
	mux.HandleFunc("HEAD /healthz", Health)

	return mux
}

func registerTokenRoutes(mux *http.ServeMux, h *TokenHandlers) {
	mux.HandleFunc("POST /api/auth/{client_id}/password", h.Password)
	mux.HandleFunc("POST /api/auth/{client_id}/key", h.APIKey)
	mux.HandleFunc("POST /api/auth/{client_id}/renew", h.Refresh)
}

func registerPrincipalRoutes(mux *http.ServeMux, h *PrincipalHandlers, resolver ResolverInterface) {
	mux.Handle("GET /api/{client_id}/me", RequireAuth(resolver)(http.HandlerFunc(h.Me)))
}
