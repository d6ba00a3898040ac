package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/clearview/authgate/internal/domain/auth"
	"github.com/clearview/authgate/internal/service"
)

// TokenServiceInterface defines the interface for token issuance operations.
type TokenServiceInterface interface {
	PasswordLogin(ctx context.Context, in service.PasswordLoginInput) (domainauth.Session, error)
	APIKeyLogin(ctx context.Context, in service.APIKeyLoginInput) (domainauth.Session, error)
	RefreshLogin(ctx context.Context, in service.RefreshLoginInput) (domainauth.Session, error)
}

// TokenHandlers provides HTTP handlers for the token grant endpoints.
type TokenHandlers struct {
	Svc    TokenServiceInterface
	Logger *slog.Logger
}

func (h *TokenHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// passwordRequest is the body of a password grant request.
type passwordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Password handles the password grant endpoint.
// POST /api/auth/{client_id}/password.
func (h *TokenHandlers) Password(w http.ResponseWriter, r *http.Request) {
	var body passwordRequest
	if !DecodeJSON(w, r, &body) {
		return
	}

	session, err := h.Svc.PasswordLogin(r.Context(), service.PasswordLoginInput{
		ClientID: r.PathValue("client_id"),
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.writeGrantError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, session)
}

// apiKeyRequest is the body of an api-key grant request.
type apiKeyRequest struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

// APIKey handles the api-key grant endpoint.
// POST /api/auth/{client_id}/key.
func (h *TokenHandlers) APIKey(w http.ResponseWriter, r *http.Request) {
	var body apiKeyRequest
	if !DecodeJSON(w, r, &body) {
		return
	}

	session, err := h.Svc.APIKeyLogin(r.Context(), service.APIKeyLoginInput{
		ClientID:  r.PathValue("client_id"),
		APIKey:    body.APIKey,
		APISecret: body.APISecret,
	})
	if err != nil {
		h.writeGrantError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, session)
}

// refreshRequest is the body of a refresh-token grant request.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
	ProviderUUID string `json:"provider_uuid"`
}

// Refresh handles the refresh grant endpoint.
// POST /api/auth/{client_id}/renew.
func (h *TokenHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if !DecodeJSON(w, r, &body) {
		return
	}

	session, err := h.Svc.RefreshLogin(r.Context(), service.RefreshLoginInput{
		ClientID:     r.PathValue("client_id"),
		ProviderUUID: body.ProviderUUID,
		RefreshToken: body.RefreshToken,
	})
	if err != nil {
		h.writeGrantError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, session)
}

// writeGrantError renders the uniform failure shapes of the grant endpoints:
// field-level validation failures as a 400 with the per-field message map, and
// authority failures as a 503 echoing the authority's status and message.
func (h *TokenHandlers) writeGrantError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		WriteJSON(w, http.StatusBadRequest, ve.Fields)
		return
	}

	var authErr *domainauth.AuthorityError
	if errors.As(err, &authErr) {
		h.logger().ErrorContext(r.Context(), "authority grant failed",
			"status", authErr.Status, "message", authErr.Message)
		WriteJSON(w, http.StatusServiceUnavailable, authErr)
		return
	}

	WriteError(w, ErrorParams{
		Code:    http.StatusInternalServerError,
		ErrCode: "grant_failed",
		Err:     err,
	})
}
