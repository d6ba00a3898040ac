package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/clearview/authgate/internal/domain/auth"
	"github.com/clearview/authgate/internal/service"
)

// mockTokenService is a test double for service.TokenService.
type mockTokenService struct {
	passwordFunc func(ctx context.Context, in service.PasswordLoginInput) (domainauth.Session, error)
	apiKeyFunc   func(ctx context.Context, in service.APIKeyLoginInput) (domainauth.Session, error)
	refreshFunc  func(ctx context.Context, in service.RefreshLoginInput) (domainauth.Session, error)
}

func (m *mockTokenService) PasswordLogin(
	ctx context.Context,
	in service.PasswordLoginInput,
) (domainauth.Session, error) {
	if m.passwordFunc != nil {
		return m.passwordFunc(ctx, in)
	}
	return domainauth.Session{}, nil
}

func (m *mockTokenService) APIKeyLogin(
	ctx context.Context,
	in service.APIKeyLoginInput,
) (domainauth.Session, error) {
	if m.apiKeyFunc != nil {
		return m.apiKeyFunc(ctx, in)
	}
	return domainauth.Session{}, nil
}

func (m *mockTokenService) RefreshLogin(
	ctx context.Context,
	in service.RefreshLoginInput,
) (domainauth.Session, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, in)
	}
	return domainauth.Session{}, nil
}

func testSession() domainauth.Session {
	return domainauth.Session{
		User: domainauth.SessionUser{
			UUID:      "8f2c1f9e-53cc-4c5f-a5a6-9f0f8f2d7a10",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
		TokenType:    "Bearer",
		AccessToken:  "acc.token.value",
		RefreshToken: "ref.token.value",
		ExpiresIn:    3600,
		Scope:        "login",
	}
}

func newTokenMux(svc TokenServiceInterface) *http.ServeMux {
	mux := http.NewServeMux()
	registerTokenRoutes(mux, &TokenHandlers{Svc: svc, Logger: slog.New(slog.DiscardHandler)})
	return mux
}

func TestPasswordHandlerSuccess(t *testing.T) {
	var got service.PasswordLoginInput
	svc := &mockTokenService{
		passwordFunc: func(_ context.Context, in service.PasswordLoginInput) (domainauth.Session, error) {
			got = in
			return testSession(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/acme/password",
		strings.NewReader(`{"email":"ada@example.com","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	newTokenMux(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acme", got.ClientID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "hunter2", got.Password)

	var sess domainauth.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, testSession(), sess)
}

func TestAPIKeyHandlerSuccess(t *testing.T) {
	var got service.APIKeyLoginInput
	svc := &mockTokenService{
		apiKeyFunc: func(_ context.Context, in service.APIKeyLoginInput) (domainauth.Session, error) {
			got = in
			return testSession(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/acme/key",
		strings.NewReader(`{"api_key":"k-1","api_secret":"s-1"}`))
	rec := httptest.NewRecorder()
	newTokenMux(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acme", got.ClientID)
	assert.Equal(t, "k-1", got.APIKey)
	assert.Equal(t, "s-1", got.APISecret)
}

func TestRefreshHandlerForwardsProviderUUID(t *testing.T) {
	var got service.RefreshLoginInput
	svc := &mockTokenService{
		refreshFunc: func(_ context.Context, in service.RefreshLoginInput) (domainauth.Session, error) {
			got = in
			return testSession(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/acme/renew",
		strings.NewReader(`{"refresh_token":"ref.token.value","provider_uuid":"prov-9"}`))
	rec := httptest.NewRecorder()
	newTokenMux(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acme", got.ClientID)
	assert.Equal(t, "ref.token.value", got.RefreshToken)
	assert.Equal(t, "prov-9", got.ProviderUUID)
}

func TestPasswordHandlerValidationError(t *testing.T) {
	svc := &mockTokenService{
		passwordFunc: func(_ context.Context, _ service.PasswordLoginInput) (domainauth.Session, error) {
			return domainauth.Session{}, &service.ValidationError{
				Fields: map[string][]string{
					"email":    {"This field is required."},
					"password": {"This field is required."},
				},
			}
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/acme/password",
		strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	newTokenMux(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Equal(t, []string{"This field is required."}, fields["email"])
	assert.Equal(t, []string{"This field is required."}, fields["password"])
}

func TestPasswordHandlerAuthorityError(t *testing.T) {
	svc := &mockTokenService{
		passwordFunc: func(_ context.Context, _ service.PasswordLoginInput) (domainauth.Session, error) {
			return domainauth.Session{}, &domainauth.AuthorityError{
				Status:  401,
				Message: "Authentication failed with code 401: invalid_grant",
			}
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/acme/password",
		strings.NewReader(`{"email":"ada@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	newTokenMux(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(401), body["service_status"])
	assert.Equal(t, "Authentication failed with code 401: invalid_grant", body["service_message"])
}

func TestPasswordHandlerUnexpectedError(t *testing.T) {
	svc := &mockTokenService{
		passwordFunc: func(_ context.Context, _ service.PasswordLoginInput) (domainauth.Session, error) {
			return domainauth.Session{}, errors.New("boom")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/acme/password",
		strings.NewReader(`{"email":"a@b.c","password":"p"}`))
	rec := httptest.NewRecorder()
	newTokenMux(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "grant_failed", body["error"])
}

func TestPasswordHandlerInvalidJSON(t *testing.T) {
	svc := &mockTokenService{}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/acme/password",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	newTokenMux(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_json", body["error"])
}
