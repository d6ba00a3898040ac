package httpx

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearview/authgate/internal/adapters/extract"
	"github.com/clearview/authgate/internal/adapters/jwtverify"
	"github.com/clearview/authgate/internal/service"
)

// newAuthRouter wires a full router backed by a real verifier so requests
// exercise extraction, verification, and principal resolution end to end.
func newAuthRouter(t *testing.T) (http.Handler, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	verifier, err := jwtverify.NewVerifier(jwtverify.Config{PublicKeyPEM: string(pemBytes)})
	require.NoError(t, err)

	resolver := service.NewResolverService(service.ResolverOptions{
		Strategy:      &extract.HeaderBearer{},
		Verifier:      verifier,
		MachineHeader: "X-App-User-Id",
		Logger:        slog.New(slog.DiscardHandler),
	})

	router := NewRouter(RouterServices{
		Tokens:   &mockTokenService{},
		Resolver: resolver,
		Logger:   slog.New(slog.DiscardHandler),
	})
	return router, key
}

func mintBearer(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestMeWithBearerToken(t *testing.T) {
	router, key := newAuthRouter(t)

	token := mintBearer(t, key, jwt.MapClaims{
		"sub":   "user-42",
		"email": "  ada@example.com ",
		"name":  "Lovelace",
		"aud":   "acme",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/acme/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-42", body["subject_id"])
	assert.Equal(t, "ada@example.com", body["email"])
	assert.Equal(t, "Lovelace", body["last_name"])
	assert.Equal(t, false, body["is_machine"])
}

func TestMeWithMachineHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/acme/me", nil)
	req.Header.Set("X-App-User-Id", "u-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u-123", body["subject_id"])
	assert.Equal(t, "M2M", body["first_name"])
	assert.Equal(t, "User", body["last_name"])
	assert.Equal(t, true, body["is_machine"])
}

func TestMeRejectsAudienceMismatch(t *testing.T) {
	router, key := newAuthRouter(t)

	token := mintBearer(t, key, jwt.MapClaims{
		"sub":   "user-42",
		"email": "ada@example.com",
		"aud":   "other-app",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/acme/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeRejectsExpiredToken(t *testing.T) {
	router, key := newAuthRouter(t)

	token := mintBearer(t, key, jwt.MapClaims{
		"sub":   "user-42",
		"email": "ada@example.com",
		"aud":   "acme",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/acme/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeRejectsMissingCredential(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/acme/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
