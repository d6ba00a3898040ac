// Package extract provides the transport-level credential extraction
// strategies. A deployment binds exactly one strategy per authentication
// entry point; the header and cookie strategies are never combined.
package extract

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/clearview/authgate/internal/domain/auth"
	"github.com/clearview/authgate/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.ExtractionStrategy = (*HeaderBearer)(nil)
	_ ports.ExtractionStrategy = (*Cookie)(nil)
)

// HeaderBearer extracts the credential from an Authorization-style header of
// the form "<scheme> <token>".
type HeaderBearer struct {
	// Header is the header name; defaults to "Authorization" when empty.
	Header string
}

func (s *HeaderBearer) headerName() string {
	if s.Header != "" {
		return s.Header
	}
	return "Authorization"
}

// Extract returns the token portion of the header. An absent header is
// classified KindMissingCredential; anything other than exactly a
// scheme+token pair is KindMalformedCredential.
func (s *HeaderBearer) Extract(r *http.Request) (domainauth.Credential, error) {
	raw := r.Header.Get(s.headerName())
	if raw == "" {
		return domainauth.Credential{}, domainauth.NewResolutionError(
			domainauth.KindMissingCredential, errors.New("authorization header not found"))
	}

	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return domainauth.Credential{}, domainauth.NewResolutionError(
			domainauth.KindMalformedCredential, errors.New("malformed authentication header"))
	}

	return domainauth.Credential{
		Raw:    fields[1],
		Source: domainauth.SourceHeaderBearer,
	}, nil
}

// Cookie extracts the credential from a named cookie holding a
// percent-encoded, quote-wrapped token.
type Cookie struct {
	// Name is the cookie name; defaults to "access_token" when empty.
	Name string
}

func (s *Cookie) cookieName() string {
	if s.Name != "" {
		return s.Name
	}
	return "access_token"
}

// Extract decodes the cookie value: percent-decoding first, then stripping
// one leading and one trailing literal quote character.
func (s *Cookie) Extract(r *http.Request) (domainauth.Credential, error) {
	cookie, err := r.Cookie(s.cookieName())
	if err != nil {
		return domainauth.Credential{}, domainauth.NewResolutionError(
			domainauth.KindMissingCredential, errors.New("authentication cookie not found"))
	}

	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return domainauth.Credential{}, domainauth.NewResolutionError(
			domainauth.KindMalformedCredential, err)
	}
	decoded = strings.TrimPrefix(decoded, `"`)
	decoded = strings.TrimSuffix(decoded, `"`)

	return domainauth.Credential{
		Raw:    decoded,
		Source: domainauth.SourceCookie,
	}, nil
}
