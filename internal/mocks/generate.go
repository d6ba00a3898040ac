// Package mocks provides mock implementations for testing the authgate services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the hexagonal ports. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockClient := mocks.NewMockAuthorityClient(ctrl)
//	mockClient.EXPECT().PasswordGrant(gomock.Any(), gomock.Any()).Return(session, nil)
package mocks

// Generate mocks for the auth ports from internal/ports: ExtractionStrategy,
// ClaimsVerifier, and AuthorityClient.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_ports_mock.go github.com/clearview/authgate/internal/ports ExtractionStrategy,ClaimsVerifier,AuthorityClient
