package service

import (
	"context"
	"errors"
	"time"

	"fangate/internal/domain/entity"
)

// ErrProviderAuth is returned when the provider rejects the access token.
// Callers refresh once and retry; a second rejection means the provider
// session is gone for good and the user has to reconnect.
var ErrProviderAuth = errors.New("provider rejected the access token")

// TokenRefresh is the result of exchanging a refresh token at the provider.
// Providers may rotate the refresh token; when they do not, RefreshToken
// carries the old one.
type TokenRefresh struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// StreamingProvider defines the gateway to a user's listening history at a
// streaming service. Implementations hide whether the data is real or canned.
type StreamingProvider interface {
	// FetchSnapshot reads the user's current listening snapshot using the
	// given access token.
	FetchSnapshot(ctx context.Context, accessToken string) (*entity.Snapshot, error)

	// RefreshAccessToken exchanges a refresh token for a new token set.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenRefresh, error)

	// Synthetic reports whether the gateway serves canned data without
	// contacting the provider. Synthetic gateways ignore access tokens, so
	// callers must keep them out of the token refresh cycle.
	Synthetic() bool
}
