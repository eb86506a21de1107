package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderSpotify is the only streaming provider currently supported.
const ProviderSpotify = "spotify"

// Account holds the OAuth token set for a user at a streaming provider.
// There is at most one Account per user per provider. The only writer in
// this service is the gateway's token refresh, which replaces the whole
// token set in a single save.
type Account struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Provider          string    // Provider key, e.g. "spotify".
	ProviderAccountID string    // The provider-side account identifier.
	AccessToken       string    // Bearer token for the provider's Web API.
	RefreshToken      string    // Long-lived token used to mint new access tokens.
	ExpiresAt         time.Time // Absolute expiry of AccessToken.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TokenExpiresWithin reports whether the access token expires within the
// given window from now. Used to decide on a proactive refresh before
// calling the provider.
func (a *Account) TokenExpiresWithin(window time.Duration, now time.Time) bool {
	return !a.ExpiresAt.After(now.Add(window))
}
