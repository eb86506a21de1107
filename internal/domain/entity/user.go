// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Users are created by the external
// identity collaborator during the Spotify sign-in flow; this service only
// reads them. CreatedAt doubles as the fandom "account age" proxy for the
// listening score.
type User struct {
	ID          uuid.UUID // The unique identifier for the user.
	SpotifyID   string    // The streaming provider's stable account identifier.
	Email       string    // The user's primary contact email.
	DisplayName string    // The display name reported by the provider.
	ImageURL    string    // Profile image URL, if any.
	CreatedAt   time.Time // When the account was first seen. Used for the account-age bonus.
	UpdatedAt   time.Time
}
