package entity

// Artist is one artist item from the streaming provider.
type Artist struct {
	ID          string
	Name        string
	ImageURL    string
	ExternalURL string
}

// Track is one track item from the streaming provider, with the artists
// credited on it.
type Track struct {
	ID          string
	Name        string
	Artists     []Artist
	ImageURL    string
	ExternalURL string
}

// Snapshot is a point-in-time read of a user's listening history: top
// artists, top tracks (medium term) and the last plays, each capped at 50
// items by the provider. Synthetic snapshots are substituted when the
// provider integration is disabled; Notice carries the user-visible label
// so callers can tell real data from canned data.
type Snapshot struct {
	TopArtists     []Artist
	TopTracks      []Track
	RecentlyPlayed []Track
	Synthetic      bool
	Notice         string
}
