package spotify

import (
	"context"

	"fangate/internal/domain/entity"
	"fangate/internal/domain/service"

	"github.com/pkg/errors"
)

// syntheticNotice labels canned data so the client can tell it apart from a
// real listening history.
const syntheticNotice = "Demo mode: synthetic listening data is shown because the Spotify integration is disabled."

// SyntheticProvider substitutes a fixed listening history so the whole flow
// works without provider credentials. It is chosen once at startup and never
// contacts Spotify.
type SyntheticProvider struct{}

// NewSyntheticProvider creates the canned-data gateway.
func NewSyntheticProvider() service.StreamingProvider {
	return &SyntheticProvider{}
}

// FetchSnapshot returns the same canned snapshot regardless of token. The
// data scores well enough to let a demo user reach the quiz.
func (p *SyntheticProvider) FetchSnapshot(_ context.Context, _ string) (*entity.Snapshot, error) {
	bts := entity.Artist{
		ID:          "3Nrfpe0tUJi4K4DXYWgMUX",
		Name:        "BTS",
		ExternalURL: "https://open.spotify.com/artist/3Nrfpe0tUJi4K4DXYWgMUX",
	}
	jungkook := entity.Artist{
		ID:          "5vV3bFXnN6D6N3Nj4xRvaV",
		Name:        "Jung Kook",
		ExternalURL: "https://open.spotify.com/artist/5vV3bFXnN6D6N3Nj4xRvaV",
	}
	agustd := entity.Artist{
		ID:          "0k17h0D3J5VfsdmQ1iZtE9",
		Name:        "Agust D",
		ExternalURL: "https://open.spotify.com/artist/0k17h0D3J5VfsdmQ1iZtE9",
	}

	topTracks := []entity.Track{
		{ID: "syn-track-1", Name: "Dynamite", Artists: []entity.Artist{bts}},
		{ID: "syn-track-2", Name: "Butter", Artists: []entity.Artist{bts}},
		{ID: "syn-track-3", Name: "Seven", Artists: []entity.Artist{jungkook}},
		{ID: "syn-track-4", Name: "Haegeum", Artists: []entity.Artist{agustd}},
	}

	recentlyPlayed := make([]entity.Track, 0, 20)
	for range 5 {
		recentlyPlayed = append(recentlyPlayed, topTracks...)
	}

	return &entity.Snapshot{
		TopArtists:     []entity.Artist{bts, jungkook, agustd},
		TopTracks:      topTracks,
		RecentlyPlayed: recentlyPlayed,
		Synthetic:      true,
		Notice:         syntheticNotice,
	}, nil
}

// RefreshAccessToken always fails. Callers skip the token cycle for
// synthetic gateways, so reaching this means a wiring bug; failing here keeps
// canned tokens from ever being persisted over a user's real ones.
func (p *SyntheticProvider) RefreshAccessToken(_ context.Context, _ string) (*service.TokenRefresh, error) {
	return nil, errors.New("token refresh is not available for canned listening data")
}

// Synthetic marks the gateway as canned.
func (p *SyntheticProvider) Synthetic() bool {
	return true
}
