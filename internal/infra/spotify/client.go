// Package spotify implements the streaming provider gateway against the
// Spotify Web API, plus a synthetic stand-in used when the integration is
// disabled.
package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"fangate/config"
	"fangate/internal/domain/entity"
	"fangate/internal/domain/service"
)

const (
	spotifyAPIBaseURL = "https://api.spotify.com"
	spotifyTokenURL   = "https://accounts.spotify.com/api/token"

	topArtistsPath     = "/v1/me/top/artists?limit=50&time_range=medium_term"
	topTracksPath      = "/v1/me/top/tracks?limit=50&time_range=medium_term"
	recentlyPlayedPath = "/v1/me/player/recently-played?limit=50"

	requestTimeout = 10 * time.Second
)

// Client talks to the Spotify Web API on behalf of a linked account.
type Client struct {
	clientID     string
	clientSecret string
	apiBaseURL   string
	tokenURL     string
	httpClient   *http.Client
}

// NewClient creates the real Spotify gateway.
func NewClient(cfg *config.Config) service.StreamingProvider {
	return &Client{
		clientID:     cfg.Spotify.ClientID,
		clientSecret: cfg.Spotify.ClientSecret,
		apiBaseURL:   spotifyAPIBaseURL,
		tokenURL:     spotifyTokenURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
	}
}

// NewStreamingProvider selects the gateway implementation once at startup.
// With the integration disabled it returns the synthetic provider, which
// never contacts Spotify.
func NewStreamingProvider(cfg *config.Config) service.StreamingProvider {
	if cfg.Spotify == nil || !cfg.Spotify.Enabled {
		return NewSyntheticProvider()
	}

	return NewClient(cfg)
}

// FetchSnapshot reads the three listening history endpoints concurrently and
// assembles them into one snapshot. A 401 from any endpoint surfaces as
// service.ErrProviderAuth so the caller can refresh and retry.
func (c *Client) FetchSnapshot(ctx context.Context, accessToken string) (*entity.Snapshot, error) {
	snapshot := &entity.Snapshot{}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var payload artistPage
		if err := c.getJSON(groupCtx, topArtistsPath, accessToken, &payload); err != nil {
			return errors.Wrap(err, "fetch top artists")
		}
		snapshot.TopArtists = payload.artists()

		return nil
	})

	group.Go(func() error {
		var payload trackPage
		if err := c.getJSON(groupCtx, topTracksPath, accessToken, &payload); err != nil {
			return errors.Wrap(err, "fetch top tracks")
		}
		snapshot.TopTracks = payload.tracks()

		return nil
	})

	group.Go(func() error {
		var payload playHistoryPage
		if err := c.getJSON(groupCtx, recentlyPlayedPath, accessToken, &payload); err != nil {
			return errors.Wrap(err, "fetch recently played")
		}
		snapshot.RecentlyPlayed = payload.tracks()

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// RefreshAccessToken exchanges a refresh token at the accounts service. When
// Spotify does not rotate the refresh token, the old one is carried over.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*service.TokenRefresh, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token refresh request")
	}

	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh access token")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		// Spotify answers 400 invalid_grant for revoked refresh tokens.
		return nil, errors.Wrap(service.ErrProviderAuth, "refresh token rejected")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("token refresh failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode token refresh response")
	}

	refreshed := &service.TokenRefresh{
		AccessToken:  tokenResponse.AccessToken,
		RefreshToken: tokenResponse.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second),
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = refreshToken
	}

	return refreshed, nil
}

// Synthetic reports that this gateway serves real provider data.
func (c *Client) Synthetic() bool {
	return false
}

// getJSON performs an authorized GET against the Web API and decodes the body.
func (c *Client) getJSON(ctx context.Context, path, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.Wrap(service.ErrProviderAuth, "access token rejected")
	case resp.StatusCode == http.StatusNoContent:
		// Recently-played returns 204 when there is no playback history.
		return nil
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

// Wire payload shapes, reduced to the fields the scoring policy reads.

type apiImage struct {
	URL string `json:"url"`
}

type apiExternalURLs struct {
	Spotify string `json:"spotify"`
}

type apiArtist struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Images       []apiImage      `json:"images"`
	ExternalURLs apiExternalURLs `json:"external_urls"`
}

type apiTrack struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Artists []apiArtist `json:"artists"`
	Album   struct {
		Images []apiImage `json:"images"`
	} `json:"album"`
	ExternalURLs apiExternalURLs `json:"external_urls"`
}

type artistPage struct {
	Items []apiArtist `json:"items"`
}

type trackPage struct {
	Items []apiTrack `json:"items"`
}

type playHistoryPage struct {
	Items []struct {
		Track apiTrack `json:"track"`
	} `json:"items"`
}

func (a apiArtist) toEntity() entity.Artist {
	artist := entity.Artist{
		ID:          a.ID,
		Name:        a.Name,
		ExternalURL: a.ExternalURLs.Spotify,
	}
	if len(a.Images) > 0 {
		artist.ImageURL = a.Images[0].URL
	}

	return artist
}

func (t apiTrack) toEntity() entity.Track {
	track := entity.Track{
		ID:          t.ID,
		Name:        t.Name,
		ExternalURL: t.ExternalURLs.Spotify,
	}
	if len(t.Album.Images) > 0 {
		track.ImageURL = t.Album.Images[0].URL
	}
	for _, artist := range t.Artists {
		track.Artists = append(track.Artists, artist.toEntity())
	}

	return track
}

func (p artistPage) artists() []entity.Artist {
	artists := make([]entity.Artist, 0, len(p.Items))
	for _, item := range p.Items {
		artists = append(artists, item.toEntity())
	}

	return artists
}

func (p trackPage) tracks() []entity.Track {
	tracks := make([]entity.Track, 0, len(p.Items))
	for _, item := range p.Items {
		tracks = append(tracks, item.toEntity())
	}

	return tracks
}

func (p playHistoryPage) tracks() []entity.Track {
	tracks := make([]entity.Track, 0, len(p.Items))
	for _, item := range p.Items {
		tracks = append(tracks, item.Track.toEntity())
	}

	return tracks
}
