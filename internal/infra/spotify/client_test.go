package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fangate/internal/domain/service"
	"fangate/internal/errors"
)

func newTestClient(apiServer, tokenServer *httptest.Server) *Client {
	client := &Client{
		clientID:     "client-id",
		clientSecret: "client-secret",
		httpClient:   &http.Client{Timeout: time.Second},
	}
	if apiServer != nil {
		client.apiBaseURL = apiServer.URL
	}
	if tokenServer != nil {
		client.tokenURL = tokenServer.URL
	}

	return client
}

func TestClient_FetchSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/me/top/artists":
			w.Write([]byte(`{"items":[{"id":"3Nrfpe0tUJi4K4DXYWgMUX","name":"BTS","images":[{"url":"http://img/bts"}],"external_urls":{"spotify":"http://open/bts"}}]}`))
		case "/v1/me/top/tracks":
			w.Write([]byte(`{"items":[{"id":"t1","name":"Dynamite","artists":[{"id":"3Nrfpe0tUJi4K4DXYWgMUX","name":"BTS"}],"album":{"images":[{"url":"http://img/t1"}]},"external_urls":{"spotify":"http://open/t1"}}]}`))
		case "/v1/me/player/recently-played":
			w.Write([]byte(`{"items":[{"track":{"id":"t2","name":"Butter","artists":[{"id":"3Nrfpe0tUJi4K4DXYWgMUX","name":"BTS"}]}}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server, nil)

	snapshot, err := client.FetchSnapshot(context.Background(), "token-123")
	require.NoError(t, err)

	require.Len(t, snapshot.TopArtists, 1)
	assert.Equal(t, "BTS", snapshot.TopArtists[0].Name)
	assert.Equal(t, "http://img/bts", snapshot.TopArtists[0].ImageURL)

	require.Len(t, snapshot.TopTracks, 1)
	assert.Equal(t, "Dynamite", snapshot.TopTracks[0].Name)
	require.Len(t, snapshot.TopTracks[0].Artists, 1)
	assert.Equal(t, "3Nrfpe0tUJi4K4DXYWgMUX", snapshot.TopTracks[0].Artists[0].ID)

	require.Len(t, snapshot.RecentlyPlayed, 1)
	assert.Equal(t, "Butter", snapshot.RecentlyPlayed[0].Name)

	assert.False(t, snapshot.Synthetic)
}

func TestClient_FetchSnapshot_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server, nil)

	snapshot, err := client.FetchSnapshot(context.Background(), "expired-token")
	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, service.ErrProviderAuth))
}

func TestClient_FetchSnapshot_EmptyPlaybackHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/me/player/recently-played" {
			w.WriteHeader(http.StatusNoContent)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server, nil)

	snapshot, err := client.FetchSnapshot(context.Background(), "token-123")
	require.NoError(t, err)
	assert.Empty(t, snapshot.RecentlyPlayed)
}

func TestClient_FetchSnapshot_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server, nil)

	snapshot, err := client.FetchSnapshot(context.Background(), "token-123")
	assert.Nil(t, snapshot)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrProviderAuth))
}

func TestClient_RefreshAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostFormValue("grant_type"))
		assert.Equal(t, "old-refresh", r.PostFormValue("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"new-access","expires_in":3600}`))
	}))
	defer server.Close()

	client := newTestClient(nil, server)

	refreshed, err := client.RefreshAccessToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", refreshed.AccessToken)
	// Spotify did not rotate the refresh token, so the old one survives.
	assert.Equal(t, "old-refresh", refreshed.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), refreshed.ExpiresAt, 5*time.Second)
}

func TestClient_RefreshAccessToken_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(nil, server)

	refreshed, err := client.RefreshAccessToken(context.Background(), "revoked-refresh")
	assert.Nil(t, refreshed)
	assert.True(t, errors.Is(err, service.ErrProviderAuth))
}

func TestSyntheticProvider_FetchSnapshot(t *testing.T) {
	provider := NewSyntheticProvider()

	snapshot, err := provider.FetchSnapshot(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, snapshot.Synthetic)
	assert.NotEmpty(t, snapshot.Notice)
	assert.NotEmpty(t, snapshot.TopArtists)
	assert.NotEmpty(t, snapshot.TopTracks)
	assert.NotEmpty(t, snapshot.RecentlyPlayed)
	assert.True(t, provider.Synthetic())
}

func TestSyntheticProvider_RefreshAccessToken_Unavailable(t *testing.T) {
	provider := NewSyntheticProvider()

	refreshed, err := provider.RefreshAccessToken(context.Background(), "stored-refresh")
	assert.Nil(t, refreshed)
	assert.Error(t, err)
}
