// Package scoring implements the fixed fan-verification policy: the
// listening-score calculator over a provider snapshot and the combined
// decision that blends it with the quiz result. Everything here is pure;
// all I/O lives in the gateway and the use cases.
package scoring

import (
	"time"

	"fangate/internal/domain/entity"
)

// Fixed provider artist IDs the policy scores against. The first is the
// group itself; the rest are the seven members' solo catalog entries.
const targetArtistID = "3Nrfpe0tUJi4K4DXYWgMUX"

var memberArtistIDs = []string{
	"5vV3bFXnN6D6N3Nj4xRvaV", // Jungkook
	"57IVNoGtpJfyZbtoanDyco", // V
	"3JsHnjpbhX4SnySpvpa9DK", // Jimin
	"6HvZYsbFfjnjFrWF950C9d", // RM
	"0k17h0D3J5VfsdmQ1iZtE9", // Suga / Agust D
	"1oSPZhvZMIrWW5I41kPkkY", // J-Hope
	"5KNNVgR6LBIABRIomyCEDJ", // Jin
}

// Fixed rule weights. These are policy, not configuration.
const (
	topArtistPoints     = 50
	memberArtistPoints  = 20
	topTrackPoints      = 10
	recentPlayPoints    = 1
	recentPlayCap       = 50
	accountAgePoints    = 10
	accountAgeThreshold = 60 * 24 * time.Hour
	maxScore            = 200
	ProceedThreshold    = 70 // Minimum fan score to proceed to the quiz.
)

// Category identifies one rule of the scoring breakdown.
type Category string

const (
	CategoryTopArtist   Category = "topArtist"
	CategoryMembers     Category = "soloMembers"
	CategoryTopTracks   Category = "topTracks"
	CategoryRecentPlays Category = "recentListening"
	CategoryAccountAge  Category = "accountAge"
)

// BreakdownEntry reports how one rule contributed to the total.
type BreakdownEntry struct {
	Category Category `json:"category"`
	Matches  int      `json:"matches"`
	Points   int      `json:"points"`
}

// Evidence carries the matched items for display. Optional for callers that
// only need the number.
type Evidence struct {
	Artists []entity.Artist `json:"artists"`
	Tracks  []entity.Track  `json:"tracks"`
}

// Result is the outcome of scoring one snapshot.
type Result struct {
	Total     int              `json:"total"`
	Breakdown []BreakdownEntry `json:"breakdown"`
	Evidence  Evidence         `json:"evidence"`
}

// Score computes the listening score for a snapshot. The age bonus is
// measured from when the user's account was created, not from when the
// streaming account was linked. Missing or short snapshot sections count as
// zero matches; there are no error conditions. The total is clamped to
// [0, 200].
func Score(snapshot *entity.Snapshot, userCreatedAt, now time.Time) *Result {
	result := &Result{}
	if snapshot == nil {
		snapshot = &entity.Snapshot{}
	}

	scored := newTargetSet()

	result.add(scoreTopArtist(snapshot.TopArtists, scored, &result.Evidence))
	result.add(scoreMemberArtists(snapshot.TopArtists, scored, &result.Evidence))
	result.add(scoreTopTracks(snapshot.TopTracks, scored, &result.Evidence))
	result.add(scoreRecentPlays(snapshot.RecentlyPlayed, scored))
	result.add(scoreAccountAge(userCreatedAt, now))

	if result.Total > maxScore {
		result.Total = maxScore
	}
	if result.Total < 0 {
		result.Total = 0
	}

	return result
}

func (r *Result) add(entry BreakdownEntry) {
	r.Breakdown = append(r.Breakdown, entry)
	r.Total += entry.Points
}

// targetSet answers "is this one of the scored artist IDs" in O(1).
type targetSet map[string]struct{}

func newTargetSet() targetSet {
	set := make(targetSet, len(memberArtistIDs)+1)
	set[targetArtistID] = struct{}{}
	for _, id := range memberArtistIDs {
		set[id] = struct{}{}
	}

	return set
}

func (s targetSet) contains(id string) bool {
	_, ok := s[id]

	return ok
}

func trackMatches(track entity.Track, scored targetSet) bool {
	for _, artist := range track.Artists {
		if scored.contains(artist.ID) {
			return true
		}
	}

	return false
}

func scoreTopArtist(topArtists []entity.Artist, _ targetSet, evidence *Evidence) BreakdownEntry {
	entry := BreakdownEntry{Category: CategoryTopArtist}
	for _, artist := range topArtists {
		if artist.ID == targetArtistID {
			entry.Matches = 1
			entry.Points = topArtistPoints
			evidence.Artists = append(evidence.Artists, artist)

			break
		}
	}

	return entry
}

func scoreMemberArtists(topArtists []entity.Artist, _ targetSet, evidence *Evidence) BreakdownEntry {
	entry := BreakdownEntry{Category: CategoryMembers}
	members := make(map[string]struct{}, len(memberArtistIDs))
	for _, id := range memberArtistIDs {
		members[id] = struct{}{}
	}

	for _, artist := range topArtists {
		if _, ok := members[artist.ID]; ok {
			entry.Matches++
			evidence.Artists = append(evidence.Artists, artist)
		}
	}
	entry.Points = entry.Matches * memberArtistPoints

	return entry
}

func scoreTopTracks(topTracks []entity.Track, scored targetSet, evidence *Evidence) BreakdownEntry {
	entry := BreakdownEntry{Category: CategoryTopTracks}
	for _, track := range topTracks {
		if trackMatches(track, scored) {
			entry.Matches++
			evidence.Tracks = append(evidence.Tracks, track)
		}
	}
	entry.Points = entry.Matches * topTrackPoints

	return entry
}

func scoreRecentPlays(recentlyPlayed []entity.Track, scored targetSet) BreakdownEntry {
	entry := BreakdownEntry{Category: CategoryRecentPlays}
	for _, track := range recentlyPlayed {
		if trackMatches(track, scored) {
			entry.Matches++
		}
	}
	entry.Points = entry.Matches * recentPlayPoints
	if entry.Points > recentPlayCap {
		entry.Points = recentPlayCap
	}

	return entry
}

func scoreAccountAge(userCreatedAt, now time.Time) BreakdownEntry {
	entry := BreakdownEntry{Category: CategoryAccountAge}
	if !userCreatedAt.IsZero() && now.Sub(userCreatedAt) > accountAgeThreshold {
		entry.Matches = 1
		entry.Points = accountAgePoints
	}

	return entry
}
