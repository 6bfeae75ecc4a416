package match

import (
	"math"
	"sort"
	"time"

	"github.com/solveme-app/solveme-api/geo"
	"github.com/solveme-app/solveme-api/schema"
)

// listTopN - how many bubbles a listing view returns after ranking
const listTopN = 20

// NearbyBubble - a bubble annotated with its distance from the query point
type NearbyBubble struct {
	schema.Bubble
	DistanceMeters float64 `json:"distance_meters"`
}

// timeRemaining returns minutes until expiry; bubbles without an expiry
// sort last, treated as never expiring.
func timeRemaining(b *schema.Bubble, now time.Time) float64 {
	if b.ExpiresAt == nil {
		return math.Inf(1)
	}
	return b.ExpiresAt.Sub(now).Minutes()
}

// RankOpenBubbles orders an open-bubble listing: highest priority first,
// then soonest to expire. Urgent, soon-to-expire problems surface first so
// they have a chance of being resolved before expiry. Truncated to the top
// 20 after sorting.
func RankOpenBubbles(bubbles []schema.Bubble, now time.Time) []schema.Bubble {
	items := make([]schema.Bubble, len(bubbles))
	copy(items, bubbles)

	sort.SliceStable(items, func(i, j int) bool {
		pi := schema.PriorityScore(items[i].Priority)
		pj := schema.PriorityScore(items[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return timeRemaining(&items[i], now) < timeRemaining(&items[j], now)
	})

	if len(items) > listTopN {
		items = items[:listTopN]
	}
	return items
}

// RankNearbyBubbles filters open bubbles to those within radiusMeters of
// the query point and orders them like RankOpenBubbles, with distance as
// the final tiebreak. Bubbles without a location are dropped.
func RankNearbyBubbles(bubbles []schema.Bubble, center schema.Location, radiusMeters float64, now time.Time) []NearbyBubble {
	items := make([]NearbyBubble, 0, len(bubbles))

	for _, b := range bubbles {
		if b.Location == nil {
			continue
		}
		dist := geo.Distance(center, *b.Location)
		if !(dist <= radiusMeters) {
			continue
		}
		items = append(items, NearbyBubble{Bubble: b, DistanceMeters: dist})
	}

	sort.SliceStable(items, func(i, j int) bool {
		pi := schema.PriorityScore(items[i].Priority)
		pj := schema.PriorityScore(items[j].Priority)
		if pi != pj {
			return pi > pj
		}

		ti := timeRemaining(&items[i].Bubble, now)
		tj := timeRemaining(&items[j].Bubble, now)
		if ti != tj {
			return ti < tj
		}

		return items[i].DistanceMeters < items[j].DistanceMeters
	})

	if len(items) > listTopN {
		items = items[:listTopN]
	}
	return items
}
