package geo

import (
	"math"

	"github.com/solveme-app/solveme-api/schema"
)

// earthRadiusMeters - mean earth radius for the haversine formula
const earthRadiusMeters = 6371000

// Distance returns the great-circle distance in meters between two
// coordinates using the haversine formula. NaN coordinates propagate as a
// NaN distance; callers must treat NaN as out of range, never as zero.
func Distance(a, b schema.Location) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMeters * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Candidate - a solver annotated with its distance from a reference point
type Candidate struct {
	User           schema.User
	DistanceMeters float64
}

// FilterWithinRadius returns the candidates whose distance from center is
// within radiusMeters (boundary included), each annotated with the measured
// distance. Candidates without a location fix and the excluded user are
// dropped. Output order is unspecified; ranking is the caller's concern.
func FilterWithinRadius(center schema.Location, users []schema.User, radiusMeters float64, excludeID string) []Candidate {
	candidates := make([]Candidate, 0, len(users))

	for _, u := range users {
		if u.Location == nil {
			continue
		}
		if excludeID != "" && u.LineID == excludeID {
			continue
		}

		dist := Distance(center, *u.Location)
		// NaN fails this comparison and is rejected with it
		if !(dist <= radiusMeters) {
			continue
		}

		candidates = append(candidates, Candidate{
			User:           u,
			DistanceMeters: dist,
		})
	}

	return candidates
}
