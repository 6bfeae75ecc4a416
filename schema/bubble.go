package schema

import (
	"time"
)

const (
	BubbleCollection = "bubbles"
)

// Bubble lifecycle. TIMEOUT is never stored: an OPEN bubble past its
// expiry is reported as timed out at read time.
const (
	BubbleStatusOpen    = "OPEN"
	BubbleStatusMatched = "MATCHED"
	BubbleStatusClosed  = "CLOSED"
)

const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

const (
	CategoryEmergency = "EMERGENCY"
	CategoryHealth    = "HEALTH"
	CategoryTech      = "TECH"
	CategoryDaily     = "DAILY"
	CategoryDirection = "DIRECTION"
	CategoryOther     = "OTHER"
)

// Location - a lat/lon pair in degrees
type Location struct {
	Latitude  float64 `bson:"lat" json:"lat"`
	Longitude float64 `bson:"lon" json:"lon"`
}

// Bubble - a help request posted by a requester, visible to nearby solvers
type Bubble struct {
	ID               string     `bson:"id" json:"id"`
	Title            string     `bson:"title" json:"title"`
	Description      string     `bson:"description" json:"description"`
	RequesterID      string     `bson:"requester_id" json:"requester_id"`
	Location         *Location  `bson:"location,omitempty" json:"location,omitempty"`
	Place            string     `bson:"place,omitempty" json:"place,omitempty"`
	Priority         string     `bson:"priority" json:"priority"`
	Category         string     `bson:"category" json:"category"`
	Status           string     `bson:"status" json:"status"`
	ExpiresInMinutes int        `bson:"expires_in_minutes" json:"expires_in_minutes"`
	ExpiresAt        *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	SolverID         string     `bson:"solver_id,omitempty" json:"solver_id,omitempty"`
	MatchID          string     `bson:"match_id,omitempty" json:"match_id,omitempty"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
}

// Matched reports whether the bubble has been claimed by a solver.
// Invariant: status is MATCHED iff both solver_id and match_id are set.
func (b *Bubble) Matched() bool {
	return b.Status == BubbleStatusMatched && b.SolverID != "" && b.MatchID != ""
}

// Expired reports whether an OPEN bubble is past its expiry at the given
// time. A bubble without an expiry never expires.
func (b *Bubble) Expired(now time.Time) bool {
	if b.ExpiresAt == nil {
		return false
	}
	return now.After(*b.ExpiresAt)
}

// PriorityScore maps a priority label to its ranking weight. Unknown or
// missing labels sort below LOW.
func PriorityScore(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
