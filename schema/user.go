package schema

import (
	"time"
)

const (
	UserCollection = "users"
)

// User - a mini-app account together with its solver presence projection.
// The presence flags are written by the presence endpoints only; the match
// path reads them fresh on every attempt.
type User struct {
	LineID      string `bson:"line_id" json:"line_id"`
	DisplayName string `bson:"display_name" json:"display_name"`
	AvatarURL   string `bson:"avatar_url" json:"avatar_url"`

	// presence
	Active         bool       `bson:"active" json:"active"`
	IsReady        bool       `bson:"is_ready" json:"is_ready"`
	WaitMode       bool       `bson:"wait_mode" json:"wait_mode"`
	Location       *Location  `bson:"location,omitempty" json:"location,omitempty"`
	LastLocationAt *time.Time `bson:"last_location_at,omitempty" json:"last_location_at,omitempty"`
	LastActiveAt   *time.Time `bson:"last_active_at,omitempty" json:"last_active_at,omitempty"`

	// stats
	TotalRequests int64  `bson:"total_requests" json:"total_requests"`
	TotalSolves   int64  `bson:"total_solves" json:"total_solves"`
	Score         int64  `bson:"score" json:"score"`
	Tier          string `bson:"tier,omitempty" json:"tier,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PublicProfile is the subset of a user shown to the other side of a match.
type PublicProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// Public projects the user fields safe to expose to other users.
func (u *User) Public() PublicProfile {
	name := u.DisplayName
	if name == "" {
		name = "Solver"
	}
	return PublicProfile{
		ID:          u.LineID,
		Name:        name,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}
