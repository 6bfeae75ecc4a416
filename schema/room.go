package schema

import (
	"time"
)

const (
	RoomCollection = "rooms"
)

const (
	RoomStatusPending = "pending"
	RoomStatusActive  = "active"
	RoomStatusClosed  = "closed"
)

// Room - a chat room created once per successful claim. The chat transport
// itself lives outside this service; rooms are handed off by id.
type Room struct {
	ID            string     `bson:"id" json:"id"`
	BubbleID      string     `bson:"bubble_id" json:"bubble_id"`
	RequesterID   string     `bson:"requester_id" json:"requester_id"`
	SolverID      string     `bson:"solver_id" json:"solver_id"`
	Status        string     `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	LastMessageAt *time.Time `bson:"last_message_at,omitempty" json:"last_message_at,omitempty"`
}
