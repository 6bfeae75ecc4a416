package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solveme-app/solveme-api/schema"
)

var (
	ErrRoomNotFound = fmt.Errorf("room not found")
)

// RoomStore - chat room records handed off to the chat transport by id
type RoomStore interface {
	CreateRoom(bubbleID, requesterID, solverID string) (*schema.Room, error)
	GetRoom(id string) (*schema.Room, error)
}

// CreateRoom creates a pending chat room binding a bubble, its requester
// and the chosen solver. One room per successful claim.
func (m *mongoDB) CreateRoom(bubbleID, requesterID, solverID string) (*schema.Room, error) {
	c := m.client.Database(m.database).Collection(schema.RoomCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	room := schema.Room{
		ID:          uuid.New().String(),
		BubbleID:    bubbleID,
		RequesterID: requesterID,
		SolverID:    solverID,
		Status:      schema.RoomStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := c.InsertOne(ctx, room); err != nil {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"bubble_id": bubbleID,
			"solver_id": solverID,
			"error":     err,
		}).Error("create room")
		return nil, err
	}

	return &room, nil
}

// GetRoom returns a room by id
func (m *mongoDB) GetRoom(id string) (*schema.Room, error) {
	c := m.client.Database(m.database).Collection(schema.RoomCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var room schema.Room
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &room, nil
}
