package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/solveme-app/solveme-api/schema"
)

var (
	ErrBubbleNotFound     = fmt.Errorf("bubble not found")
	ErrBubbleAlreadyTaken = fmt.Errorf("bubble has been taken by another solver")
)

// listOpenLimit caps how many OPEN bubbles a single listing query reads.
// Ranking and truncation happen on the caller side.
const listOpenLimit = 200

// BubbleParams - fields supplied by the requester when creating a bubble
type BubbleParams struct {
	Title            string
	Description      string
	RequesterID      string
	Location         *schema.Location
	Place            string
	Priority         string
	Category         string
	ExpiresInMinutes int
}

// BubbleStore - operations over the bubble collection
type BubbleStore interface {
	CreateBubble(params BubbleParams) (*schema.Bubble, error)
	GetBubble(id string) (*schema.Bubble, error)
	ListOpenBubbles(limit int64) ([]schema.Bubble, error)
	ClaimBubble(id, solverID, roomID string) error
}

// CreateBubble inserts a new OPEN bubble. The expiry is computed from
// ExpiresInMinutes; zero or negative means the bubble never expires.
func (m *mongoDB) CreateBubble(params BubbleParams) (*schema.Bubble, error) {
	c := m.client.Database(m.database).Collection(schema.BubbleCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()

	b := schema.Bubble{
		ID:               uuid.New().String(),
		Title:            params.Title,
		Description:      params.Description,
		RequesterID:      params.RequesterID,
		Location:         params.Location,
		Place:            params.Place,
		Priority:         params.Priority,
		Category:         params.Category,
		Status:           schema.BubbleStatusOpen,
		ExpiresInMinutes: params.ExpiresInMinutes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if params.ExpiresInMinutes > 0 {
		expiresAt := now.Add(time.Duration(params.ExpiresInMinutes) * time.Minute)
		b.ExpiresAt = &expiresAt
	}

	if _, err := c.InsertOne(ctx, b); err != nil {
		log.WithFields(log.Fields{
			"prefix":       mongoLogPrefix,
			"requester_id": params.RequesterID,
			"error":        err,
		}).Error("create bubble")
		return nil, err
	}

	return &b, nil
}

// GetBubble returns a bubble by id
func (m *mongoDB) GetBubble(id string) (*schema.Bubble, error) {
	c := m.client.Database(m.database).Collection(schema.BubbleCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var b schema.Bubble
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBubbleNotFound
		}
		return nil, err
	}

	return &b, nil
}

// ListOpenBubbles returns OPEN bubbles up to the given limit. The read is
// bounded to cap query cost; callers filter, rank and truncate further.
func (m *mongoDB) ListOpenBubbles(limit int64) ([]schema.Bubble, error) {
	c := m.client.Database(m.database).Collection(schema.BubbleCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > listOpenLimit {
		limit = listOpenLimit
	}

	opts := options.Find().SetLimit(limit)
	cur, err := c.Find(ctx, bson.M{"status": schema.BubbleStatusOpen}, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list open bubbles")
		return nil, err
	}

	bubbles := make([]schema.Bubble, 0)
	if err := cur.All(ctx, &bubbles); err != nil {
		return nil, err
	}

	return bubbles, nil
}

// ClaimBubble transitions a bubble from OPEN to MATCHED, binding the solver
// and the room in one conditional write. The filter on status is the
// correctness boundary against concurrent claims: of any number of racing
// writers, exactly one matches a document that is still OPEN. A failed
// write is re-read to distinguish a lost race from a missing bubble.
func (m *mongoDB) ClaimBubble(id, solverID, roomID string) error {
	c := m.client.Database(m.database).Collection(schema.BubbleCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.UpdateOne(ctx,
		bson.M{
			"id":     id,
			"status": schema.BubbleStatusOpen,
		},
		bson.M{
			"$set": bson.M{
				"status":     schema.BubbleStatusMatched,
				"solver_id":  solverID,
				"match_id":   roomID,
				"updated_at": time.Now().UTC(),
			},
		})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"bubble_id": id,
			"solver_id": solverID,
			"error":     err,
		}).Error("claim bubble")
		return err
	}

	if result.ModifiedCount == 1 {
		return nil
	}

	// the guarded write did not apply; find out why
	var b schema.Bubble
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrBubbleNotFound
		}
		return err
	}

	return ErrBubbleAlreadyTaken
}
