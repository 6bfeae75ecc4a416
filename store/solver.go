package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/solveme-app/solveme-api/schema"
)

var (
	ErrSolverNotFound = fmt.Errorf("solver not found")
)

// AvailabilityMode selects which presence bar a directory query applies.
const (
	// ReadyOnly - active solvers who opted in to receive cases
	ReadyOnly = "ready_only"
	// WaitModeOnly - additionally opted in to passive auto-assignment
	WaitModeOnly = "wait_mode_only"
)

// availableSolversLimit bounds a directory scan. The directory carries no
// geospatial index; radius filtering happens on the caller side.
const availableSolversLimit = 200

// userScoreWeights: a request earns 1 point, a solve earns 5.
const (
	scorePerRequest = 1
	scorePerSolve   = 5
)

// SolverDirectory - queries and presence updates over the user collection
type SolverDirectory interface {
	ListAvailableSolvers(mode string) ([]schema.User, error)
	GetSolver(lineID string) (*schema.User, error)

	UpsertUserOnEnter(lineID, displayName, avatarURL string) (*schema.User, error)
	SetWaitMode(lineID string, wait bool, loc *schema.Location) (*schema.User, error)
	SetReady(lineID string, ready bool) error
	TouchHeartbeat(lineID string) error
	UpdateSolverLocation(lineID string, loc schema.Location) error

	IncrementUserStats(lineID string, deltaRequest, deltaSolve int64) error
}

func (m *mongoDB) users() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.UserCollection)
}

// ListAvailableSolvers returns users matching the presence bar of the given
// mode, up to a bounded count.
func (m *mongoDB) ListAvailableSolvers(mode string) ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"active":   true,
		"is_ready": true,
	}
	switch mode {
	case ReadyOnly:
	case WaitModeOnly:
		query["wait_mode"] = true
	default:
		return nil, fmt.Errorf("unknown availability mode: %s", mode)
	}

	opts := options.Find().SetLimit(availableSolversLimit)
	cur, err := m.users().Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"mode":   mode,
			"error":  err,
		}).Error("list available solvers")
		return nil, err
	}

	solvers := make([]schema.User, 0)
	if err := cur.All(ctx, &solvers); err != nil {
		return nil, err
	}

	return solvers, nil
}

// GetSolver returns a user by line id
func (m *mongoDB) GetSolver(lineID string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var u schema.User
	if err := m.users().FindOne(ctx, bson.M{"line_id": lineID}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSolverNotFound
		}
		return nil, err
	}

	return &u, nil
}

// UpsertUserOnEnter registers a user on first entry and refreshes the
// profile and activity state on subsequent entries.
func (m *mongoDB) UpsertUserOnEnter(lineID, displayName, avatarURL string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()

	set := bson.M{
		"active":         true,
		"last_active_at": now,
		"updated_at":     now,
	}
	if displayName != "" {
		set["display_name"] = displayName
	}
	if avatarURL != "" {
		set["avatar_url"] = avatarURL
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"line_id":        lineID,
			"is_ready":       false,
			"wait_mode":      false,
			"total_requests": 0,
			"total_solves":   0,
			"score":          0,
			"created_at":     now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var u schema.User
	if err := m.users().FindOneAndUpdate(ctx, bson.M{"line_id": lineID}, update, opts).Decode(&u); err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"line_id": lineID,
			"error":   err,
		}).Error("upsert user on enter")
		return nil, err
	}

	return &u, nil
}

// SetWaitMode toggles passive auto-assignment. Turning wait on also marks
// the solver ready and active; turning it off withdraws all three flags.
// The location fix, when provided, is refreshed alongside.
func (m *mongoDB) SetWaitMode(lineID string, wait bool, loc *schema.Location) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()

	set := bson.M{
		"wait_mode":      wait,
		"is_ready":       wait,
		"active":         wait,
		"last_active_at": now,
		"updated_at":     now,
	}
	if loc != nil {
		set["location"] = loc
		set["last_location_at"] = now
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u schema.User
	if err := m.users().FindOneAndUpdate(ctx, bson.M{"line_id": lineID}, bson.M{"$set": set}, opts).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSolverNotFound
		}
		return nil, err
	}

	return &u, nil
}

// SetReady toggles the explicit opt-in to receive cases
func (m *mongoDB) SetReady(lineID string, ready bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()

	result, err := m.users().UpdateOne(ctx,
		bson.M{"line_id": lineID},
		bson.M{"$set": bson.M{
			"is_ready":       ready,
			"active":         ready,
			"last_active_at": now,
			"updated_at":     now,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSolverNotFound
	}

	return nil
}

// TouchHeartbeat refreshes the activity timestamp of a user session
func (m *mongoDB) TouchHeartbeat(lineID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()

	result, err := m.users().UpdateOne(ctx,
		bson.M{"line_id": lineID},
		bson.M{"$set": bson.M{
			"active":         true,
			"last_active_at": now,
			"updated_at":     now,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSolverNotFound
	}

	return nil
}

// UpdateSolverLocation stores the latest location fix of a user
func (m *mongoDB) UpdateSolverLocation(lineID string, loc schema.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()

	result, err := m.users().UpdateOne(ctx,
		bson.M{"line_id": lineID},
		bson.M{"$set": bson.M{
			"location":         loc,
			"last_location_at": now,
			"updated_at":       now,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSolverNotFound
	}

	return nil
}

// IncrementUserStats bumps the request/solve counters and the derived score
// in a single atomic update.
func (m *mongoDB) IncrementUserStats(lineID string, deltaRequest, deltaSolve int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	inc := bson.M{}
	if deltaRequest != 0 {
		inc["total_requests"] = deltaRequest
	}
	if deltaSolve != 0 {
		inc["total_solves"] = deltaSolve
	}
	if score := deltaRequest*scorePerRequest + deltaSolve*scorePerSolve; score != 0 {
		inc["score"] = score
	}
	if len(inc) == 0 {
		return nil
	}

	result, err := m.users().UpdateOne(ctx,
		bson.M{"line_id": lineID},
		bson.M{
			"$inc": inc,
			"$set": bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"line_id": lineID,
			"error":   err,
		}).Error("increment user stats")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSolverNotFound
	}

	return nil
}
