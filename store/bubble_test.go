package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/solveme-app/solveme-api/schema"
)

type BubbleTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewBubbleTestSuite(connURI, dbName string) *BubbleTestSuite {
	return &BubbleTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *BubbleTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *BubbleTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	now := time.Now().UTC()
	expired := now.Add(-10 * time.Minute)

	if _, err := s.testDatabase.Collection(schema.BubbleCollection).InsertMany(ctx, []interface{}{
		schema.Bubble{
			ID:          "bubble-open",
			Title:       "need a charger",
			RequesterID: "user-requester",
			Status:      schema.BubbleStatusOpen,
			Priority:    schema.PriorityMedium,
			CreatedAt:   now,
		},
		schema.Bubble{
			ID:          "bubble-matched",
			Title:       "already handled",
			RequesterID: "user-requester",
			Status:      schema.BubbleStatusMatched,
			SolverID:    "user-solver-1",
			MatchID:     "room-existing",
			CreatedAt:   now,
		},
		schema.Bubble{
			ID:          "bubble-expired",
			Title:       "too late",
			RequesterID: "user-requester",
			Status:      schema.BubbleStatusOpen,
			ExpiresAt:   &expired,
			CreatedAt:   now,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *BubbleTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *BubbleTestSuite) TestCreateBubbleWithExpiry() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	bubble, err := store.CreateBubble(BubbleParams{
		Title:            "flat tire",
		Description:      "front wheel, near the gate",
		RequesterID:      "user-requester",
		Location:         &schema.Location{Latitude: 13.0, Longitude: 100.0},
		Priority:         schema.PriorityHigh,
		Category:         schema.CategoryDaily,
		ExpiresInMinutes: 30,
	})
	s.NoError(err)
	s.Equal(schema.BubbleStatusOpen, bubble.Status)
	s.NotEmpty(bubble.ID)
	s.Require().NotNil(bubble.ExpiresAt)
	s.WithinDuration(time.Now().Add(30*time.Minute), *bubble.ExpiresAt, time.Minute)

	var stored schema.Bubble
	err = s.testDatabase.Collection(schema.BubbleCollection).FindOne(context.Background(), bson.M{
		"id": bubble.ID,
	}).Decode(&stored)
	s.NoError(err)
	s.Equal(schema.PriorityHigh, stored.Priority)
}

func (s *BubbleTestSuite) TestCreateBubbleWithoutExpiry() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	bubble, err := store.CreateBubble(BubbleParams{
		Title:       "lost my keys",
		Description: "somewhere around the food court",
		RequesterID: "user-requester",
	})
	s.NoError(err)
	s.Nil(bubble.ExpiresAt)
}

func (s *BubbleTestSuite) TestGetBubbleNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetBubble("no-such-bubble")
	s.Equal(ErrBubbleNotFound, err)
}

func (s *BubbleTestSuite) TestListOpenBubblesReturnsOnlyOpen() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	bubbles, err := store.ListOpenBubbles(0)
	s.NoError(err)

	for _, b := range bubbles {
		s.Equal(schema.BubbleStatusOpen, b.Status)
		s.NotEqual("bubble-matched", b.ID)
	}
}

func (s *BubbleTestSuite) TestClaimBubble() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.ClaimBubble("bubble-open", "user-solver-1", "room-1")
	s.NoError(err)

	var stored schema.Bubble
	err = s.testDatabase.Collection(schema.BubbleCollection).FindOne(context.Background(), bson.M{
		"id": "bubble-open",
	}).Decode(&stored)
	s.NoError(err)
	s.Equal(schema.BubbleStatusMatched, stored.Status)
	s.Equal("user-solver-1", stored.SolverID)
	s.Equal("room-1", stored.MatchID)
}

func (s *BubbleTestSuite) TestClaimBubbleAlreadyTaken() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.ClaimBubble("bubble-matched", "user-solver-2", "room-2")
	s.Equal(ErrBubbleAlreadyTaken, err)

	// the original binding is untouched
	var stored schema.Bubble
	err = s.testDatabase.Collection(schema.BubbleCollection).FindOne(context.Background(), bson.M{
		"id": "bubble-matched",
	}).Decode(&stored)
	s.NoError(err)
	s.Equal("user-solver-1", stored.SolverID)
	s.Equal("room-existing", stored.MatchID)
}

func (s *BubbleTestSuite) TestClaimBubbleNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.ClaimBubble("no-such-bubble", "user-solver-1", "room-1")
	s.Equal(ErrBubbleNotFound, err)
}

// TestClaimBubbleContention races two claims over the same OPEN bubble and
// asserts that exactly one wins
func (s *BubbleTestSuite) TestClaimBubbleContention() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := s.testDatabase.Collection(schema.BubbleCollection).InsertOne(context.Background(), schema.Bubble{
		ID:          "bubble-contested",
		Title:       "contested",
		RequesterID: "user-requester",
		Status:      schema.BubbleStatusOpen,
		CreatedAt:   time.Now().UTC(),
	})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, solver := range []string{"user-solver-1", "user-solver-2"} {
		wg.Add(1)
		go func(i int, solver string) {
			defer wg.Done()
			errs[i] = store.ClaimBubble("bubble-contested", solver, "room-"+solver)
		}(i, solver)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			s.Equal(ErrBubbleAlreadyTaken, err)
		}
	}
	s.Equal(1, winners)

	var stored schema.Bubble
	err = s.testDatabase.Collection(schema.BubbleCollection).FindOne(context.Background(), bson.M{
		"id": "bubble-contested",
	}).Decode(&stored)
	s.NoError(err)
	s.Equal(schema.BubbleStatusMatched, stored.Status)
	s.Equal("room-"+stored.SolverID, stored.MatchID)
}

func (s *BubbleTestSuite) TestCreateAndGetRoom() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	room, err := store.CreateRoom("bubble-open", "user-requester", "user-solver-1")
	s.NoError(err)
	s.Equal(schema.RoomStatusPending, room.Status)

	fetched, err := store.GetRoom(room.ID)
	s.NoError(err)
	s.Equal("bubble-open", fetched.BubbleID)
	s.Equal("user-solver-1", fetched.SolverID)

	_, err = store.GetRoom("no-such-room")
	s.Equal(ErrRoomNotFound, err)
}

func TestBubbleTestSuite(t *testing.T) {
	suite.Run(t, NewBubbleTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
