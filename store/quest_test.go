package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/solveme-app/solveme-api/schema"
)

type QuestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewQuestTestSuite(connURI, dbName string) *QuestTestSuite {
	return &QuestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *QuestTestSuite) SetupSuite() {
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

	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *QuestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *QuestTestSuite) TestGetOrCreateTodayQuests() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	sheet, err := store.GetOrCreateTodayQuests("quest-user-1")
	s.NoError(err)
	s.Equal("quest-user-1", sheet.LineID)
	s.Require().Len(sheet.Quests, 2)
	s.Equal("solve_1", sheet.Quests[0].ID)
	s.Equal(int64(10), sheet.Quests[0].RewardScore)
	s.Equal("solve_3", sheet.Quests[1].ID)
	s.Equal(int64(30), sheet.Quests[1].RewardScore)

	// a second read returns the same sheet, not a new one
	again, err := store.GetOrCreateTodayQuests("quest-user-1")
	s.NoError(err)
	s.Equal(sheet.ID, again.ID)
}

func (s *QuestTestSuite) TestRecordSolveProgress() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.UpsertUserOnEnter("quest-user-2", "Quester", "")
	s.Require().NoError(err)

	// first solve completes solve_1 and credits its reward
	s.NoError(store.RecordSolveProgress("quest-user-2"))

	sheet, err := store.GetOrCreateTodayQuests("quest-user-2")
	s.NoError(err)
	s.True(sheet.Quests[0].Completed)
	s.Equal(1, sheet.Quests[0].Progress)
	s.False(sheet.Quests[1].Completed)

	user, err := store.GetSolver("quest-user-2")
	s.NoError(err)
	s.Equal(int64(10), user.Score)

	// two more solves complete solve_3
	s.NoError(store.RecordSolveProgress("quest-user-2"))
	s.NoError(store.RecordSolveProgress("quest-user-2"))

	sheet, err = store.GetOrCreateTodayQuests("quest-user-2")
	s.NoError(err)
	s.True(sheet.Quests[1].Completed)
	s.Equal(3, sheet.Quests[1].Progress)

	user, err = store.GetSolver("quest-user-2")
	s.NoError(err)
	s.Equal(int64(40), user.Score)

	// completed quests stop advancing
	s.NoError(store.RecordSolveProgress("quest-user-2"))
	sheet, err = store.GetOrCreateTodayQuests("quest-user-2")
	s.NoError(err)
	s.Equal(1, sheet.Quests[0].Progress)
	s.Equal(3, sheet.Quests[1].Progress)
}

func TestQuestTestSuite(t *testing.T) {
	suite.Run(t, NewQuestTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
