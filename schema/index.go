package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexBubbleCollection())
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexRoomCollection())
	panicIfError(m.IndexUserQuestCollection())
}

func (m *MongoDBIndexer) IndexBubbleCollection() error {
	if err := m.createIndex(BubbleCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(BubbleCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	if err := m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"line_id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	// the match path queries presence flags only; the radius filter runs
	// application side over the bounded result
	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "active", Value: 1},
			{Key: "is_ready", Value: 1},
			{Key: "wait_mode", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexRoomCollection() error {
	if err := m.createIndex(RoomCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(RoomCollection, mongo.IndexModel{
		Keys: bson.M{
			"bubble_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexUserQuestCollection() error {
	return m.createIndex(UserQuestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "line_id", Value: 1},
			{Key: "date_key", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
