package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solveme-app/solveme-api/schema"
)

// QuestStore - daily solver quest sheets
type QuestStore interface {
	GetOrCreateTodayQuests(lineID string) (*schema.DailyQuest, error)
	RecordSolveProgress(lineID string) error
}

func (m *mongoDB) quests() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.UserQuestCollection)
}

func todayKey(now time.Time) string {
	return now.Format("2006-01-02")
}

// GetOrCreateTodayQuests returns the quest sheet of the day, creating it
// from the daily template on first access.
func (m *mongoDB) GetOrCreateTodayQuests(lineID string) (*schema.DailyQuest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	dateKey := todayKey(now)

	var q schema.DailyQuest
	err := m.quests().FindOne(ctx, bson.M{
		"line_id":  lineID,
		"date_key": dateKey,
	}).Decode(&q)
	if err == nil {
		return &q, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	q = schema.DailyQuest{
		ID:        uuid.New().String(),
		LineID:    lineID,
		DateKey:   dateKey,
		Quests:    schema.DailyQuestTemplate(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := m.quests().InsertOne(ctx, q); err != nil {
		// a concurrent first access may have inserted the sheet already
		if findErr := m.quests().FindOne(ctx, bson.M{
			"line_id":  lineID,
			"date_key": dateKey,
		}).Decode(&q); findErr == nil {
			return &q, nil
		}
		return nil, err
	}

	return &q, nil
}

// RecordSolveProgress advances every solve-type quest of the day by one and
// credits the reward score of quests completed by this event.
func (m *mongoDB) RecordSolveProgress(lineID string) error {
	q, err := m.GetOrCreateTodayQuests(lineID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var reward int64
	for i := range q.Quests {
		item := &q.Quests[i]
		if item.Type != "solve" || item.Completed {
			continue
		}
		item.Progress++
		if item.Progress >= item.Target {
			item.Completed = true
			reward += item.RewardScore
		}
	}

	now := time.Now().UTC()
	if _, err := m.quests().UpdateOne(ctx,
		bson.M{"id": q.ID},
		bson.M{"$set": bson.M{
			"quests":     q.Quests,
			"updated_at": now,
		}}); err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"line_id": lineID,
			"error":   err,
		}).Error("record solve progress")
		return err
	}

	if reward > 0 {
		if _, err := m.users().UpdateOne(ctx,
			bson.M{"line_id": lineID},
			bson.M{
				"$inc": bson.M{"score": reward},
				"$set": bson.M{"updated_at": now},
			}); err != nil {
			return err
		}
	}

	return nil
}
