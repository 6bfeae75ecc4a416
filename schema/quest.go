package schema

import (
	"time"
)

const (
	UserQuestCollection = "user_quests"
)

// QuestItem - one daily quest entry for a solver
type QuestItem struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Type        string `bson:"type" json:"type"`
	Target      int    `bson:"target" json:"target"`
	Progress    int    `bson:"progress" json:"progress"`
	RewardScore int64  `bson:"reward_score" json:"reward_score"`
	Completed   bool   `bson:"completed" json:"completed"`
	Claimed     bool   `bson:"claimed" json:"claimed"`
}

// DailyQuest - the quest sheet of one solver for one day, keyed by
// line_id + date_key (YYYY-MM-DD)
type DailyQuest struct {
	ID        string      `bson:"id" json:"id"`
	LineID    string      `bson:"line_id" json:"line_id"`
	DateKey   string      `bson:"date_key" json:"date_key"`
	Quests    []QuestItem `bson:"quests" json:"quests"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time   `bson:"updated_at" json:"updated_at"`
}

// DailyQuestTemplate returns the quest sheet every solver starts a day with.
func DailyQuestTemplate() []QuestItem {
	return []QuestItem{
		{
			ID:          "solve_1",
			Title:       "Solve at least 1 case today",
			Type:        "solve",
			Target:      1,
			RewardScore: 10,
		},
		{
			ID:          "solve_3",
			Title:       "Solve at least 3 cases today",
			Type:        "solve",
			Target:      3,
			RewardScore: 30,
		},
	}
}
