package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solveme-app/solveme-api/external/linebot"
	"github.com/solveme-app/solveme-api/store"
)

// Task names shared between the api enqueuer and the worker
const (
	TaskNotifySolver    = "match.notify_solver"
	TaskAddRequestStat  = "stats.add_request"
	TaskAddSolveStat    = "stats.add_solve"
	TaskSolveQuestEvent = "quest.solve_event"
)

// BackgroundManager is a struct for the solveme background worker
type BackgroundManager struct {
	store store.MongoStore

	line linebot.Client

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	line := linebot.New(
		viper.GetString("line.channel_token"),
		viper.GetString("line.push_url"),
	)

	return &BackgroundManager{
		store:      mongoStore,
		line:       line,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("solveme-worker", 5)
	return m.worker.Launch()
}
