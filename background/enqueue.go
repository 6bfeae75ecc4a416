package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/solveme-app/solveme-api/schema"
)

// Enqueuer hands match side effects to the background workers over the
// task broker. It satisfies the coordinator collaborator interfaces; the
// api process enqueues, the worker process executes.
type Enqueuer struct {
	server *machinery.Server
}

func NewEnqueuer(server *machinery.Server) *Enqueuer {
	return &Enqueuer{server: server}
}

func (e *Enqueuer) send(name string, args ...string) error {
	sig := &tasks.Signature{Name: name}
	for _, a := range args {
		sig.Args = append(sig.Args, tasks.Arg{Type: "string", Value: a})
	}
	_, err := e.server.SendTask(sig)
	return err
}

func (e *Enqueuer) NotifySolverMatched(solverID, roomID string, bubble *schema.Bubble) error {
	bubbleID := ""
	if bubble != nil {
		bubbleID = bubble.ID
	}
	return e.send(TaskNotifySolver, solverID, roomID, bubbleID)
}

func (e *Enqueuer) AddRequest(lineID string) error {
	return e.send(TaskAddRequestStat, lineID)
}

func (e *Enqueuer) AddSolve(lineID string) error {
	return e.send(TaskAddSolveStat, lineID)
}

func (e *Enqueuer) OnSolveEvent(lineID string) error {
	return e.send(TaskSolveQuestEvent, lineID)
}
