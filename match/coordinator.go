package match

import (
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/solveme-app/solveme-api/geo"
	"github.com/solveme-app/solveme-api/schema"
	"github.com/solveme-app/solveme-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "match")
}

// Reason codes of matching attempts. These are domain outcomes, not
// errors: they cross the coordinator boundary as values and the HTTP layer
// decides which of them are 200s.
const (
	ReasonMatched                 = "MATCHED"
	ReasonAlreadyMatched          = "ALREADY_MATCHED"
	ReasonAlreadyMatchedSameUser  = "ALREADY_MATCHED_THIS_SOLVER"
	ReasonAlreadyTakenByOther     = "ALREADY_TAKEN_BY_OTHER_SOLVER"
	ReasonNoSolverInRadius        = "NO_SOLVER_IN_RADIUS"
	ReasonBubbleNotFound          = "BUBBLE_NOT_FOUND"
	ReasonBubbleNoLocation        = "BUBBLE_NO_LOCATION"
	ReasonMissingParam            = "MISSING_PARAM"
	ReasonSolverIsRequester       = "SOLVER_IS_REQUESTER"
	ReasonSolverNotFound          = "SOLVER_NOT_FOUND"
	ReasonSolverNoLocation        = "SOLVER_NO_LOCATION"
	ReasonSolverNotReady          = "SOLVER_NOT_READY"
	ReasonSolverOutOfRadius       = "SOLVER_OUT_OF_RADIUS"
)

// Derived bubble states reported to polling clients
const (
	StatusMatched   = "MATCHED"
	StatusSearching = "SEARCHING"
	StatusTimeout   = "TIMEOUT"
)

// Outcome - the typed result of a matching attempt
type Outcome struct {
	OK             bool    `json:"ok"`
	Reason         string  `json:"reason"`
	BubbleID       string  `json:"bubbleId,omitempty"`
	SolverID       string  `json:"solverId,omitempty"`
	RoomID         string  `json:"roomId,omitempty"`
	DistanceMeters float64 `json:"distanceMeters,omitempty"`
}

// StatusView - the derived state a requester polls while waiting
type StatusView struct {
	Status  string                `json:"status"`
	Solver  *schema.PublicProfile `json:"solver,omitempty"`
	MatchID string                `json:"matchId,omitempty"`
}

// ActiveSolver - an eligible in-radius solver, for the radar display
type ActiveSolver struct {
	schema.PublicProfile
	DistanceMeters float64 `json:"distanceMeters"`
}

// Notifier pushes an out-of-band message to the chosen solver.
// Fire-and-forget: failures are logged by the coordinator, never surfaced.
type Notifier interface {
	NotifySolverMatched(solverID, roomID string, bubble *schema.Bubble) error
}

// StatsRecorder increments per-user counters, best effort
type StatsRecorder interface {
	AddRequest(lineID string) error
	AddSolve(lineID string) error
}

// QuestHook feeds solve events into the gamification layer, best effort
type QuestHook interface {
	OnSolveEvent(lineID string) error
}

// Config - matching policy knobs. Radii are tunable policy, not physics.
type Config struct {
	// AssignRadiusMeters bounds the candidate search of the auto-assign
	// sweep (the wait-mode visible radius)
	AssignRadiusMeters float64
	// AcceptRadiusMeters bounds how far away a solver may self-accept from
	AcceptRadiusMeters float64
}

// DefaultConfig mirrors the radii the mini-app ships with
func DefaultConfig() Config {
	return Config{
		AssignRadiusMeters: 70,
		AcceptRadiusMeters: 70,
	}
}

// Coordinator drives a bubble through OPEN → MATCHED. It owns the only
// code path that mutates bubble status, solver binding and room creation.
type Coordinator struct {
	bubbles store.BubbleStore
	solvers store.SolverDirectory
	rooms   store.RoomStore

	notifier Notifier
	stats    StatsRecorder
	quests   QuestHook

	config Config

	// pick selects a candidate index; replaced in tests for determinism
	pick func(n int) int
}

// NewCoordinator - a coordinator over the given stores and collaborators
func NewCoordinator(
	bubbles store.BubbleStore,
	solvers store.SolverDirectory,
	rooms store.RoomStore,
	notifier Notifier,
	stats StatsRecorder,
	quests QuestHook,
	config Config,
) *Coordinator {
	return &Coordinator{
		bubbles:  bubbles,
		solvers:  solvers,
		rooms:    rooms,
		notifier: notifier,
		stats:    stats,
		quests:   quests,
		config:   config,
		pick:     rand.Intn,
	}
}

// AssignSolver attempts to auto-assign a solver to a bubble: wait-mode
// solvers in radius, one picked uniformly at random. Candidate quality is
// deliberately not weighted. Safe to call repeatedly from a polling client;
// NO_SOLVER_IN_RADIUS is the expected steady state while nobody is nearby.
func (c *Coordinator) AssignSolver(bubbleID string) (*Outcome, error) {
	if bubbleID == "" {
		return &Outcome{Reason: ReasonMissingParam}, nil
	}

	bubble, err := c.bubbles.GetBubble(bubbleID)
	if err != nil {
		if err == store.ErrBubbleNotFound {
			return &Outcome{Reason: ReasonBubbleNotFound}, nil
		}
		return nil, err
	}

	if bubble.Location == nil {
		return &Outcome{Reason: ReasonBubbleNoLocation, BubbleID: bubble.ID}, nil
	}

	// fast path on a stale read; the claim below remains the authority
	if bubble.Matched() {
		return &Outcome{
			OK:       true,
			Reason:   ReasonAlreadyMatched,
			BubbleID: bubble.ID,
			SolverID: bubble.SolverID,
			RoomID:   bubble.MatchID,
		}, nil
	}

	solvers, err := c.solvers.ListAvailableSolvers(store.WaitModeOnly)
	if err != nil {
		return nil, err
	}

	candidates := geo.FilterWithinRadius(*bubble.Location, solvers, c.config.AssignRadiusMeters, bubble.RequesterID)
	if len(candidates) == 0 {
		return &Outcome{Reason: ReasonNoSolverInRadius, BubbleID: bubble.ID}, nil
	}

	solver := candidates[c.pick(len(candidates))].User
	log.WithFields(logrus.Fields{
		"bubble_id": bubble.ID,
		"solver_id": solver.LineID,
	}).Info("picked solver")

	return c.claim(bubble, &solver)
}

// SolverAccept handles a solver tapping "accept" on a bubble. The
// eligibility bar is active && is_ready; wait mode is only the opt-in for
// passive assignment, an explicit accept does not require it.
func (c *Coordinator) SolverAccept(bubbleID, solverID string) (*Outcome, error) {
	if bubbleID == "" || solverID == "" {
		return &Outcome{Reason: ReasonMissingParam}, nil
	}

	bubble, err := c.bubbles.GetBubble(bubbleID)
	if err != nil {
		if err == store.ErrBubbleNotFound {
			return &Outcome{Reason: ReasonBubbleNotFound}, nil
		}
		return nil, err
	}

	if bubble.Location == nil {
		return &Outcome{Reason: ReasonBubbleNoLocation, BubbleID: bubble.ID}, nil
	}

	if bubble.RequesterID == solverID {
		return &Outcome{Reason: ReasonSolverIsRequester, BubbleID: bubble.ID}, nil
	}

	if bubble.Matched() {
		return c.matchedOutcome(bubble, solverID), nil
	}

	solver, err := c.solvers.GetSolver(solverID)
	if err != nil {
		if err == store.ErrSolverNotFound {
			return &Outcome{Reason: ReasonSolverNotFound, BubbleID: bubble.ID}, nil
		}
		return nil, err
	}

	if solver.Location == nil {
		return &Outcome{Reason: ReasonSolverNoLocation, BubbleID: bubble.ID}, nil
	}

	if !solver.Active || !solver.IsReady {
		return &Outcome{Reason: ReasonSolverNotReady, BubbleID: bubble.ID}, nil
	}

	dist := geo.Distance(*bubble.Location, *solver.Location)
	if !(dist <= c.config.AcceptRadiusMeters) {
		return &Outcome{
			Reason:         ReasonSolverOutOfRadius,
			BubbleID:       bubble.ID,
			DistanceMeters: dist,
		}, nil
	}

	return c.claim(bubble, solver)
}

// claim creates the room and performs the conditional OPEN→MATCHED write.
// Every earlier status read is an optimization; losing the race here is
// the one signal that counts.
func (c *Coordinator) claim(bubble *schema.Bubble, solver *schema.User) (*Outcome, error) {
	room, err := c.rooms.CreateRoom(bubble.ID, bubble.RequesterID, solver.LineID)
	if err != nil {
		return nil, err
	}

	if err := c.bubbles.ClaimBubble(bubble.ID, solver.LineID, room.ID); err != nil {
		switch err {
		case store.ErrBubbleAlreadyTaken:
			// another writer won; the pending room is never activated.
			// report who holds the claim now
			fresh, ferr := c.bubbles.GetBubble(bubble.ID)
			if ferr != nil {
				return nil, ferr
			}
			return c.matchedOutcome(fresh, solver.LineID), nil
		case store.ErrBubbleNotFound:
			return &Outcome{Reason: ReasonBubbleNotFound}, nil
		default:
			return nil, err
		}
	}

	c.fireSideEffects(bubble, solver.LineID, room.ID)

	return &Outcome{
		OK:       true,
		Reason:   ReasonMatched,
		BubbleID: bubble.ID,
		SolverID: solver.LineID,
		RoomID:   room.ID,
	}, nil
}

// matchedOutcome classifies an already-claimed bubble from the viewpoint of
// the solver asking: re-entry by the winner is idempotent, everyone else
// lost the case.
func (c *Coordinator) matchedOutcome(bubble *schema.Bubble, solverID string) *Outcome {
	if bubble.SolverID == solverID {
		return &Outcome{
			OK:       true,
			Reason:   ReasonAlreadyMatchedSameUser,
			BubbleID: bubble.ID,
			SolverID: bubble.SolverID,
			RoomID:   bubble.MatchID,
		}
	}
	return &Outcome{
		Reason:   ReasonAlreadyTakenByOther,
		BubbleID: bubble.ID,
		SolverID: bubble.SolverID,
		RoomID:   bubble.MatchID,
	}
}

// fireSideEffects runs the best-effort collaborators of a successful claim.
// None of them may fail the match; errors are logged and dropped.
func (c *Coordinator) fireSideEffects(bubble *schema.Bubble, solverID, roomID string) {
	if err := c.stats.AddSolve(solverID); err != nil {
		log.WithError(err).WithField("solver_id", solverID).Warn("add solve stat")
	}

	if err := c.quests.OnSolveEvent(solverID); err != nil {
		log.WithError(err).WithField("solver_id", solverID).Warn("quest solve event")
	}

	if err := c.notifier.NotifySolverMatched(solverID, roomID, bubble); err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"solver_id": solverID,
			"room_id":   roomID,
		}).Warn("notify solver")
	}
}

// Status is the read-only view a requester polls while waiting for a
// match. TIMEOUT is derived here, never stored; the UI stops polling once
// it sees it.
func (c *Coordinator) Status(bubbleID string) (*StatusView, error) {
	bubble, err := c.bubbles.GetBubble(bubbleID)
	if err != nil {
		return nil, err
	}

	if bubble.Matched() {
		view := &StatusView{
			Status:  StatusMatched,
			MatchID: bubble.MatchID,
		}

		// resolve the solver's public profile, best effort
		if solver, err := c.solvers.GetSolver(bubble.SolverID); err == nil {
			profile := solver.Public()
			view.Solver = &profile
		} else {
			log.WithError(err).WithField("solver_id", bubble.SolverID).Warn("resolve matched solver")
		}

		return view, nil
	}

	if bubble.Status == schema.BubbleStatusOpen && bubble.Expired(time.Now()) {
		return &StatusView{Status: StatusTimeout}, nil
	}

	return &StatusView{Status: StatusSearching}, nil
}

// ActiveSolversNear lists the eligible solvers inside the radius of a
// bubble, closest first, for the radar display. Unknown bubbles and
// bubbles without a location yield an empty list, not an error.
func (c *Coordinator) ActiveSolversNear(bubbleID string, radiusMeters float64) ([]ActiveSolver, error) {
	if bubbleID == "" {
		return []ActiveSolver{}, nil
	}

	bubble, err := c.bubbles.GetBubble(bubbleID)
	if err != nil {
		if err == store.ErrBubbleNotFound {
			return []ActiveSolver{}, nil
		}
		return nil, err
	}
	if bubble.Location == nil {
		return []ActiveSolver{}, nil
	}

	if radiusMeters <= 0 {
		radiusMeters = c.config.AcceptRadiusMeters
	}

	solvers, err := c.solvers.ListAvailableSolvers(store.ReadyOnly)
	if err != nil {
		return nil, err
	}

	candidates := geo.FilterWithinRadius(*bubble.Location, solvers, radiusMeters, bubble.RequesterID)

	result := make([]ActiveSolver, 0, len(candidates))
	for _, cand := range candidates {
		result = append(result, ActiveSolver{
			PublicProfile:  cand.User.Public(),
			DistanceMeters: cand.DistanceMeters,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})

	return result, nil
}
