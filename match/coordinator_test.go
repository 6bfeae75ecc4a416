package match

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/solveme-app/solveme-api/match/mocks"
	"github.com/solveme-app/solveme-api/schema"
	"github.com/solveme-app/solveme-api/store"
	storemocks "github.com/solveme-app/solveme-api/store/mocks"
)

type coordinatorFixture struct {
	store    *storemocks.MockMongoStore
	notifier *mocks.MockNotifier
	stats    *mocks.MockStatsRecorder
	quests   *mocks.MockQuestHook
	c        *Coordinator
}

func newCoordinatorFixture(ctl *gomock.Controller) *coordinatorFixture {
	f := &coordinatorFixture{
		store:    storemocks.NewMockMongoStore(ctl),
		notifier: mocks.NewMockNotifier(ctl),
		stats:    mocks.NewMockStatsRecorder(ctl),
		quests:   mocks.NewMockQuestHook(ctl),
	}
	f.c = NewCoordinator(f.store, f.store, f.store, f.notifier, f.stats, f.quests, DefaultConfig())
	return f
}

func openBubble(id string) *schema.Bubble {
	expires := time.Now().Add(30 * time.Minute)
	return &schema.Bubble{
		ID:          id,
		Title:       "need a phone charger",
		RequesterID: "requester-1",
		Location:    &schema.Location{Latitude: 13.0000, Longitude: 100.0000},
		Priority:    schema.PriorityMedium,
		Status:      schema.BubbleStatusOpen,
		ExpiresAt:   &expires,
	}
}

func waitingSolver(id string, lat, lon float64) schema.User {
	return schema.User{
		LineID:   id,
		Active:   true,
		IsReady:  true,
		WaitMode: true,
		Location: &schema.Location{Latitude: lat, Longitude: lon},
	}
}

func TestAssignSolverPicksTheOneInRadius(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")

	// S1 sits ~16m away, S2 several km away; radius is 70m
	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().ListAvailableSolvers(store.WaitModeOnly).Return([]schema.User{
		waitingSolver("S1", 13.0001, 100.0001),
		waitingSolver("S2", 13.05, 100.05),
	}, nil)
	f.store.EXPECT().CreateRoom("b-1", "requester-1", "S1").
		Return(&schema.Room{ID: "room-1", BubbleID: "b-1"}, nil)
	f.store.EXPECT().ClaimBubble("b-1", "S1", "room-1").Return(nil)

	f.stats.EXPECT().AddSolve("S1").Return(nil)
	f.quests.EXPECT().OnSolveEvent("S1").Return(nil)
	f.notifier.EXPECT().NotifySolverMatched("S1", "room-1", bubble).Return(nil)

	outcome, err := f.c.AssignSolver("b-1")
	assert.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, ReasonMatched, outcome.Reason)
	assert.Equal(t, "S1", outcome.SolverID)
	assert.Equal(t, "room-1", outcome.RoomID)
}

func TestAssignSolverUniformRandomPick(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")

	// both in radius; force the pick to index 1 to prove selection is by
	// index, not nearest-first
	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().ListAvailableSolvers(store.WaitModeOnly).Return([]schema.User{
		waitingSolver("near", 13.00001, 100.00001),
		waitingSolver("less-near", 13.0002, 100.0002),
	}, nil)
	f.store.EXPECT().CreateRoom("b-1", "requester-1", "less-near").
		Return(&schema.Room{ID: "room-2"}, nil)
	f.store.EXPECT().ClaimBubble("b-1", "less-near", "room-2").Return(nil)

	f.stats.EXPECT().AddSolve("less-near").Return(nil)
	f.quests.EXPECT().OnSolveEvent("less-near").Return(nil)
	f.notifier.EXPECT().NotifySolverMatched("less-near", "room-2", bubble).Return(nil)

	f.c.pick = func(n int) int { return 1 }

	outcome, err := f.c.AssignSolver("b-1")
	assert.NoError(t, err)
	assert.Equal(t, "less-near", outcome.SolverID)
}

func TestAssignSolverExcludesRequester(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")

	// the only nearby "solver" is the requester themself
	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().ListAvailableSolvers(store.WaitModeOnly).Return([]schema.User{
		waitingSolver("requester-1", 13.0000, 100.0000),
	}, nil)

	outcome, err := f.c.AssignSolver("b-1")
	assert.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, ReasonNoSolverInRadius, outcome.Reason)
}

func TestAssignSolverNoLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	bubble.Location = nil

	// no side effects may fire: no room, no stats, no notification
	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)

	outcome, err := f.c.AssignSolver("b-1")
	assert.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, ReasonBubbleNoLocation, outcome.Reason)
}

func TestAssignSolverBubbleNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	f.store.EXPECT().GetBubble("missing").Return(nil, store.ErrBubbleNotFound)

	outcome, err := f.c.AssignSolver("missing")
	assert.NoError(t, err)
	assert.Equal(t, ReasonBubbleNotFound, outcome.Reason)
}

func TestAssignSolverAlreadyMatchedShortCircuits(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	bubble.Status = schema.BubbleStatusMatched
	bubble.SolverID = "S1"
	bubble.MatchID = "room-1"

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)

	outcome, err := f.c.AssignSolver("b-1")
	assert.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, ReasonAlreadyMatched, outcome.Reason)
	assert.Equal(t, "S1", outcome.SolverID)
	assert.Equal(t, "room-1", outcome.RoomID)
}

func TestAssignSolverLosesClaimRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")

	winner := openBubble("b-1")
	winner.Status = schema.BubbleStatusMatched
	winner.SolverID = "S2"
	winner.MatchID = "room-other"

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().ListAvailableSolvers(store.WaitModeOnly).Return([]schema.User{
		waitingSolver("S1", 13.0001, 100.0001),
	}, nil)
	f.store.EXPECT().CreateRoom("b-1", "requester-1", "S1").
		Return(&schema.Room{ID: "room-1"}, nil)
	f.store.EXPECT().ClaimBubble("b-1", "S1", "room-1").Return(store.ErrBubbleAlreadyTaken)
	f.store.EXPECT().GetBubble("b-1").Return(winner, nil)

	outcome, err := f.c.AssignSolver("b-1")
	assert.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, ReasonAlreadyTakenByOther, outcome.Reason)
	assert.Equal(t, "S2", outcome.SolverID)
	assert.Equal(t, "room-other", outcome.RoomID)
}

func TestSolverAcceptHappyPath(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	solver := waitingSolver("S1", 13.0001, 100.0001)
	solver.WaitMode = false // explicit accept does not require wait mode

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().GetSolver("S1").Return(&solver, nil)
	f.store.EXPECT().CreateRoom("b-1", "requester-1", "S1").
		Return(&schema.Room{ID: "room-1"}, nil)
	f.store.EXPECT().ClaimBubble("b-1", "S1", "room-1").Return(nil)

	f.stats.EXPECT().AddSolve("S1").Return(nil)
	f.quests.EXPECT().OnSolveEvent("S1").Return(nil)
	f.notifier.EXPECT().NotifySolverMatched("S1", "room-1", bubble).Return(nil)

	outcome, err := f.c.SolverAccept("b-1", "S1")
	assert.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, ReasonMatched, outcome.Reason)
}

func TestSolverAcceptMissingParams(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	outcome, err := f.c.SolverAccept("", "S1")
	assert.NoError(t, err)
	assert.Equal(t, ReasonMissingParam, outcome.Reason)

	outcome, err = f.c.SolverAccept("b-1", "")
	assert.NoError(t, err)
	assert.Equal(t, ReasonMissingParam, outcome.Reason)
}

func TestSolverAcceptRequesterCannotTakeOwnCase(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)

	outcome, err := f.c.SolverAccept("b-1", "requester-1")
	assert.NoError(t, err)
	assert.Equal(t, ReasonSolverIsRequester, outcome.Reason)
}

func TestSolverAcceptAlreadyTakenByOther(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	bubble.Status = schema.BubbleStatusMatched
	bubble.SolverID = "S1"
	bubble.MatchID = "room-1"

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)

	outcome, err := f.c.SolverAccept("b-1", "S2")
	assert.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, ReasonAlreadyTakenByOther, outcome.Reason)
	assert.Equal(t, "room-1", outcome.RoomID, "existing room id attached")
}

func TestSolverAcceptIdempotentReentry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	bubble.Status = schema.BubbleStatusMatched
	bubble.SolverID = "S1"
	bubble.MatchID = "room-1"

	// duplicate tap from the solver who already holds the claim
	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)

	outcome, err := f.c.SolverAccept("b-1", "S1")
	assert.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, ReasonAlreadyMatchedSameUser, outcome.Reason)
	assert.Equal(t, "room-1", outcome.RoomID)
}

func TestSolverAcceptNotReady(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	solver := waitingSolver("S1", 13.0001, 100.0001)
	solver.IsReady = false

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().GetSolver("S1").Return(&solver, nil)

	outcome, err := f.c.SolverAccept("b-1", "S1")
	assert.NoError(t, err)
	assert.Equal(t, ReasonSolverNotReady, outcome.Reason)
}

func TestSolverAcceptOutOfRadius(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	solver := waitingSolver("S1", 13.05, 100.05) // several km away

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().GetSolver("S1").Return(&solver, nil)

	outcome, err := f.c.SolverAccept("b-1", "S1")
	assert.NoError(t, err)
	assert.Equal(t, ReasonSolverOutOfRadius, outcome.Reason)
	assert.True(t, outcome.DistanceMeters > 70, "measured distance attached")
}

func TestSolverAcceptLosesClaimRaceToOther(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	solver := waitingSolver("S1", 13.0001, 100.0001)

	winner := openBubble("b-1")
	winner.Status = schema.BubbleStatusMatched
	winner.SolverID = "S2"
	winner.MatchID = "room-other"

	// the fast-path read still sees OPEN, the conditional write is the
	// authority and reports the lost race
	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().GetSolver("S1").Return(&solver, nil)
	f.store.EXPECT().CreateRoom("b-1", "requester-1", "S1").
		Return(&schema.Room{ID: "room-1"}, nil)
	f.store.EXPECT().ClaimBubble("b-1", "S1", "room-1").Return(store.ErrBubbleAlreadyTaken)
	f.store.EXPECT().GetBubble("b-1").Return(winner, nil)

	outcome, err := f.c.SolverAccept("b-1", "S1")
	assert.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, ReasonAlreadyTakenByOther, outcome.Reason)
	assert.Equal(t, "S2", outcome.SolverID)
}

func TestSideEffectFailureDoesNotFailMatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().ListAvailableSolvers(store.WaitModeOnly).Return([]schema.User{
		waitingSolver("S1", 13.0001, 100.0001),
	}, nil)
	f.store.EXPECT().CreateRoom("b-1", "requester-1", "S1").
		Return(&schema.Room{ID: "room-1"}, nil)
	f.store.EXPECT().ClaimBubble("b-1", "S1", "room-1").Return(nil)

	f.stats.EXPECT().AddSolve("S1").Return(assert.AnError)
	f.quests.EXPECT().OnSolveEvent("S1").Return(assert.AnError)
	f.notifier.EXPECT().NotifySolverMatched("S1", "room-1", bubble).Return(assert.AnError)

	outcome, err := f.c.AssignSolver("b-1")
	assert.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, ReasonMatched, outcome.Reason)
}

func TestStatusSearchingWhileOpen(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)

	view, err := f.c.Status("b-1")
	assert.NoError(t, err)
	assert.Equal(t, StatusSearching, view.Status)
}

func TestStatusTimeoutIsDerived(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	past := time.Now().Add(-time.Minute)
	bubble.ExpiresAt = &past

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)

	view, err := f.c.Status("b-1")
	assert.NoError(t, err)
	assert.Equal(t, StatusTimeout, view.Status)
}

func TestStatusMatchedResolvesSolverProfile(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")
	bubble.Status = schema.BubbleStatusMatched
	bubble.SolverID = "S1"
	bubble.MatchID = "room-1"

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().GetSolver("S1").Return(&schema.User{
		LineID:      "S1",
		DisplayName: "Somsak",
		AvatarURL:   "https://example.com/a.png",
	}, nil)

	view, err := f.c.Status("b-1")
	assert.NoError(t, err)
	assert.Equal(t, StatusMatched, view.Status)
	assert.Equal(t, "room-1", view.MatchID)
	if assert.NotNil(t, view.Solver) {
		assert.Equal(t, "Somsak", view.Solver.Name)
	}
}

func TestActiveSolversNearSortedByDistance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := newCoordinatorFixture(ctl)

	bubble := openBubble("b-1")

	far := waitingSolver("far", 13.0004, 100.0)
	near := waitingSolver("near", 13.0001, 100.0)

	f.store.EXPECT().GetBubble("b-1").Return(bubble, nil)
	f.store.EXPECT().ListAvailableSolvers(store.ReadyOnly).Return([]schema.User{far, near}, nil)

	solvers, err := f.c.ActiveSolversNear("b-1", 70)
	assert.NoError(t, err)
	if assert.Len(t, solvers, 2) {
		assert.Equal(t, "near", solvers[0].ID)
		assert.Equal(t, "far", solvers[1].ID)
	}
}
