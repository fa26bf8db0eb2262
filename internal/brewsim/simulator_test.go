package brewsim

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"coffee-fleet-backend/internal/model"
	"coffee-fleet-backend/internal/store"
)

const (
	testStartDelay    = 1 * time.Second
	testCompleteDelay = 30 * time.Second
)

// captureNotifier records dispatched brew ids.
type captureNotifier struct {
	ids chan string
}

func (n *captureNotifier) Dispatch(brewID string) { n.ids <- brewID }

func brewStatus(t *testing.T, s store.Store, id string) model.BrewStatus {
	t.Helper()
	brew, ok := s.GetBrew(id)
	if !ok {
		return ""
	}
	return brew.Status
}

func TestSimulator_HappyPath(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := store.NewMemStore(clock)
	notifier := &captureNotifier{ids: make(chan string, 1)}
	sim := New(clock, s, testStartDelay, testCompleteDelay, notifier)

	brew := s.CreateBrew(model.Brew{MachineID: "m1", CoffeeType: "latte"})
	sim.Schedule(brew.ID)

	// Wait for the lifecycle goroutine to park on the first delay.
	clock.BlockUntil(1)
	assert.Equal(t, model.BrewPending, brewStatus(t, s, brew.ID), "status at T+0")

	// First delay elapses: pending -> brewing.
	clock.Advance(testStartDelay)
	clock.BlockUntil(1)
	assert.Equal(t, model.BrewBrewing, brewStatus(t, s, brew.ID))

	// Second delay elapses: brewing -> completed, then the notifier fires.
	clock.Advance(testCompleteDelay)
	select {
	case id := <-notifier.ids:
		assert.Equal(t, brew.ID, id)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for completion notification")
	}
	assert.Equal(t, model.BrewCompleted, brewStatus(t, s, brew.ID))
}

func TestSimulator_NeverFails(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := store.NewMemStore(clock)
	sim := New(clock, s, testStartDelay, testCompleteDelay, nil)

	brew := s.CreateBrew(model.Brew{MachineID: "m1", CoffeeType: "espresso"})
	sim.Schedule(brew.ID)

	clock.BlockUntil(1)
	clock.Advance(testStartDelay)
	clock.BlockUntil(1)
	clock.Advance(testCompleteDelay)

	assert.Eventually(t, func() bool {
		return brewStatus(t, s, brew.ID) == model.BrewCompleted
	}, time.Second, 5*time.Millisecond)
	assert.NotEqual(t, model.BrewFailed, brewStatus(t, s, brew.ID))
}

func TestSimulator_VanishedBrewIsANoOp(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := store.NewMemStore(clock)
	notifier := &captureNotifier{ids: make(chan string, 1)}
	sim := New(clock, s, testStartDelay, testCompleteDelay, notifier)

	// Schedule a brew id the store has never seen. The timers must fire
	// without panicking and without notifying anyone.
	sim.Schedule("no-such-brew")

	clock.BlockUntil(1)
	clock.Advance(testStartDelay)
	clock.Advance(testCompleteDelay)

	select {
	case id := <-notifier.ids:
		t.Fatalf("unexpected notification for brew %q", id)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Empty(t, s.ListBrews())
}

func TestSimulator_IndependentBrews(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := store.NewMemStore(clock)
	sim := New(clock, s, testStartDelay, testCompleteDelay, nil)

	first := s.CreateBrew(model.Brew{MachineID: "m1", CoffeeType: "latte"})
	sim.Schedule(first.ID)
	clock.BlockUntil(1)

	second := s.CreateBrew(model.Brew{MachineID: "m2", CoffeeType: "mocha"})
	sim.Schedule(second.ID)
	clock.BlockUntil(2)

	// Both pass the first delay together; each walks its own sequence.
	clock.Advance(testStartDelay)
	clock.BlockUntil(2)
	assert.Equal(t, model.BrewBrewing, brewStatus(t, s, first.ID))
	assert.Equal(t, model.BrewBrewing, brewStatus(t, s, second.ID))

	clock.Advance(testCompleteDelay)
	assert.Eventually(t, func() bool {
		return brewStatus(t, s, first.ID) == model.BrewCompleted &&
			brewStatus(t, s, second.ID) == model.BrewCompleted
	}, time.Second, 5*time.Millisecond)
}
