// Package brewsim advances a brew's status on a timer, standing in for
// feedback from real machine hardware.
package brewsim

import (
	"time"

	"github.com/jonboulle/clockwork"

	"coffee-fleet-backend/internal/model"
)

// BrewStore is the slice of the data layer the simulator mutates.
type BrewStore interface {
	UpdateBrewStatus(id string, status model.BrewStatus) (model.Brew, bool)
}

// Notifier receives the id of a brew that reached the completed state.
type Notifier interface {
	Dispatch(brewID string)
}

// Simulator walks every scheduled brew through the fixed sequence
// pending -> brewing -> completed. The transitions are unconditional and
// purely time-driven; nothing can accelerate, cancel, or redirect them.
// The failed state is never produced here.
//
// The clock is injected so tests can drive the sequence with a fake clock
// instead of waiting on real timers.
type Simulator struct {
	clock         clockwork.Clock
	store         BrewStore
	startDelay    time.Duration
	completeDelay time.Duration
	notifier      Notifier // optional
}

// New creates a simulator. startDelay is the wait before a pending brew
// starts brewing, completeDelay the further wait until it completes.
// notifier may be nil.
func New(clock clockwork.Clock, store BrewStore, startDelay, completeDelay time.Duration, notifier Notifier) *Simulator {
	return &Simulator{
		clock:         clock,
		store:         store,
		startDelay:    startDelay,
		completeDelay: completeDelay,
		notifier:      notifier,
	}
}

// Schedule starts the lifecycle for the given brew in the background and
// returns immediately. There is no cancellation: if the process is torn
// down, pending transitions are simply discarded along with the in-memory
// state they would have touched.
func (s *Simulator) Schedule(brewID string) {
	go s.run(brewID)
}

func (s *Simulator) run(brewID string) {
	s.clock.Sleep(s.startDelay)
	if _, ok := s.store.UpdateBrewStatus(brewID, model.BrewBrewing); !ok {
		// The brew no longer exists; let the remaining transitions no-op.
		return
	}

	s.clock.Sleep(s.completeDelay)
	if _, ok := s.store.UpdateBrewStatus(brewID, model.BrewCompleted); !ok {
		return
	}

	if s.notifier != nil {
		s.notifier.Dispatch(brewID)
	}
}
