package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"coffee-fleet-backend/internal/model"
)

// Store defines the interface for all data-access operations.
//
// "Not found" is an absent-value return, never an error: these are plain
// in-memory map operations and cannot fail for well-typed input. The caller
// (the API layer) decides how absence surfaces to the user.
type Store interface {
	// Machines
	CreateMachine(m model.Machine) model.Machine
	GetMachine(id string) (model.Machine, bool)
	ListMachines() []model.Machine
	UpdateMachine(id string, upd MachineUpdate) (model.Machine, bool)
	DeleteMachine(id string) bool

	// Brews
	CreateBrew(b model.Brew) model.Brew
	GetBrew(id string) (model.Brew, bool)
	ListBrews() []model.Brew
	ListBrewsByMachine(machineID string) []model.Brew
	UpdateBrewStatus(id string, status model.BrewStatus) (model.Brew, bool)

	// Analytics
	CreateAnalytics(a model.Analytics) model.Analytics
	ListAnalytics(machineID string, days int) []model.Analytics

	// Users
	CreateUser(u model.User) model.User
	GetUser(id string) (model.User, bool)
	GetUserByUsername(username string) (model.User, bool)

	// User settings
	GetUserSettings(userID string) (model.UserSettings, bool)
	UpsertUserSettings(p UserSettingsUpsert) model.UserSettings

	// Push subscriptions
	UpsertPushSubscription(s model.PushSubscription) model.PushSubscription
	GetPushSubscription(endpoint string) (model.PushSubscription, bool)
	DeletePushSubscription(endpoint string) bool
	ListPushSubscriptions() []model.PushSubscription
}

// MemStore is an in-memory implementation of Store. Records live for the
// process lifetime only; there is no persistence and no recovery.
//
// A single coarse mutex guards every map. The data set is small enough that
// per-entity locks or secondary indices would buy nothing; the linear scans
// below are a conscious scalability deferral, not a correctness issue.
type MemStore struct {
	mu    sync.RWMutex
	clock clockwork.Clock

	machines  map[string]model.Machine
	brews     map[string]model.Brew
	analytics map[string]model.Analytics
	users     map[string]model.User
	settings  map[string]model.UserSettings
	subs      map[string]model.PushSubscription // keyed by endpoint
}

// NewMemStore creates an empty in-memory store. The injected clock supplies
// every timestamp the store generates, so tests can pin time.
func NewMemStore(clock clockwork.Clock) *MemStore {
	return &MemStore{
		clock:     clock,
		machines:  make(map[string]model.Machine),
		brews:     make(map[string]model.Brew),
		analytics: make(map[string]model.Analytics),
		users:     make(map[string]model.User),
		settings:  make(map[string]model.UserSettings),
		subs:      make(map[string]model.PushSubscription),
	}
}

// --- Machines ---

// CreateMachine stores the machine under a fresh random identity and stamps
// CreatedAt and LastSeen. The input's ID and timestamps are ignored.
func (s *MemStore) CreateMachine(m model.Machine) model.Machine {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.LastSeen = now
	s.machines[m.ID] = m
	return m
}

func (s *MemStore) GetMachine(id string) (model.Machine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.machines[id]
	return m, ok
}

// ListMachines returns a snapshot of all machines. Order follows map
// iteration and is never guaranteed.
func (s *MemStore) ListMachines() []model.Machine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Machine, 0, len(s.machines))
	for _, m := range s.machines {
		out = append(out, m)
	}
	return out
}

// UpdateMachine merges the non-nil fields of upd into the machine and
// refreshes LastSeen regardless of which fields changed. Any update counts
// as contact with the machine.
func (s *MemStore) UpdateMachine(id string, upd MachineUpdate) (model.Machine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.machines[id]
	if !ok {
		return model.Machine{}, false
	}

	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Location != nil {
		m.Location = *upd.Location
	}
	if upd.Status != nil {
		m.Status = *upd.Status
	}
	if upd.Latitude != nil {
		m.Latitude = upd.Latitude
	}
	if upd.Longitude != nil {
		m.Longitude = upd.Longitude
	}
	if upd.CoffeeBeans != nil {
		m.CoffeeBeans = *upd.CoffeeBeans
	}
	if upd.Milk != nil {
		m.Milk = *upd.Milk
	}
	if upd.Water != nil {
		m.Water = *upd.Water
	}
	if upd.CupsToday != nil {
		m.CupsToday = *upd.CupsToday
	}
	if upd.RevenueToday != nil {
		m.RevenueToday = *upd.RevenueToday
	}
	m.LastSeen = s.clock.Now()

	s.machines[id] = m
	return m, true
}

// DeleteMachine reports whether a record was actually removed, so callers
// get idempotent delete semantics.
func (s *MemStore) DeleteMachine(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.machines[id]
	delete(s.machines, id)
	return ok
}

// --- Brews ---

// CreateBrew stores the brew in the pending state with a fresh identity.
// MachineID is taken as-is; it is not checked against machine existence.
func (s *MemStore) CreateBrew(b model.Brew) model.Brew {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = uuid.NewString()
	b.Status = model.BrewPending
	b.CreatedAt = s.clock.Now()
	s.brews[b.ID] = b
	return b
}

func (s *MemStore) GetBrew(id string) (model.Brew, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.brews[id]
	return b, ok
}

func (s *MemStore) ListBrews() []model.Brew {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Brew, 0, len(s.brews))
	for _, b := range s.brews {
		out = append(out, b)
	}
	return out
}

// ListBrewsByMachine returns every brew whose MachineID equals the given
// value. Linear scan over the full collection; a nonexistent machine id
// simply yields an empty result.
func (s *MemStore) ListBrewsByMachine(machineID string) []model.Brew {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Brew, 0)
	for _, b := range s.brews {
		if b.MachineID == machineID {
			out = append(out, b)
		}
	}
	return out
}

// UpdateBrewStatus sets the brew's status. An absent id is a silent no-op
// reported through the bool, which lets lifecycle timers fire safely after
// the brew (or the whole store) is gone.
func (s *MemStore) UpdateBrewStatus(id string, status model.BrewStatus) (model.Brew, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.brews[id]
	if !ok {
		return model.Brew{}, false
	}
	b.Status = status
	s.brews[id] = b
	return b, true
}

// --- Analytics ---

// CreateAnalytics stores the entry under a fresh identity. Entries are
// immutable once created; there is no update or delete.
func (s *MemStore) CreateAnalytics(a model.Analytics) model.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	s.analytics[a.ID] = a
	return a
}

// ListAnalytics returns entries with Date >= now minus the given number of
// days, further filtered by machine when machineID is non-empty.
//
// The cutoff is a plain timestamp comparison (now shifted back by whole
// days), not a calendar-day boundary: days=0 keeps only entries dated at or
// after this instant, so "today only" callers lose entries from earlier the
// same day.
func (s *MemStore) ListAnalytics(machineID string, days int) []model.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.clock.Now().AddDate(0, 0, -days)

	out := make([]model.Analytics, 0)
	for _, a := range s.analytics {
		if machineID != "" && a.MachineID != machineID {
			continue
		}
		if a.Date.Before(cutoff) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// --- Users ---

// CreateUser stores the user under a fresh identity. An empty role defaults
// to the regular user role. Username uniqueness is by convention only.
func (s *MemStore) CreateUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = uuid.NewString()
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	s.users[u.ID] = u
	return u
}

func (s *MemStore) GetUser(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

func (s *MemStore) GetUserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return model.User{}, false
}

// --- User settings ---

// GetUserSettings looks settings up by the owning user, not by record id.
func (s *MemStore) GetUserSettings(userID string) (model.UserSettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findSettingsLocked(userID)
}

func (s *MemStore) findSettingsLocked(userID string) (model.UserSettings, bool) {
	for _, st := range s.settings {
		if st.UserID == userID {
			return st, true
		}
	}
	return model.UserSettings{}, false
}

// UpsertUserSettings merges the payload into the user's existing settings
// record, or creates one when the user has none. Lookup and write happen
// under the store mutex, so the sequence is atomic within this process.
func (s *MemStore) UpsertUserSettings(p UserSettingsUpsert) model.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.findSettingsLocked(p.UserID)
	if !ok {
		st = model.UserSettings{
			ID:     uuid.NewString(),
			UserID: p.UserID,
			Theme:  DefaultTheme,
		}
	}
	if p.Theme != nil {
		st.Theme = *p.Theme
	}
	if p.Preferences != nil {
		st.Preferences = p.Preferences
	}
	s.settings[st.ID] = st
	return st
}

// --- Push subscriptions ---

// UpsertPushSubscription creates or replaces a subscription keyed by its
// endpoint.
func (s *MemStore) UpsertPushSubscription(sub model.PushSubscription) model.PushSubscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.subs[sub.Endpoint]; ok {
		sub.CreatedAt = existing.CreatedAt
	} else {
		sub.CreatedAt = s.clock.Now()
	}
	s.subs[sub.Endpoint] = sub
	return sub
}

func (s *MemStore) GetPushSubscription(endpoint string) (model.PushSubscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[endpoint]
	return sub, ok
}

func (s *MemStore) DeletePushSubscription(endpoint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.subs[endpoint]
	delete(s.subs, endpoint)
	return ok
}

func (s *MemStore) ListPushSubscriptions() []model.PushSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PushSubscription, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub)
	}
	return out
}
