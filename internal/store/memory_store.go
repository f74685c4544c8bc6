// Package store holds the served season snapshot in memory.
package store

import (
	"sync"

	"f1-data-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the enriched season data.
// Collections keep their ingestion order; lookups go through side indexes.
type MemoryStore struct {
	mu          sync.RWMutex
	drivers     []domain.Driver
	driverIndex map[string]int
	races       []domain.Race
	raceIndex   map[int]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		driverIndex: make(map[string]int),
		raceIndex:   make(map[int]int),
	}
}

// ListDrivers returns a copy of the current driver snapshot.
func (s *MemoryStore) ListDrivers() []domain.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Driver, len(s.drivers))
	copy(result, s.drivers)
	return result
}

// GetDriver retrieves a driver by id.
func (s *MemoryStore) GetDriver(id string) (domain.Driver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.driverIndex[id]
	if !ok {
		return domain.Driver{}, false
	}
	return s.drivers[i], true
}

// SetDrivers replaces the driver snapshot.
func (s *MemoryStore) SetDrivers(drivers []domain.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drivers = make([]domain.Driver, len(drivers))
	copy(s.drivers, drivers)
	s.driverIndex = make(map[string]int, len(drivers))
	for i, d := range s.drivers {
		s.driverIndex[d.DriverID] = i
	}
}

// ListRaces returns a copy of the current schedule snapshot.
func (s *MemoryStore) ListRaces() []domain.Race {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Race, len(s.races))
	copy(result, s.races)
	return result
}

// GetRace retrieves a race by its canonical round.
func (s *MemoryStore) GetRace(round int) (domain.Race, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.raceIndex[round]
	if !ok {
		return domain.Race{}, false
	}
	return s.races[i], true
}

// SetRaces replaces the schedule snapshot.
func (s *MemoryStore) SetRaces(races []domain.Race) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.races = make([]domain.Race, len(races))
	copy(s.races, races)
	s.raceIndex = make(map[int]int, len(races))
	for i, r := range s.races {
		s.raceIndex[r.Round] = i
	}
}
