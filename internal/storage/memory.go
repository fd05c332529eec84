package storage

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"weather-stats/internal/models"
)

// ErrNotFound is returned for unknown identifiers and when listing an empty store.
var ErrNotFound = errors.New("weather record not found")

// MemoryStore is a concurrency-safe in-memory record store. It lives as long as the process.
type MemoryStore struct {
	mu sync.RWMutex

	records map[uuid.UUID]models.WeatherRecord
	// insertion order, used by List
	order []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[uuid.UUID]models.WeatherRecord),
	}
}

// Insert stores r under r.ID. Identifiers are generated per record, so no duplicate check is made.
func (s *MemoryStore) Insert(r models.WeatherRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[r.ID]; !exists {
		s.order = append(s.order, r.ID)
	}
	s.records[r.ID] = r.Clone()
}

func (s *MemoryStore) Get(id uuid.UUID) (models.WeatherRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return models.WeatherRecord{}, ErrNotFound
	}
	return r.Clone(), nil
}

// List returns every record in insertion order, or ErrNotFound when there are none.
func (s *MemoryStore) List() ([]models.WeatherRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, ErrNotFound
	}

	result := make([]models.WeatherRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id].Clone())
	}
	return result, nil
}

func (s *MemoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}

	delete(s.records, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
