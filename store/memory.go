package store

import (
	"sync"

	"quickfix/models"
)

// MemoryStore keeps leads in process memory. It backs development and test
// deployments where no database is configured; contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	leads  []models.Lead
	nextID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Save(lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead.ID = s.nextID
	s.nextID++
	s.leads = append(s.leads, *lead)
	return nil
}

// List returns leads newest first, optionally filtered by status and capped
// at filter.Limit.
func (s *MemoryStore) List(filter ListFilter) ([]models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Lead, 0, len(s.leads))
	for i := len(s.leads) - 1; i >= 0; i-- {
		lead := s.leads[i]
		if filter.Status != "" && filter.Status != "all" && lead.Status != filter.Status {
			continue
		}
		result = append(result, lead)
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result, nil
}

func (s *MemoryStore) Get(id uint) (*models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			lead := s.leads[i]
			return &lead, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateStatus(id uint, status string) (*models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Status = status
			lead := s.leads[i]
			return &lead, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
