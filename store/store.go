package store

import (
	"errors"

	"quickfix/models"
)

// ErrNotFound is returned when a lead id does not exist.
var ErrNotFound = errors.New("lead not found")

// ListFilter narrows List results. The zero value returns every lead.
type ListFilter struct {
	Status string
	Limit  int
}

// LeadStore is the persistence boundary for leads. The intake pipeline and
// the dashboard API only see this interface; switching the in-memory store
// for postgres is a configuration change, not a code change.
type LeadStore interface {
	Save(lead *models.Lead) error
	List(filter ListFilter) ([]models.Lead, error)
	Get(id uint) (*models.Lead, error)
	UpdateStatus(id uint, status string) (*models.Lead, error)
	Delete(id uint) error
}
