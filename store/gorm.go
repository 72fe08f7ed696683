package store

import (
	"errors"

	"gorm.io/gorm"

	"quickfix/models"
)

// GormStore persists leads in postgres through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Save(lead *models.Lead) error {
	return s.db.Create(lead).Error
}

func (s *GormStore) List(filter ListFilter) ([]models.Lead, error) {
	query := s.db.Order("id DESC")
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *GormStore) Get(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.First(&lead, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (s *GormStore) UpdateStatus(id uint, status string) (*models.Lead, error) {
	lead, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	lead.Status = status
	if err := s.db.Model(&models.Lead{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *GormStore) Delete(id uint) error {
	result := s.db.Delete(&models.Lead{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
