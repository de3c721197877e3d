package repository

import (
	"device-warranty-server/internal/domain"

	"gorm.io/gorm"
)

type RenovationRepository interface {
	Create(renovation *domain.Renovation) error
	Delete(id int64) error
}

type renovationRepository struct {
	db *gorm.DB
}

func NewRenovationRepository(db *gorm.DB) RenovationRepository {
	return &renovationRepository{db: db}
}

func (r *renovationRepository) Create(renovation *domain.Renovation) error {
	return r.db.Create(renovation).Error
}

func (r *renovationRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Renovation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
