package repository

import (
	"errors"
	"fmt"

	"device-warranty-server/internal/domain"

	"gorm.io/gorm"
)

type PassportRepository interface {
	Create(passport *domain.Passport) error
	FindByID(id int64) (*domain.Passport, error)
	FindByPrefix(prefix string) ([]domain.Passport, error)
	FindByPrefixOf(serialNumber string) ([]domain.Passport, error)
	Update(passport *domain.Passport) error
	Delete(id int64) error
	List(offset, limit int) ([]domain.Passport, int64, error)
}

type passportRepository struct {
	db *gorm.DB
}

func NewPassportRepository(db *gorm.DB) PassportRepository {
	return &passportRepository{db: db}
}

func (r *passportRepository) Create(passport *domain.Passport) error {
	return r.db.Create(passport).Error
}

func (r *passportRepository) FindByID(id int64) (*domain.Passport, error) {
	var passport domain.Passport
	err := r.db.First(&passport, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find passport by id: %w", err)
	}
	return &passport, nil
}

func (r *passportRepository) FindByPrefix(prefix string) ([]domain.Passport, error) {
	var passports []domain.Passport
	err := r.db.Where("serial_prefix = ?", prefix).Order("id").Find(&passports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find passports by prefix: %w", err)
	}
	return passports, nil
}

// FindByPrefixOf returns the passports whose prefix starts the given serial
// number; the numeric range check happens in the domain layer.
func (r *passportRepository) FindByPrefixOf(serialNumber string) ([]domain.Passport, error) {
	var passports []domain.Passport
	err := r.db.Where("? LIKE serial_prefix || '%'", serialNumber).Order("id").Find(&passports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find passports for serial: %w", err)
	}
	return passports, nil
}

func (r *passportRepository) Update(passport *domain.Passport) error {
	return r.db.Save(passport).Error
}

func (r *passportRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Passport{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *passportRepository) List(offset, limit int) ([]domain.Passport, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Passport{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count passports: %w", err)
	}

	var passports []domain.Passport
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&passports).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list passports: %w", err)
	}

	return passports, total, nil
}
