package repository

import (
	"errors"
	"fmt"

	"device-warranty-server/internal/domain"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	Create(device *domain.Device) error
	FindBySerial(serialNumber string) (*domain.Device, error)
	FindByUser(userID string) ([]domain.Device, error)
	Update(device *domain.Device) error
	Delete(serialNumber string) error
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(device *domain.Device) error {
	// Passport and renovations are managed through their own repositories.
	return r.db.Omit("Passport", "Renovations").Create(device).Error
}

func (r *deviceRepository) FindBySerial(serialNumber string) (*domain.Device, error) {
	var device domain.Device
	err := r.db.
		Preload("Passport").
		Preload("Renovations").
		First(&device, "serial_number = ?", serialNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find device by serial: %w", err)
	}
	return &device, nil
}

func (r *deviceRepository) FindByUser(userID string) ([]domain.Device, error) {
	var devices []domain.Device
	err := r.db.
		Preload("Passport").
		Preload("Renovations").
		Where("user_id = ?", userID).
		Order("serial_number").
		Find(&devices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list devices for user: %w", err)
	}
	return devices, nil
}

func (r *deviceRepository) Update(device *domain.Device) error {
	return r.db.Omit("Passport", "Renovations").Save(device).Error
}

func (r *deviceRepository) Delete(serialNumber string) error {
	result := r.db.Delete(&domain.Device{}, "serial_number = ?", serialNumber)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
