package service

import (
	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/repository"
)

type RenovationService struct {
	repo    repository.RenovationRepository
	devices *DeviceService
}

func NewRenovationService(repo repository.RenovationRepository, devices *DeviceService) *RenovationService {
	return &RenovationService{
		repo:    repo,
		devices: devices,
	}
}

// Create records a repair event for an existing device. Renovations are
// immutable once created.
func (s *RenovationService) Create(req *domain.RenovationCreateRequest) (*domain.Renovation, error) {
	if req.Date.IsZero() {
		return nil, Validation("Renovation date is required")
	}

	device, err := s.devices.MustExist(req.DeviceSerial)
	if err != nil {
		return nil, err
	}

	renovation := &domain.Renovation{
		Description:        req.Description,
		RenovationDate:     req.Date,
		DeviceSerialNumber: device.SerialNumber,
	}

	if err := s.repo.Create(renovation); err != nil {
		return nil, OperationFailure("Unable to save renovation")
	}

	return renovation, nil
}

func (s *RenovationService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return NotFound("Renovation not found")
		}
		return OperationFailure("Unable to delete renovation")
	}
	return nil
}
