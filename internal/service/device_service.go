package service

import (
	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/repository"
	"device-warranty-server/pkg/warranty"
)

type DeviceService struct {
	repo      repository.DeviceRepository
	passports *PassportService
}

func NewDeviceService(repo repository.DeviceRepository, passports *PassportService) *DeviceService {
	return &DeviceService{
		repo:      repo,
		passports: passports,
	}
}

// Register creates a device owned by userID, or an anonymous one when
// userID is nil. The warranty expiration is computed from the resolved
// passport's warranty duration at registration time.
func (s *DeviceService) Register(req *domain.DeviceCreateRequest, userID *string) (*domain.Device, error) {
	if req.PurchaseDate.IsZero() {
		return nil, Validation("Purchase date is required")
	}

	passport, err := s.passports.FindBySerialNumber(req.SerialNumber)
	if err != nil {
		return nil, Validation("Invalid serial number")
	}

	existing, err := s.repo.FindBySerial(req.SerialNumber)
	if err != nil {
		return nil, OperationFailure("Unable to register device")
	}
	if existing != nil {
		return nil, Conflict("Device already registered")
	}

	expiration := warranty.ExpirationDate(req.PurchaseDate.Time, passport.WarrantyMonths)

	device := &domain.Device{
		SerialNumber:           req.SerialNumber,
		PurchaseDate:           req.PurchaseDate,
		WarrantyExpirationDate: domain.DateOf(expiration),
		Comment:                req.Comment,
		PassportID:             passport.ID,
		UserID:                 userID,
	}

	if err := s.repo.Create(device); err != nil {
		if isConstraintViolation(err) {
			return nil, Conflict("Device already registered")
		}
		return nil, OperationFailure("Unable to register device")
	}

	device.Passport = passport
	return device, nil
}

func (s *DeviceService) RegisterAnonymous(req *domain.DeviceCreateRequest) (*domain.Device, error) {
	return s.Register(req, nil)
}

// Find returns nil without an error when the serial is unknown, so
// existence probes can distinguish absence from failure.
func (s *DeviceService) Find(serialNumber string) (*domain.Device, error) {
	device, err := s.repo.FindBySerial(serialNumber)
	if err != nil {
		return nil, OperationFailure("Unable to load device")
	}
	return device, nil
}

// MustExist is the must-exist variant of Find.
func (s *DeviceService) MustExist(serialNumber string) (*domain.Device, error) {
	device, err := s.Find(serialNumber)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, NotFound("Device not registered")
	}
	return device, nil
}

// Update changes the purchase date and/or comment and recomputes the
// warranty expiration from the device's currently linked passport.
func (s *DeviceService) Update(serialNumber string, req *domain.DeviceUpdateRequest) (*domain.Device, error) {
	device, err := s.MustExist(serialNumber)
	if err != nil {
		return nil, err
	}

	if req.PurchaseDate != nil {
		if req.PurchaseDate.IsZero() {
			return nil, Validation("Purchase date is required")
		}
		device.PurchaseDate = *req.PurchaseDate
	}
	if req.Comment != nil {
		device.Comment = *req.Comment
	}

	if device.Passport != nil {
		expiration := warranty.ExpirationDate(device.PurchaseDate.Time, device.Passport.WarrantyMonths)
		device.WarrantyExpirationDate = domain.DateOf(expiration)
	}

	if err := s.repo.Update(device); err != nil {
		return nil, OperationFailure("Unable to update device")
	}

	return device, nil
}

func (s *DeviceService) Delete(serialNumber string) error {
	if err := s.repo.Delete(serialNumber); err != nil {
		if isRecordNotFound(err) {
			return NotFound("Device not registered")
		}
		return OperationFailure("Unable to delete device")
	}
	return nil
}

func (s *DeviceService) ListByUser(userID string) ([]domain.Device, error) {
	devices, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, OperationFailure("Unable to list devices")
	}
	if devices == nil {
		devices = []domain.Device{}
	}
	return devices, nil
}

// Claim links an anonymously registered device to a user.
func (s *DeviceService) Claim(serialNumber, userID string) error {
	device, err := s.repo.FindBySerial(serialNumber)
	if err != nil {
		return OperationFailure("Unable to load device")
	}
	if device == nil {
		return NotFound("Device not registered")
	}
	if device.UserID != nil {
		return Conflict("Device already registered")
	}

	device.UserID = &userID
	if err := s.repo.Update(device); err != nil {
		return OperationFailure("Unable to update device")
	}

	return nil
}
