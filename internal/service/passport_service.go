package service

import (
	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/repository"

	"go.uber.org/zap"
)

type PassportService struct {
	repo   repository.PassportRepository
	logger *zap.Logger
}

func NewPassportService(repo repository.PassportRepository, logger *zap.Logger) *PassportService {
	return &PassportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PassportService) Create(req *domain.PassportCreateRequest) (*domain.Passport, error) {
	if req.FromSerialNumber > req.ToSerialNumber {
		return nil, Validation("Invalid serial number range")
	}

	if err := s.checkOverlap(req.SerialPrefix, req.FromSerialNumber, req.ToSerialNumber, 0); err != nil {
		return nil, err
	}

	passport := &domain.Passport{
		Name:             req.Name,
		Model:            req.Model,
		SerialPrefix:     req.SerialPrefix,
		FromSerialNumber: req.FromSerialNumber,
		ToSerialNumber:   req.ToSerialNumber,
		WarrantyMonths:   req.WarrantyMonths,
	}

	if err := s.repo.Create(passport); err != nil {
		if isConstraintViolation(err) {
			// A concurrent creation slipped past the read-then-check; the
			// database exclusion constraint caught it.
			return nil, Conflict("Serial number already exists")
		}
		return nil, OperationFailure("Unable to save passport")
	}

	return passport, nil
}

func (s *PassportService) Update(id int64, req *domain.PassportUpdateRequest) (*domain.Passport, error) {
	passport, err := s.repo.FindByID(id)
	if err != nil {
		return nil, OperationFailure("Unable to load passport")
	}
	if passport == nil {
		return nil, NotFound("Passport not found")
	}

	if req.FromSerialNumber > req.ToSerialNumber {
		return nil, Validation("Invalid serial number range")
	}

	if err := s.checkOverlap(req.SerialPrefix, req.FromSerialNumber, req.ToSerialNumber, id); err != nil {
		return nil, err
	}

	passport.Name = req.Name
	passport.Model = req.Model
	passport.SerialPrefix = req.SerialPrefix
	passport.FromSerialNumber = req.FromSerialNumber
	passport.ToSerialNumber = req.ToSerialNumber
	passport.WarrantyMonths = req.WarrantyMonths

	// Warranty changes apply to devices registered from now on; existing
	// devices keep the expiration computed at registration.
	if err := s.repo.Update(passport); err != nil {
		if isConstraintViolation(err) {
			return nil, Conflict("Serial number already exists")
		}
		return nil, OperationFailure("Unable to save passport")
	}

	return passport, nil
}

func (s *PassportService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return NotFound("Passport not found")
		}
		return OperationFailure("Unable to delete passport")
	}
	return nil
}

func (s *PassportService) GetPassports(page, size int) (*domain.Page[domain.Passport], error) {
	if page < 1 || size < 1 {
		return nil, Validation("Invalid page")
	}

	passports, total, err := s.repo.List((page-1)*size, size)
	if err != nil {
		return nil, OperationFailure("Unable to list passports")
	}

	result := domain.NewPage(passports, page, size, total)
	return &result, nil
}

// FindBySerialNumber resolves a serial number to the unique passport whose
// prefix and numeric range accept it.
func (s *PassportService) FindBySerialNumber(serialNumber string) (*domain.Passport, error) {
	candidates, err := s.repo.FindByPrefixOf(serialNumber)
	if err != nil {
		return nil, OperationFailure("Unable to load passports")
	}

	matches := domain.MatchingPassports(serialNumber, candidates)
	if len(matches) == 0 {
		return nil, NotFound("Invalid serial number")
	}

	if len(matches) > 1 {
		// Ranges are disjoint per prefix at write time; more than one match
		// means the data was edited directly. Resolve deterministically and
		// flag it.
		s.logger.Warn("serial number matches multiple passports",
			zap.String("serialNumber", serialNumber),
			zap.Int64("resolvedPassportId", matches[0].ID),
			zap.Int("matchCount", len(matches)),
		)
	}

	return &matches[0], nil
}

func (s *PassportService) checkOverlap(prefix string, from, to int, excludingID int64) error {
	existing, err := s.repo.FindByPrefix(prefix)
	if err != nil {
		return OperationFailure("Unable to load passports")
	}

	for _, p := range existing {
		if p.ID == excludingID {
			continue
		}
		if domain.RangesOverlap(from, to, p.FromSerialNumber, p.ToSerialNumber) {
			return Conflict("Serial number already exists")
		}
	}

	return nil
}
