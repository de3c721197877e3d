package service

import (
	"time"

	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/repository"
	"device-warranty-server/pkg/hash"
	"device-warranty-server/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo      repository.UserRepository
	devices       *DeviceService
	logger        *zap.Logger
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(userRepo repository.UserRepository, devices *DeviceService, logger *zap.Logger, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		devices:       devices,
		logger:        logger,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a USER account. When the request carries a serial number
// of an anonymously registered device, the device is claimed for the new
// account; a failed claim does not fail the registration.
func (s *AuthService) Register(req *domain.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, OperationFailure("Unable to register user")
	}
	if existing != nil {
		return nil, Conflict("Email already taken")
	}

	existing, err = s.userRepo.FindByPhone(req.Phone)
	if err != nil {
		return nil, OperationFailure("Unable to register user")
	}
	if existing != nil {
		return nil, Conflict("Phone already taken")
	}

	hashedPassword, err := hash.Hash(req.Password)
	if err != nil {
		return nil, Validation(err.Error())
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hashedPassword,
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Role:      domain.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		if isConstraintViolation(err) {
			return nil, Conflict("Email already taken")
		}
		return nil, OperationFailure("Unable to register user")
	}

	if req.SerialNumber != "" {
		if err := s.devices.Claim(req.SerialNumber, user.ID); err != nil {
			s.logger.Warn("device claim during registration failed",
				zap.String("serialNumber", req.SerialNumber),
				zap.String("userId", user.ID),
				zap.Error(err),
			)
		}
	}

	return user, nil
}

// Login verifies email and password and issues a role-carrying token.
// Unknown user and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Username)
	if err != nil {
		return nil, OperationFailure("Unable to log in")
	}
	if user == nil {
		return nil, Unauthorized("Wrong credentials!")
	}

	if err := hash.Compare(user.Password, req.Password); err != nil {
		return nil, Unauthorized("Wrong credentials!")
	}

	token, err := jwt.GenerateToken(user.ID, string(user.Role), s.jwtExpiration, s.jwtSecret)
	if err != nil {
		return nil, OperationFailure("Unable to log in")
	}

	return &domain.LoginResponse{Token: token}, nil
}
