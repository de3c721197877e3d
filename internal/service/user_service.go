package service

import (
	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/repository"
	"device-warranty-server/pkg/hash"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, OperationFailure("Unable to load user")
	}
	if user == nil {
		return nil, NotFound("User not found")
	}
	return user, nil
}

// Update applies the non-nil fields of the request to the user's profile.
func (s *UserService) Update(id string, req *domain.UserUpdateRequest) (*domain.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil && *req.Phone != user.Phone {
		taken, err := s.userRepo.FindByPhone(*req.Phone)
		if err != nil {
			return nil, OperationFailure("Unable to update user")
		}
		if taken != nil {
			return nil, Conflict("Phone already taken")
		}
		user.Phone = *req.Phone
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}

	if err := s.userRepo.Update(user); err != nil {
		if isConstraintViolation(err) {
			return nil, Conflict("Phone already taken")
		}
		return nil, OperationFailure("Unable to update user")
	}

	return user, nil
}

func (s *UserService) ChangePassword(id string, req *domain.ChangePasswordRequest) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := hash.Compare(user.Password, req.OldPassword); err != nil {
		return Unauthorized("Wrong credentials!")
	}

	hashedPassword, err := hash.Hash(req.NewPassword)
	if err != nil {
		return Validation(err.Error())
	}

	user.Password = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		return OperationFailure("Unable to change password")
	}

	return nil
}

func (s *UserService) GetUsers(page, size int) (*domain.Page[domain.User], error) {
	if page < 1 || size < 1 {
		return nil, Validation("Invalid page")
	}

	users, total, err := s.userRepo.List((page-1)*size, size)
	if err != nil {
		return nil, OperationFailure("Unable to list users")
	}

	result := domain.NewPage(users, page, size, total)
	return &result, nil
}
