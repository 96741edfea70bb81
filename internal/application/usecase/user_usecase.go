package usecase

import (
	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
	"github.com/bvanacker/bestelportaal-api/pkg/password"
)

// UserUseCase serves user profiles and self-service updates.
type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// GetByID returns a user profile. Callers may only read themselves.
func (uc *UserUseCase) GetByID(sess entity.Session, id int64) (*dto.UserResponse, error) {
	if sess.UserID != id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewUserResponse(user, sess.CompanyID)
	return &resp, nil
}

// Update changes the caller's own username, email and/or password.
// Password changes rehash with the stored salt and flip the
// password-changed flag, which the portal uses to drop the
// first-login prompt.
func (uc *UserUseCase) Update(sess entity.Session, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if sess.UserID != id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		user.PasswordHash = password.Hash(in.Password, user.Salt)
		user.PasswordChanged = true
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user, sess.CompanyID)
	return &resp, nil
}
