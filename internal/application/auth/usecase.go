package auth

import (
	"strings"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
	"github.com/bvanacker/bestelportaal-api/pkg/jwt"
	"github.com/bvanacker/bestelportaal-api/pkg/password"
)

// AuthUseCase handles login: credential verification and token issuing.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   jwt.Config
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg jwt.Config) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies the credentials and returns a signed token plus the user.
// The username field doubles as email when it contains an '@'.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(in.Username, "@") {
		user, err = uc.userRepo.GetByEmail(in.Username)
	} else {
		user, err = uc.userRepo.GetByUsername(in.Username)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !password.Verify(in.Password, user.Salt, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	companyID, err := uc.userRepo.CompanyIDForUser(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg, user.ID, user.Role, companyID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user, companyID)
	return &dto.LoginResponse{Token: token, User: resp}, nil
}
