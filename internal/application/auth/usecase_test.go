package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvanacker/bestelportaal-api/internal/application/auth"
	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/pkg/jwt"
	"github.com/bvanacker/bestelportaal-api/pkg/password"
)

type stubUserRepo struct {
	user      *entity.User
	companyID int64
}

func (s *stubUserRepo) GetByID(id int64) (*entity.User, error) { return nil, nil }

func (s *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) GetByUsername(username string) (*entity.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) Update(*entity.User) error { return nil }

func (s *stubUserRepo) CompanyIDForUser(int64, string) (int64, error) { return s.companyID, nil }

func (s *stubUserRepo) FirstBuyerByCompany(int64) (int64, error) { return 0, nil }

func (s *stubUserRepo) SuppliersByCompany(int64) ([]*entity.User, error) { return nil, nil }

func jwtCfg() jwt.Config {
	return jwt.Config{
		Secret:   "test-secret-key-for-unit-tests",
		Issuer:   "bestelportaal-test",
		Audience: "bestelportaal-test",
		Expiry:   time.Hour,
	}
}

func repoWithUser() *stubUserRepo {
	return &stubUserRepo{
		user: &entity.User{
			ID:           5,
			Username:     "klant1_techhub_belgium",
			Email:        "klant1@techhub_belgium.com",
			Role:         entity.RoleBuyer,
			Salt:         "vaste-salt",
			PasswordHash: password.Hash("wachtwoord", "vaste-salt"),
		},
		companyID: 10,
	}
}

func TestLogin_WithUsername(t *testing.T) {
	uc := auth.NewAuthUseCase(repoWithUser(), jwtCfg())

	out, err := uc.Login(dto.LoginRequest{Username: "klant1_techhub_belgium", Password: "wachtwoord"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), out.User.ID)
	assert.Equal(t, int64(10), out.User.CompanyID)
	assert.Equal(t, entity.RoleBuyer, out.User.Role)

	userID, role, companyID, err := jwt.Parse(jwtCfg(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
	assert.Equal(t, entity.RoleBuyer, role)
	assert.Equal(t, int64(10), companyID)
}

func TestLogin_EmailWhenIdentifierContainsAt(t *testing.T) {
	uc := auth.NewAuthUseCase(repoWithUser(), jwtCfg())

	out, err := uc.Login(dto.LoginRequest{Username: "klant1@techhub_belgium.com", Password: "wachtwoord"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.User.ID)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := auth.NewAuthUseCase(&stubUserRepo{}, jwtCfg())

	_, err := uc.Login(dto.LoginRequest{Username: "spook", Password: "wachtwoord"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := auth.NewAuthUseCase(repoWithUser(), jwtCfg())

	_, err := uc.Login(dto.LoginRequest{Username: "klant1_techhub_belgium", Password: "fout"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
