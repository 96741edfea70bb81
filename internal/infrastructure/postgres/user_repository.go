package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, role, salt, password_hash, password_changed`

// UserRepo implements the UserRepository port on PostgreSQL (usable with
// pool or tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the persistence adapter for users. Pass pool or
// tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.getWhere("id = $1", id)
}

// GetByEmail fetches a user by email address.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getWhere("email = $1", email)
}

// GetByUsername fetches a user by username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getWhere("username = $1", username)
}

func (r *UserRepo) getWhere(cond string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + cond
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.Role, &u.Salt, &u.PasswordHash, &u.PasswordChanged,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update persists profile changes (username, email, credential).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET username = $2, email = $3, password_hash = $4, password_changed = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.PasswordChanged,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// CompanyIDForUser resolves the membership join for the role. Returns zero
// when the user has no membership (administrators).
func (r *UserRepo) CompanyIDForUser(userID int64, role string) (int64, error) {
	var table string
	switch role {
	case entity.RoleBuyer:
		table = "buyer_memberships"
	case entity.RoleSupplier:
		table = "supplier_memberships"
	default:
		return 0, nil
	}
	var companyID int64
	err := r.q.QueryRow(context.Background(),
		`SELECT company_id FROM `+table+` WHERE user_id = $1`, userID).Scan(&companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("resolve membership: %w", err)
	}
	return companyID, nil
}

// FirstBuyerByCompany returns the lowest user id among the company's
// buyer-agents.
func (r *UserRepo) FirstBuyerByCompany(companyID int64) (int64, error) {
	var userID int64
	err := r.q.QueryRow(context.Background(), `
		SELECT user_id FROM buyer_memberships
		WHERE company_id = $1 ORDER BY user_id LIMIT 1`, companyID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("first buyer: %w", err)
	}
	return userID, nil
}

// SuppliersByCompany returns every supplier-agent of the company.
func (r *UserRepo) SuppliersByCompany(companyID int64) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.role, u.salt, u.password_hash, u.password_changed
		FROM users u
		JOIN supplier_memberships m ON m.user_id = u.id
		WHERE m.company_id = $1 ORDER BY u.id`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.Salt, &u.PasswordHash, &u.PasswordChanged); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
