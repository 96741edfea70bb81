package repository

import "github.com/bvanacker/bestelportaal-api/internal/domain/entity"

// UserRepository data access for portal accounts and their company
// memberships.
type UserRepository interface {
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error

	// CompanyIDForUser resolves the company a buyer or supplier belongs
	// to through the role-specific membership join. Administrators have
	// no membership; the result is then zero.
	CompanyIDForUser(userID int64, role string) (int64, error)

	// FirstBuyerByCompany returns the id of an arbitrary buyer-agent of
	// the company (the first by id).
	FirstBuyerByCompany(companyID int64) (int64, error)

	// SuppliersByCompany returns every supplier-agent of the company.
	SuppliersByCompany(companyID int64) ([]*entity.User, error)
}
