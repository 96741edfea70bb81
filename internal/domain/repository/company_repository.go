package repository

import "github.com/bvanacker/bestelportaal-api/internal/domain/entity"

// CompanyRepository data access for companies.
type CompanyRepository interface {
	GetByID(id int64) (*entity.Company, error)
	Update(company *entity.Company) error
}

// UpdateRequestRepository data access for staged company edits.
type UpdateRequestRepository interface {
	Create(req *entity.CompanyUpdateRequest) error
	GetByCompany(companyID int64) (*entity.CompanyUpdateRequest, error)
	DeleteByCompany(companyID int64) error
}
