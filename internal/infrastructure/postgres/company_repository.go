package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements the CompanyRepository port on PostgreSQL (usable
// with pool or tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the persistence adapter for companies. Pass
// pool or tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// GetByID fetches a company by id.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	query := `
		SELECT id, uuid, name, sector, email, phone, website, vat_number, active,
		       street, number, box, postal_code, city
		FROM companies WHERE id = $1`
	var (
		c   entity.Company
		vat *string
	)
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.UUID, &c.Name, &c.Sector, &c.Email, &c.Phone, &c.Website, &vat, &c.Active,
		&c.Address.Street, &c.Address.Number, &c.Address.Box, &c.Address.PostalCode, &c.Address.City,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	if vat != nil {
		c.VATNumber = *vat
	}
	return &c, nil
}

// Update overwrites the mutable fields of a company.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, sector = $3, email = $4, phone = $5, website = $6,
			vat_number = $7, street = $8, number = $9, postal_code = $10, city = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Sector, company.Email, company.Phone, company.Website,
		company.VATNumber, company.Address.Street, company.Address.Number,
		company.Address.PostalCode, company.Address.City,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
