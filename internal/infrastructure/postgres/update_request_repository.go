package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

var _ repository.UpdateRequestRepository = (*UpdateRequestRepo)(nil)

// UpdateRequestRepo implements the UpdateRequestRepository port on
// PostgreSQL (usable with pool or tx).
type UpdateRequestRepo struct {
	q Querier
}

// NewUpdateRequestRepository builds the persistence adapter for staged
// company edits. Pass pool or tx (Querier).
func NewUpdateRequestRepository(q Querier) *UpdateRequestRepo {
	return &UpdateRequestRepo{q: q}
}

// Create inserts a new pending request.
func (r *UpdateRequestRepo) Create(req *entity.CompanyUpdateRequest) error {
	query := `
		INSERT INTO company_update_requests
			(company_id, name, sector, email, phone, website, vat_number, street, number, box, postal_code, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		req.CompanyID, req.Name, req.Sector, req.Email, req.Phone, req.Website, req.VATNumber,
		req.Address.Street, req.Address.Number, req.Address.Box, req.Address.PostalCode, req.Address.City,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert update request: %w", err)
	}
	return nil
}

// GetByCompany returns the pending request for the company, or nil.
func (r *UpdateRequestRepo) GetByCompany(companyID int64) (*entity.CompanyUpdateRequest, error) {
	query := `
		SELECT id, company_id, name, sector, email, phone, website, vat_number,
		       street, number, box, postal_code, city
		FROM company_update_requests WHERE company_id = $1 LIMIT 1`
	var (
		req entity.CompanyUpdateRequest
		vat *string
	)
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&req.ID, &req.CompanyID, &req.Name, &req.Sector, &req.Email, &req.Phone, &req.Website, &vat,
		&req.Address.Street, &req.Address.Number, &req.Address.Box, &req.Address.PostalCode, &req.Address.City,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get update request: %w", err)
	}
	if vat != nil {
		req.VATNumber = *vat
	}
	return &req, nil
}

// DeleteByCompany removes any pending request for the company.
func (r *UpdateRequestRepo) DeleteByCompany(companyID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM company_update_requests WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete update request: %w", err)
	}
	return nil
}
