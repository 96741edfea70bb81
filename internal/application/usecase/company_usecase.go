package usecase

import (
	"context"

	"github.com/bvanacker/bestelportaal-api/internal/application/dto"
	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

// CompanyUseCase serves company profiles and the update-request flow:
// a company files a change request, an administrator applies it.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	reqRepo     repository.UpdateRequestRepository
	txRunner    UpdateRequestTxRunner
}

func NewCompanyUseCase(companyRepo repository.CompanyRepository, reqRepo repository.UpdateRequestRepository, txRunner UpdateRequestTxRunner) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, reqRepo: reqRepo, txRunner: txRunner}
}

func (uc *CompanyUseCase) GetByID(id int64) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

// GetOwn returns the caller's own company profile. Sessions without a
// company membership (administrators) have no own profile.
func (uc *CompanyUseCase) GetOwn(sess entity.Session) (*dto.CompanyResponse, error) {
	if sess.CompanyID == 0 {
		return nil, domain.ErrUnauthorized
	}
	return uc.GetByID(sess.CompanyID)
}

// RequestUpdate files a change request for the caller's own company. A
// newer request replaces any pending one; the swap runs in a single
// transaction so a pending request never disappears without a successor.
func (uc *CompanyUseCase) RequestUpdate(sess entity.Session, in dto.CompanyUpdateRequestBody) (*dto.CompanyUpdateRequestResponse, error) {
	if sess.CompanyID == 0 || in.CompanyID != sess.CompanyID {
		return nil, domain.ErrUnauthorized
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	req := &entity.CompanyUpdateRequest{
		CompanyID: in.CompanyID,
		Name:      in.Name,
		Sector:    in.Sector,
		Email:     in.Email,
		Phone:     in.Phone,
		Website:   in.Website,
		VATNumber: in.VATNumber,
		Address: entity.Address{
			Street:     in.Street,
			Number:     in.Number,
			PostalCode: in.PostalCode,
			City:       in.City,
		},
	}
	err = uc.txRunner.RunUpdateRequest(context.Background(), func(reqRepo repository.UpdateRequestRepository) error {
		if err := reqRepo.DeleteByCompany(in.CompanyID); err != nil {
			return err
		}
		return reqRepo.Create(req)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CompanyUpdateRequestResponse{ID: req.ID}, nil
}

// PendingRequest returns the open update request for a company, or nil.
func (uc *CompanyUseCase) PendingRequest(companyID int64) (*entity.CompanyUpdateRequest, error) {
	return uc.reqRepo.GetByCompany(companyID)
}

// ApplyUpdate copies the pending request onto the company profile and
// clears it. Administrator only; enforced at the route.
func (uc *CompanyUseCase) ApplyUpdate(companyID int64) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	req, err := uc.reqRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}

	company.Name = req.Name
	company.Sector = req.Sector
	company.Email = req.Email
	company.Phone = req.Phone
	company.Website = req.Website
	company.VATNumber = req.VATNumber
	company.Address.Street = req.Address.Street
	company.Address.Number = req.Address.Number
	company.Address.PostalCode = req.Address.PostalCode
	company.Address.City = req.Address.City

	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	if err := uc.reqRepo.DeleteByCompany(companyID); err != nil {
		return nil, err
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}
