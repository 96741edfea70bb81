package dto

import "github.com/bvanacker/bestelportaal-api/internal/domain/entity"

type AddressResponse struct {
	Box        string `json:"bus"`
	City       string `json:"gemeente"`
	Number     int    `json:"huisnummer"`
	PostalCode int    `json:"postcode"`
	Street     string `json:"straat"`
}

type CompanyResponse struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	Active    bool            `json:"isActief"`
	Name      string          `json:"naam"`
	Sector    string          `json:"sector"`
	Phone     string          `json:"telefoonnummer"`
	UUID      string          `json:"uuid"`
	Website   string          `json:"website"`
	Address   AddressResponse `json:"adres"`
	VATNumber string          `json:"BTWNr"`
}

// CompanyUpdateRequestBody mirrors the form the portal submits when a
// company asks an administrator to change its details.
type CompanyUpdateRequestBody struct {
	CompanyID  int64  `json:"BEDRIJFID"`
	Email      string `json:"EMAIL"`
	Name       string `json:"NAAM"`
	Sector     string `json:"SECTOR"`
	Phone      string `json:"TELEFOONNUMMER"`
	Website    string `json:"WEBSITEURL"`
	City       string `json:"GEMEENTE"`
	Number     int    `json:"HUISNUMMER"`
	PostalCode int    `json:"POSTCODE"`
	Street     string `json:"STRAAT"`
	VATNumber  string `json:"BTWNr"`
}

type CompanyUpdateRequestResponse struct {
	ID int64 `json:"id"`
}

func NewCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Email:     c.Email,
		Active:    c.Active,
		Name:      c.Name,
		Sector:    c.Sector,
		Phone:     c.Phone,
		UUID:      c.UUID,
		Website:   c.Website,
		VATNumber: c.VATNumber,
		Address: AddressResponse{
			Box:        c.Address.Box,
			City:       c.Address.City,
			Number:     c.Address.Number,
			PostalCode: c.Address.PostalCode,
			Street:     c.Address.Street,
		},
	}
}
