package entity

// Address is the postal address of a company or order delivery.
type Address struct {
	Street     string
	Number     int
	Box        string
	PostalCode int
	City       string
}

// Company is a participant on the portal, acting as buyer and/or supplier
// through its user memberships.
type Company struct {
	ID        int64
	UUID      string
	Name      string
	Sector    string
	Email     string
	Phone     string
	Website   string
	VATNumber string // optional
	Active    bool
	Address   Address
}

// CompanyUpdateRequest is a staged edit of a company's mutable fields.
// At most one pending request exists per company; a new request replaces
// the previous one.
type CompanyUpdateRequest struct {
	ID        int64
	CompanyID int64
	Name      string
	Sector    string
	Email     string
	Phone     string
	Website   string
	VATNumber string
	Address   Address
}
