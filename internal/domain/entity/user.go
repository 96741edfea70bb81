package entity

// User roles. The role doubles as the discriminator of the company
// membership join: buyers and suppliers each belong to exactly one
// company, administrators to none.
const (
	RoleBuyer    = "Klant"
	RoleSupplier = "Leverancier"
	RoleAdmin    = "Administrator"
)

// User is a portal account.
type User struct {
	ID              int64
	Username        string
	Email           string
	Role            string
	Salt            string
	PasswordHash    string
	PasswordChanged bool
}

// Session is the verified token content attached to a request.
type Session struct {
	UserID    int64
	Role      string
	CompanyID int64 // zero for administrators
}
