package dto

import "github.com/bvanacker/bestelportaal-api/internal/domain/entity"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse deliberately omits the credential columns.
type UserResponse struct {
	ID              int64  `json:"id"`
	Username        string `json:"gebruikersnaam"`
	Email           string `json:"email"`
	Role            string `json:"rol"`
	PasswordChanged bool   `json:"isWachtwoordVeranderd"`
	CompanyID       int64  `json:"bedrijfId"`
}

type UpdateUserRequest struct {
	Username string `json:"gebruikersnaam"`
	Email    string `json:"email"`
	Password string `json:"wachtwoord"`
}

func NewUserResponse(u *entity.User, companyID int64) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Role:            u.Role,
		PasswordChanged: u.PasswordChanged,
		CompanyID:       companyID,
	}
}
