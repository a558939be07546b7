package user

import (
	"time"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
)

// AddressInput is the postal address block of a user request.
type AddressInput struct {
	Line1    string `json:"line1" validate:"required"`
	Line2    string `json:"line2"`
	Line3    string `json:"line3"`
	Town     string `json:"town" validate:"required"`
	County   string `json:"county" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
}

// CreateUserRequest is the request body for registering a user.
type CreateUserRequest struct {
	Name        string       `json:"name" validate:"required,max=100"`
	Address     AddressInput `json:"address" validate:"required"`
	PhoneNumber string       `json:"phoneNumber" validate:"required,max=20"`
	Email       string       `json:"email" validate:"required,email,max=100"`
	Password    string       `json:"password" validate:"required,min=8,max=72"`
}

// UpdateUserRequest is the request body for a partial user update. Absent
// fields are left unchanged.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Line1       *string `json:"line1,omitempty"`
	Line2       *string `json:"line2,omitempty"`
	Line3       *string `json:"line3,omitempty"`
	Town        *string `json:"town,omitempty"`
	County      *string `json:"county,omitempty"`
	Postcode    *string `json:"postcode,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
}

func (r *UpdateUserRequest) toUpdate() dto.UserUpdate {
	return dto.UserUpdate{
		Name:        r.Name,
		Line1:       r.Line1,
		Line2:       r.Line2,
		Line3:       r.Line3,
		Town:        r.Town,
		County:      r.County,
		Postcode:    r.Postcode,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
	}
}

// AddressResponse mirrors AddressInput on the way out.
type AddressResponse struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// UserResponse is the user representation returned to clients. The
// password hash never leaves the service.
type UserResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Address          AddressResponse `json:"address"`
	PhoneNumber      string          `json:"phoneNumber"`
	Email            string          `json:"email"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
	UpdatedTimestamp time.Time       `json:"updatedTimestamp"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:   u.ID,
		Name: u.Name,
		Address: AddressResponse{
			Line1:    u.Address.Line1,
			Line2:    u.Address.Line2,
			Line3:    u.Address.Line3,
			Town:     u.Address.Town,
			County:   u.Address.County,
			Postcode: u.Address.Postcode,
		},
		PhoneNumber:      u.PhoneNumber,
		Email:            u.Email,
		CreatedTimestamp: u.CreatedAt,
		UpdatedTimestamp: u.UpdatedAt,
	}
}
