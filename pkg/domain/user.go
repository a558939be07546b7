package domain

import "time"

// Address is the postal address owned by exactly one user. It has no
// independent lifecycle: it is created with the user and removed with the
// user, and is never referenced outside its owner.
type Address struct {
	ID        string
	Line1     string
	Line2     string
	Line3     string
	Town      string
	County    string
	Postcode  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is a registered customer. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID          string
	Name        string
	Password    string
	Address     Address
	PhoneNumber string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser assembles a user from pre-allocated identifiers and an already
// hashed password.
func NewUser(id string, name string, address Address, phoneNumber, email, hashedPassword string) *User {
	now := time.Now().UTC()
	address.CreatedAt = now
	address.UpdatedAt = now
	return &User{
		ID:          id,
		Name:        name,
		Password:    hashedPassword,
		Address:     address,
		PhoneNumber: phoneNumber,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
