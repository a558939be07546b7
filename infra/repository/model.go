// Package repository contains the gorm implementations of the persistence
// contracts in pkg/repository.
package repository

import (
	"time"

	"gorm.io/gorm"
)

// User is the database record for a user. The address row is owned by the
// user and removed with it.
type User struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Password    string `gorm:"not null"`
	AddressID   string
	Address     Address `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE"`
	PhoneNumber string  `gorm:"not null"`
	Email       string  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string { return "users" }

// Address is the database record for a user's postal address.
type Address struct {
	ID        string `gorm:"primaryKey"`
	Line1     string `gorm:"not null"`
	Line2     string
	Line3     string
	Town      string `gorm:"not null"`
	County    string `gorm:"not null"`
	Postcode  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Address) TableName() string { return "addresses" }

// Account is the database record for a bank account. Balance is stored in
// minor units.
type Account struct {
	AccountNumber string `gorm:"primaryKey"`
	UserID        string `gorm:"index;not null"`
	Name          string `gorm:"not null"`
	AccountType   string `gorm:"not null"`
	SortCode      string `gorm:"not null"`
	Balance       int64  `gorm:"not null"`
	Currency      string `gorm:"type:varchar(3);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Account) TableName() string { return "accounts" }

// Transaction is the database record for a ledger entry. Rows are
// append-only.
type Transaction struct {
	ID            string `gorm:"primaryKey"`
	AccountNumber string `gorm:"index;not null"`
	Amount        int64  `gorm:"not null"`
	Currency      string `gorm:"type:varchar(3);not null"`
	Type          string `gorm:"not null"`
	CreatedAt     time.Time
}

func (Transaction) TableName() string { return "transactions" }

// Sequence backs the per-kind identifier counters.
type Sequence struct {
	Kind  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

func (Sequence) TableName() string { return "sequences" }

// Migrate creates or updates the schema for all ledger tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Address{},
		&User{},
		&Account{},
		&Transaction{},
		&Sequence{},
	)
}
