package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
	"github.com/talonbank/ledger/pkg/repository"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository on the given session.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	record := userToModel(u)
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *userRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	var record User
	err := r.db.WithContext(ctx).Preload("Address").First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userToDomain(&record), nil
}

func (r *userRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(ctx context.Context, id string, update dto.UserUpdate) error {
	var record User
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return err
	}

	userUpdates := make(map[string]any)
	if update.Name != nil {
		userUpdates["name"] = *update.Name
	}
	if update.PhoneNumber != nil {
		userUpdates["phone_number"] = *update.PhoneNumber
	}
	if update.Email != nil {
		userUpdates["email"] = *update.Email
	}
	if len(userUpdates) > 0 {
		if err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(userUpdates).Error; err != nil {
			return err
		}
	}

	addressUpdates := make(map[string]any)
	if update.Line1 != nil {
		addressUpdates["line1"] = *update.Line1
	}
	if update.Line2 != nil {
		addressUpdates["line2"] = *update.Line2
	}
	if update.Line3 != nil {
		addressUpdates["line3"] = *update.Line3
	}
	if update.Town != nil {
		addressUpdates["town"] = *update.Town
	}
	if update.County != nil {
		addressUpdates["county"] = *update.County
	}
	if update.Postcode != nil {
		addressUpdates["postcode"] = *update.Postcode
	}
	if len(addressUpdates) > 0 {
		if err := r.db.WithContext(ctx).Model(&Address{}).Where("id = ?", record.AddressID).Updates(addressUpdates).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	var record User
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error; err != nil {
		return err
	}
	// The address has no life of its own; remove it with its owner.
	return r.db.WithContext(ctx).Delete(&Address{}, "id = ?", record.AddressID).Error
}

func userToModel(u *domain.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Password:  u.Password,
		AddressID: u.Address.ID,
		Address: Address{
			ID:       u.Address.ID,
			Line1:    u.Address.Line1,
			Line2:    u.Address.Line2,
			Line3:    u.Address.Line3,
			Town:     u.Address.Town,
			County:   u.Address.County,
			Postcode: u.Address.Postcode,
		},
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
	}
}

func userToDomain(record *User) *domain.User {
	return &domain.User{
		ID:       record.ID,
		Name:     record.Name,
		Password: record.Password,
		Address: domain.Address{
			ID:        record.Address.ID,
			Line1:     record.Address.Line1,
			Line2:     record.Address.Line2,
			Line3:     record.Address.Line3,
			Town:      record.Address.Town,
			County:    record.Address.County,
			Postcode:  record.Address.Postcode,
			CreatedAt: record.Address.CreatedAt,
			UpdatedAt: record.Address.UpdatedAt,
		},
		PhoneNumber: record.PhoneNumber,
		Email:       record.Email,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
