package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
	"github.com/talonbank/ledger/pkg/money"
	"github.com/talonbank/ledger/pkg/repository"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository on the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.BankAccount) error {
	record := accountToModel(a)
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *accountRepository) Get(ctx context.Context, accountNumber string) (*domain.BankAccount, error) {
	return r.get(ctx, r.db, accountNumber)
}

// GetForUpdate takes a SELECT ... FOR UPDATE lock on the account row, so
// two concurrent balance mutations against the same account cannot both
// read the same pre-update balance.
func (r *accountRepository) GetForUpdate(ctx context.Context, accountNumber string) (*domain.BankAccount, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), accountNumber)
}

func (r *accountRepository) get(ctx context.Context, db *gorm.DB, accountNumber string) (*domain.BankAccount, error) {
	var record Account
	err := db.WithContext(ctx).First(&record, "account_number = ?", accountNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accountToDomain(&record), nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	var records []Account
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("account_number").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	accounts := make([]*domain.BankAccount, 0, len(records))
	for i := range records {
		accounts = append(accounts, accountToDomain(&records[i]))
	}
	return accounts, nil
}

func (r *accountRepository) ExistsByUser(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Account{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) Update(ctx context.Context, accountNumber string, update dto.AccountUpdate) error {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.AccountType != nil {
		updates["account_type"] = *update.AccountType
	}
	if update.Balance != nil {
		updates["balance"] = *update.Balance
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_number = ?", accountNumber).
		Updates(updates).Error
}

func (r *accountRepository) Delete(ctx context.Context, accountNumber string) error {
	return r.db.WithContext(ctx).Delete(&Account{}, "account_number = ?", accountNumber).Error
}

func accountToModel(a *domain.BankAccount) Account {
	return Account{
		AccountNumber: a.AccountNumber,
		UserID:        a.UserID,
		Name:          a.Name,
		AccountType:   a.AccountType,
		SortCode:      a.SortCode,
		Balance:       a.Balance.Minor(),
		Currency:      a.Currency,
	}
}

func accountToDomain(record *Account) *domain.BankAccount {
	return &domain.BankAccount{
		AccountNumber: record.AccountNumber,
		UserID:        record.UserID,
		Name:          record.Name,
		AccountType:   record.AccountType,
		SortCode:      record.SortCode,
		Balance:       money.FromMinor(record.Balance),
		Currency:      record.Currency,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
