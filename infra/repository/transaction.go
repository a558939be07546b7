package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/money"
	"github.com/talonbank/ledger/pkg/repository"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository on the given
// session.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	record := transactionToModel(t)
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *transactionRepository) GetByIDAndAccount(ctx context.Context, id, accountNumber string) (*domain.Transaction, error) {
	var record Transaction
	err := r.db.WithContext(ctx).
		First(&record, "id = ? AND account_number = ?", id, accountNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return transactionToDomain(&record), nil
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountNumber string) ([]*domain.Transaction, error) {
	var records []Transaction
	err := r.db.WithContext(ctx).
		Where("account_number = ?", accountNumber).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	transactions := make([]*domain.Transaction, 0, len(records))
	for i := range records {
		transactions = append(transactions, transactionToDomain(&records[i]))
	}
	return transactions, nil
}

func transactionToModel(t *domain.Transaction) Transaction {
	return Transaction{
		ID:            t.ID,
		AccountNumber: t.AccountNumber,
		Amount:        t.Amount.Minor(),
		Currency:      t.Currency,
		Type:          string(t.Kind),
		CreatedAt:     t.CreatedAt,
	}
}

func transactionToDomain(record *Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:            record.ID,
		AccountNumber: record.AccountNumber,
		Amount:        money.FromMinor(record.Amount),
		Currency:      record.Currency,
		Kind:          domain.TransactionKind(record.Type),
		CreatedAt:     record.CreatedAt,
	}
}
