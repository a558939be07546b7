package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/repository"
)

type sequences struct {
	db *gorm.DB
}

// NewSequences creates the durable per-kind counters on the given session.
func NewSequences(db *gorm.DB) repository.Sequences {
	return &sequences{db: db}
}

// Next increments and returns the counter for kind in a single statement,
// so concurrent callers can never observe the same value.
func (s *sequences) Next(ctx context.Context, kind domain.IDKind) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO sequences (kind, value) VALUES (?, 1)
		 ON CONFLICT (kind) DO UPDATE SET value = sequences.value + 1
		 RETURNING value`,
		string(kind),
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
