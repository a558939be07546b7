package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talonbank/ledger/pkg/domain"
)

func TestFormatID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		kind     domain.IDKind
		seq      int64
		expected string
	}{
		{"first user", domain.KindUser, 1, "usr-1"},
		{"large user", domain.KindUser, 1042, "usr-1042"},
		{"first address", domain.KindAddress, 1, "adr-1"},
		{"first account", domain.KindAccount, 1, "01000001"},
		{"account pads to six digits", domain.KindAccount, 123, "01000123"},
		{"account at pad boundary", domain.KindAccount, 999999, "01999999"},
		{"first transaction", domain.KindTransaction, 1, "tan-1"},
		{"transaction past single digits", domain.KindTransaction, 10, "tan-a"},
		{"transaction past base36 digits", domain.KindTransaction, 36, "tan-10"},
		{"transaction well past the old cap", domain.KindTransaction, 1000, "tan-rs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.FormatID(tt.kind, tt.seq))
		})
	}
}

func TestFormatID_AccountNumbersAreFixedWidth(t *testing.T) {
	t.Parallel()
	for _, seq := range []int64{1, 9, 99, 12345, 999999} {
		assert.Len(t, domain.FormatID(domain.KindAccount, seq), 8)
	}
}
