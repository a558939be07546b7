package domain

import (
	"fmt"
	"strconv"
)

// IDKind selects the durable per-kind sequence an identifier is drawn from.
type IDKind string

const (
	KindUser        IDKind = "user"
	KindAddress     IDKind = "address"
	KindAccount     IDKind = "account"
	KindTransaction IDKind = "transaction"
)

// FormatID renders a raw sequence value as the externally visible
// identifier for the given kind. The formatted string is never the source
// of truth for ordering; the durable counter is.
//
//	user:        usr-<n>
//	address:     adr-<n>
//	account:     01 + n zero-padded to 6 digits
//	transaction: tan- + base36(n)
//
// Transaction suffixes were once a single letter ('A' offset by the
// sequence value), which overflows past 26 transactions. Base36 keeps the
// prefix + monotonic suffix contract without the cap.
func FormatID(kind IDKind, seq int64) string {
	switch kind {
	case KindUser:
		return "usr-" + strconv.FormatInt(seq, 10)
	case KindAddress:
		return "adr-" + strconv.FormatInt(seq, 10)
	case KindAccount:
		return fmt.Sprintf("01%06d", seq)
	case KindTransaction:
		return "tan-" + strconv.FormatInt(seq, 36)
	default:
		return strconv.FormatInt(seq, 10)
	}
}
