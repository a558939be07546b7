package domain

import "errors"

// Ledger error taxonomy. Every failure the services can report maps to
// exactly one of these sentinels; the webapi edge translates them to HTTP
// status codes once, in webapi/common.
var (
	// ErrInvalidDetails is returned when malformed or incomplete input
	// reaches a service before any state is touched.
	ErrInvalidDetails = errors.New("invalid details supplied")

	// ErrInvalidCredentials is returned on authentication failure. An
	// unknown user id and a wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid user credentials supplied")

	// ErrNotAllowed is returned when the authenticated caller does not own
	// the resource, or supplies an unsupported transaction type.
	ErrNotAllowed = errors.New("user is not allowed to access the resource")

	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotFound is returned when an account number does not resolve.
	ErrAccountNotFound = errors.New("bank account not found")

	// ErrTransactionNotFound is returned when a transaction id does not
	// resolve within the requested account. A transaction that exists but
	// belongs to a different account is indistinguishable from an absent one.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUserHasAccounts blocks deletion of a user who still owns accounts.
	ErrUserHasAccounts = errors.New("user cannot be deleted while associated with a bank account")

	// ErrInsufficientFunds is returned when a withdrawal amount exceeds the
	// current account balance.
	ErrInsufficientFunds = errors.New("insufficient funds to process transaction")

	// ErrUnexpected covers storage and signing faults. It never carries
	// internal detail beyond a generic message.
	ErrUnexpected = errors.New("unexpected error")
)
