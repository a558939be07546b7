// Package dto holds partial-update shapes passed from services to
// repositories. Nil fields are left untouched by the update.
package dto

// UserUpdate carries the mutable user fields. Identifier, password and
// timestamps are not reachable through this path.
type UserUpdate struct {
	Name        *string
	Line1       *string
	Line2       *string
	Line3       *string
	Town        *string
	County      *string
	Postcode    *string
	PhoneNumber *string
	Email       *string
}

// AccountUpdate carries the mutable account fields. Only the transaction
// processor sets Balance; account number, owner, sort code and currency are
// immutable.
type AccountUpdate struct {
	Name        *string
	AccountType *string
	Balance     *int64
}
