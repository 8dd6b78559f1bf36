package domain

import "errors"

// Lookup errors
var (
	ErrItemNotFound   = errors.New("item not found")
	ErrPatronNotFound = errors.New("patron not found")
	ErrUnknownTier    = errors.New("unknown membership tier")
)

// Transition errors — the state machine rejects the operation for the
// item's current lifecycle state.
var (
	ErrItemUnavailable     = errors.New("item is not available for borrowing")
	ErrItemAvailable       = errors.New("item is available, borrow it directly instead of reserving")
	ErrAlreadyReserved     = errors.New("item is already reserved by another patron")
	ErrNotBorrowed         = errors.New("item is not currently borrowed")
	ErrReservationNotFound = errors.New("no active reservation found")
	ErrInvalidOperation    = errors.New("operation is not valid")
)

// Policy errors
var (
	ErrCapacityExceeded     = errors.New("patron has reached the active loan limit")
	ErrDuplicateReservation = errors.New("patron already holds the reservation for this item")
)

// Registry errors
var (
	ErrDuplicateItem   = errors.New("item id already exists")
	ErrDuplicatePatron = errors.New("patron id already exists")
	ErrItemInUse       = errors.New("item is currently loaned or reserved")
	ErrPatronHasLoans  = errors.New("patron has active loans")
)
