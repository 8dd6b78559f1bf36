package domain

// ItemState represents the lifecycle state of a catalog item
type ItemState string

const (
	StateAvailable ItemState = "AVAILABLE"
	StateLoaned    ItemState = "LOANED"
	StateReserved  ItemState = "RESERVED"
)

// Operation represents a circulation operation applied to an item
type Operation string

const (
	OpBorrow            Operation = "BORROW"
	OpReturn            Operation = "RETURN"
	OpReserve           Operation = "RESERVE"
	OpCancelReservation Operation = "CANCEL_RESERVATION"
)

// NextState computes the state an item moves to when an operation is applied.
// It is a pure function over the (state, operation) pair: on an illegal
// combination it returns the current state unchanged together with the
// transition error the caller should surface.
//
//	AVAILABLE --BORROW--> LOANED
//	LOANED    --RETURN--> AVAILABLE
//	LOANED    --RESERVE--> RESERVED
//	RESERVED  --RETURN--> AVAILABLE   (reservation is fulfilled by the caller)
//	RESERVED  --CANCEL_RESERVATION--> LOANED
func NextState(state ItemState, op Operation) (ItemState, error) {
	switch op {
	case OpBorrow:
		// A reserved item stays blocked: the reservation holder has
		// priority but must wait for the return.
		if state == StateAvailable {
			return StateLoaned, nil
		}
		return state, ErrItemUnavailable

	case OpReturn:
		if state == StateLoaned || state == StateReserved {
			return StateAvailable, nil
		}
		return state, ErrNotBorrowed

	case OpReserve:
		switch state {
		case StateLoaned:
			return StateReserved, nil
		case StateAvailable:
			return state, ErrItemAvailable
		default:
			// Single reservation slot per item, no queue.
			return state, ErrAlreadyReserved
		}

	case OpCancelReservation:
		if state == StateReserved {
			return StateLoaned, nil
		}
		return state, ErrReservationNotFound
	}

	return state, ErrInvalidOperation
}
