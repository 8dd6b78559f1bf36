package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"openshelf/internal/core/domain"
)

func TestNextState_LegalTransitions(t *testing.T) {
	testCases := []struct {
		name  string
		state domain.ItemState
		op    domain.Operation
		next  domain.ItemState
	}{
		{"borrow available", domain.StateAvailable, domain.OpBorrow, domain.StateLoaned},
		{"return loaned", domain.StateLoaned, domain.OpReturn, domain.StateAvailable},
		{"return reserved", domain.StateReserved, domain.OpReturn, domain.StateAvailable},
		{"reserve loaned", domain.StateLoaned, domain.OpReserve, domain.StateReserved},
		{"cancel reserved", domain.StateReserved, domain.OpCancelReservation, domain.StateLoaned},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			next, err := domain.NextState(tt.state, tt.op)
			assert.NoError(t, err)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestNextState_IllegalTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		state   domain.ItemState
		op      domain.Operation
		wantErr error
	}{
		{"borrow loaned", domain.StateLoaned, domain.OpBorrow, domain.ErrItemUnavailable},
		{"borrow reserved", domain.StateReserved, domain.OpBorrow, domain.ErrItemUnavailable},
		{"return available", domain.StateAvailable, domain.OpReturn, domain.ErrNotBorrowed},
		{"reserve available", domain.StateAvailable, domain.OpReserve, domain.ErrItemAvailable},
		{"reserve reserved", domain.StateReserved, domain.OpReserve, domain.ErrAlreadyReserved},
		{"cancel available", domain.StateAvailable, domain.OpCancelReservation, domain.ErrReservationNotFound},
		{"cancel loaned", domain.StateLoaned, domain.OpCancelReservation, domain.ErrReservationNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			next, err := domain.NextState(tt.state, tt.op)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.state, next, "illegal transition must not change state")
		})
	}
}
