package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "pending to completed skips a stage", from: StatusPending, to: StatusCompleted, want: false},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusConfirmed, want: false},
		{name: "same state is not a transition", from: StatusPending, to: StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, BookingStatus("cancelled").Valid())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 329.88, Round2(5498*GSTRate))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.68, Round2(1.678))
}
