package domain

import (
	"testing"
)

func TestHandOffset(t *testing.T) {
	tests := []struct {
		name     string
		dealer   int
		seat     int
		expected int
	}{
		{"Seat left of dealer is first", 0, 1, 0},
		{"Dealer is last", 0, 0, 3},
		{"Across from dealer", 0, 2, 1},
		{"Wraps past seat zero", 3, 0, 0},
		{"Human seat with dealer three", 3, 2, 2},
		{"Human seat with dealer zero", 0, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandOffset(tt.dealer, tt.seat); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestSeatFromHandOffsetRoundTrip(t *testing.T) {
	for dealer := 0; dealer < NumSeats; dealer++ {
		for seat := 0; seat < NumSeats; seat++ {
			offset := HandOffset(dealer, seat)
			if got := SeatFromHandOffset(dealer, offset); got != seat {
				t.Errorf("dealer %d seat %d: round trip gave %d", dealer, seat, got)
			}
		}
	}
}

func TestSameTeam(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected bool
	}{
		{"Even seats are partners", 0, 2, true},
		{"Odd seats are partners", 1, 3, true},
		{"Adjacent seats are opponents", 0, 1, false},
		{"Seat with itself", 2, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameTeam(tt.a, tt.b); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
