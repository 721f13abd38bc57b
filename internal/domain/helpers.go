package domain

// HandOffset returns the dealer-relative hand index for an absolute seat.
// The deal starts left of the dealer, so offset 0 belongs to seat dealer+1.
func HandOffset(dealer, seat int) int {
	first := (dealer + 1) % NumSeats
	offset := seat - first
	if offset < 0 {
		// Constrain to 0..3 so -1 becomes the last offset.
		offset += NumSeats
	}
	return offset
}

// SeatFromHandOffset returns the absolute seat holding the hand at offset
// for the given dealer.
func SeatFromHandOffset(dealer, offset int) int {
	return ((dealer+1)%NumSeats + offset) % NumSeats
}

// SameTeam reports whether two absolute seats are partners. Teams are the
// even seats {0, 2} and the odd seats {1, 3}.
func SameTeam(seatA, seatB int) bool {
	return seatA%2 == seatB%2
}
