package booking

import "strconv"

const (
	// SeatCount is the number of seats in every show. Indices are [0, SeatCount)
	// and must fit in the uint32 seat mask.
	SeatCount = 20

	seatRow = 'a'
)

// ParseSeatLabel converts a seat label ("a1".."a20", case-insensitive row
// letter) into a zero-based seat index. The numeric part must be fully
// consumed, so labels like "a1x" or "a-1" are rejected.
func ParseSeatLabel(label string) (int, bool) {
	if len(label) < 2 {
		return 0, false
	}

	row := label[0]
	if row == 'A' {
		row = seatRow
	}
	if row != seatRow {
		return 0, false
	}

	num, err := strconv.Atoi(label[1:])
	if err != nil {
		return 0, false
	}
	if num < 1 || num > SeatCount {
		return 0, false
	}
	return num - 1, true
}

// SeatLabelFromIndex converts a zero-based seat index into its canonical
// lowercase label. Only call with indices in [0, SeatCount).
func SeatLabelFromIndex(index0 int) string {
	return string(seatRow) + strconv.Itoa(index0+1)
}
