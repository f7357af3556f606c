package board

import "errors"

// Square is a board index in 0..63. Index 0 is a8 and 63 is h1; the index
// runs left to right along a rank, then top to bottom.
type Square uint8

// NoSquare marks the absence of a square (e.g. no en passant target).
const NoSquare Square = 64

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

var ErrSquareOutOfRange = errors.New("square out of range")

// NewSquare builds a square from a file index (0 = a-file) and a rank index
// (0 = 8th rank).
func NewSquare(file, rank int) Square { return Square(rank<<3 | file) }

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool { return s < 64 }

// Rank returns the rank index, 0 being the 8th rank.
func (s Square) Rank() int { return int(s >> 3) }

// File returns the file index, 0 being the a-file.
func (s Square) File() int { return int(s & 7) }

// Mask returns the single-square bitboard for s. It panics on an off-board
// square, which can only come from a broken internal code path.
func (s Square) Mask() Bitboard {
	if s > H1 {
		panic("board: square index out of range")
	}
	return Bitboard(1) << (63 - uint(s))
}

// String returns the coordinate form, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '8' - byte(s.Rank())})
}

// ParseSquare converts a coordinate such as "e4" into a Square.
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return NoSquare, ErrSquareOutOfRange
	}
	file, rank := str[0], str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, ErrSquareOutOfRange
	}
	return NewSquare(int(file-'a'), int('8'-rank)), nil
}
