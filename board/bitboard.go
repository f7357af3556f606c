package board

import (
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square. Square s is stored on bit
// 63-s, so a8 is the most significant bit and h1 the least significant.
//
//	8 [ 0,  1,  2,  3,  4,  5,  6,  7 ]
//	7 [ 8,  9, 10, 11, 12, 13, 14, 15 ]
//	6 [16, 17, 18, 19, 20, 21, 22, 23 ]
//	5 [24, 25, 26, 27, 28, 29, 30, 31 ]
//	4 [32, 33, 34, 35, 36, 37, 38, 39 ]
//	3 [40, 41, 42, 43, 44, 45, 46, 47 ]
//	2 [48, 49, 50, 51, 52, 53, 54, 55 ]
//	1 [56, 57, 58, 59, 60, 61, 62, 63 ]
//	    a   b   c   d   e   f   g   h
type Bitboard uint64

const EmptyBoard Bitboard = 0

// BitboardOf returns the set holding exactly the given squares.
func BitboardOf(squares ...Square) Bitboard {
	var b Bitboard
	for _, sq := range squares {
		b |= sq.Mask()
	}
	return b
}

// Set adds sq to the set.
func (b *Bitboard) Set(sq Square) { *b |= sq.Mask() }

// Clear removes sq from the set.
func (b *Bitboard) Clear(sq Square) { *b &^= sq.Mask() }

// Test reports whether sq is in the set.
func (b Bitboard) Test(sq Square) bool { return b&sq.Mask() != 0 }

func (b Bitboard) Union(o Bitboard) Bitboard     { return b | o }
func (b Bitboard) Intersect(o Bitboard) Bitboard { return b & o }
func (b Bitboard) IsEmpty() bool                 { return b == 0 }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// First returns the smallest square index in the set, or NoSquare when empty.
func (b Bitboard) First() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.LeadingZeros64(uint64(b)))
}

// PopFirst removes and returns the smallest square index in the set.
// The set must not be empty.
func (b *Bitboard) PopFirst() Square {
	sq := Square(bits.LeadingZeros64(uint64(*b)))
	*b &^= sq.Mask()
	return sq
}

// Squares yields every square in the set in ascending index order (a8 first).
// Each call iterates the value the bitboard had when Squares was called.
func (b Bitboard) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for rest := b; rest != 0; {
			if !yield(rest.PopFirst()) {
				return
			}
		}
	}
}

// String draws the set as an 8x8 grid, rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if b.Test(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
