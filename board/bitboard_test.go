package board_test

import (
	"slices"
	"testing"

	"adam-engine/board"
)

func TestBitboardSetClearTest(t *testing.T) {
	var b board.Bitboard
	if !b.IsEmpty() {
		t.Fatalf("zero bitboard should be empty")
	}
	b.Set(board.A8)
	b.Set(board.H1)
	b.Set(board.E4)
	if uint64(b)>>63 != 1 {
		t.Errorf("a8 should be the most significant bit, got %016x", uint64(b))
	}
	if uint64(b)&1 != 1 {
		t.Errorf("h1 should be the least significant bit, got %016x", uint64(b))
	}
	if !b.Test(board.E4) || b.Test(board.E5) {
		t.Errorf("Test mismatch: e4=%v e5=%v", b.Test(board.E4), b.Test(board.E5))
	}
	b.Clear(board.E4)
	if b.Test(board.E4) {
		t.Errorf("e4 still set after Clear")
	}
	if got := b.Count(); got != 2 {
		t.Errorf("Count: got %d want %d", got, 2)
	}
}

func TestBitboardUnionIntersect(t *testing.T) {
	a := board.BitboardOf(board.A1, board.B2)
	b := board.BitboardOf(board.B2, board.C3)
	if got := a.Union(b); got != board.BitboardOf(board.A1, board.B2, board.C3) {
		t.Errorf("Union: got\n%v", got)
	}
	if got := a.Intersect(b); got != board.BitboardOf(board.B2) {
		t.Errorf("Intersect: got\n%v", got)
	}
}

func TestBitboardSquaresAscendingAndRestartable(t *testing.T) {
	b := board.BitboardOf(board.H1, board.A8, board.D4, board.C7)
	want := []board.Square{board.A8, board.C7, board.D4, board.H1}

	seq := b.Squares()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, want) {
		t.Fatalf("first pass: got %v want %v", first, want)
	}
	if !slices.Equal(second, want) {
		t.Fatalf("second pass: got %v want %v", second, want)
	}

	// Early exit must not break later iterations.
	for sq := range b.Squares() {
		if sq != board.A8 {
			t.Fatalf("first yielded square: got %v want a8", sq)
		}
		break
	}
}

func TestBitboardPopFirst(t *testing.T) {
	b := board.BitboardOf(board.B8, board.G2)
	if got := b.First(); got != board.B8 {
		t.Fatalf("First: got %v want b8", got)
	}
	if got := b.PopFirst(); got != board.B8 {
		t.Fatalf("PopFirst: got %v want b8", got)
	}
	if got := b.PopFirst(); got != board.G2 {
		t.Fatalf("PopFirst: got %v want g2", got)
	}
	if !b.IsEmpty() || b.First() != board.NoSquare {
		t.Fatalf("bitboard should be empty after popping all squares")
	}
}

func TestSquareCoordinates(t *testing.T) {
	cases := []struct {
		sq         board.Square
		name       string
		rank, file int
	}{
		{board.A8, "a8", 0, 0},
		{board.H8, "h8", 0, 7},
		{board.E4, "e4", 4, 4},
		{board.A1, "a1", 7, 0},
		{board.H1, "h1", 7, 7},
	}
	for _, c := range cases {
		if c.sq.String() != c.name || c.sq.Rank() != c.rank || c.sq.File() != c.file {
			t.Errorf("square %d: got %s rank=%d file=%d, want %s rank=%d file=%d",
				c.sq, c.sq, c.sq.Rank(), c.sq.File(), c.name, c.rank, c.file)
		}
		parsed, err := board.ParseSquare(c.name)
		if err != nil || parsed != c.sq {
			t.Errorf("ParseSquare(%q): got %v, %v", c.name, parsed, err)
		}
	}
	if _, err := board.ParseSquare("i9"); err == nil {
		t.Errorf("ParseSquare accepted an off-board square")
	}
}

func TestSquareMaskPanicsOffBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for NoSquare.Mask()")
		}
	}()
	_ = board.NoSquare.Mask()
}
