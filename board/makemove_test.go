package board_test

import (
	"errors"
	"testing"

	"adam-engine/board"
)

func playUCI(t *testing.T, p board.Position, moves ...string) board.Position {
	t.Helper()
	for _, s := range moves {
		m := mustMove(t, s)
		if !p.IsLegal(m) {
			t.Fatalf("%s is not legal in %s", s, p)
		}
		p = p.WithMove(m)
	}
	return p
}

func TestItalianCastleScenario(t *testing.T) {
	p := playUCI(t, board.StartingPosition(), "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "d8f6", "e1g1")
	want := board.MustParseFEN("r1b1kbnr/pppp1ppp/2n2q2/4p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4")
	if p != want {
		t.Fatalf("position mismatch:\ngot  %s\nwant %s", p, want)
	}
}

func TestWithMoveIsPure(t *testing.T) {
	p := board.StartingPosition()
	before := p
	_ = p.WithMove(mustMove(t, "e2e4"))
	if p != before {
		t.Fatalf("WithMove modified its receiver")
	}
}

func TestDoublePushSetsEnPassant(t *testing.T) {
	p := board.StartingPosition().WithMove(mustMove(t, "e2e4"))
	if got := p.EnPassant(); got != board.E3 {
		t.Fatalf("en passant after e2e4: got %v want e3", got)
	}
	p = p.WithMove(mustMove(t, "g8f6"))
	if got := p.EnPassant(); got != board.NoSquare {
		t.Fatalf("en passant after a quiet reply: got %v want -", got)
	}
}

func TestCastlingRightsLost(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	cases := []struct {
		moves []string
		want  board.Castling
	}{
		{[]string{"e1e2"}, board.BlackKingside | board.BlackQueenside},
		{[]string{"h1h2"}, board.WhiteQueenside | board.BlackKingside | board.BlackQueenside},
		{[]string{"a1a2"}, board.WhiteKingside | board.BlackKingside | board.BlackQueenside},
		// Capturing a rook on its corner removes the victim's right.
		{[]string{"a1a8"}, board.WhiteKingside | board.BlackKingside},
		{[]string{"e1d1", "h8h1"}, board.BlackQueenside},
	}
	for _, c := range cases {
		p := playUCI(t, board.MustParseFEN(fen), c.moves...)
		if got := p.CastlingRights(); got != c.want {
			t.Errorf("%v: got %v want %v", c.moves, got, c.want)
		}
	}
}

func TestClocks(t *testing.T) {
	p := playUCI(t, board.StartingPosition(), "g1f3", "g8f6")
	if p.HalfmoveClock() != 2 || p.FullmoveNumber() != 2 {
		t.Fatalf("clocks: got %d/%d want 2/2", p.HalfmoveClock(), p.FullmoveNumber())
	}
	p = playUCI(t, p, "e2e4")
	if p.HalfmoveClock() != 0 {
		t.Fatalf("pawn move should reset the halfmove clock, got %d", p.HalfmoveClock())
	}
}

func TestApplyRejectsBadOrigins(t *testing.T) {
	p := board.StartingPosition()
	if _, err := p.Apply(mustMove(t, "e4e5")); !errors.Is(err, board.ErrEmptyOrigin) {
		t.Errorf("empty origin: got %v", err)
	}
	if _, err := p.Apply(mustMove(t, "e7e5")); !errors.Is(err, board.ErrWrongSide) {
		t.Errorf("wrong side: got %v", err)
	}
	if _, err := p.Apply(mustMove(t, "e2e4")); err != nil {
		t.Errorf("e2e4: unexpected error %v", err)
	}
}

func TestApplyAll(t *testing.T) {
	moves := []board.Move{mustMove(t, "e2e4"), mustMove(t, "e7e5")}
	p, err := board.StartingPosition().ApplyAll(moves...)
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if p.PieceAt(board.E5) != board.BlackPawn {
		t.Errorf("e5: got %v want p", p.PieceAt(board.E5))
	}
	if _, err := board.StartingPosition().ApplyAll(mustMove(t, "e2e5")); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("illegal move: got %v", err)
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, s := range []string{"e2e4", "a7a8q", "h2h1n", "e1g1", "b7c8r", "g2g1b"} {
		m := mustMove(t, s)
		if got := m.String(); got != s {
			t.Errorf("String: got %q want %q", got, s)
		}
	}
	if got := board.NullMove.String(); got != "0000" {
		t.Errorf("null move: got %q", got)
	}
	for _, bad := range []string{"", "e2", "e2e9", "e7e8k", "e7e8qq"} {
		if _, err := board.ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) should fail", bad)
		}
	}
}
