package engine_test

import (
	"testing"

	"adam-engine/board"
	"adam-engine/engine"
)

func TestEvaluateStartIsBalanced(t *testing.T) {
	if got := engine.Evaluate(board.StartingPosition()); got != 0 {
		t.Fatalf("Evaluate(start): got %d want 0", got)
	}
}

func TestEvaluateIsColorSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "4k3/8/8/4p3/8/8/8/4K3 b - - 0 1"},
		{"r3k3/8/2n5/8/8/8/8/4KQ2 w - - 0 1", "4kq2/8/8/8/8/2N5/8/R3K3 b - - 0 1"},
		{"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", "rnbqkb1r/pppp1ppp/5n2/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2"},
	}
	for _, pair := range pairs {
		a := engine.Evaluate(board.MustParseFEN(pair[0]))
		b := engine.Evaluate(board.MustParseFEN(pair[1]))
		if a != -b {
			t.Errorf("%s = %d, mirror %s = %d", pair[0], a, pair[1], b)
		}
	}
}

func TestEvaluateMaterial(t *testing.T) {
	up := engine.Evaluate(board.MustParseFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1"))
	down := engine.Evaluate(board.MustParseFEN("3qk3/8/8/8/8/8/8/4K3 w - - 0 1"))
	if up <= 800 || down >= -800 {
		t.Fatalf("queen advantage: got %d and %d", up, down)
	}
}

func TestEvaluateCentralKnightBeatsRim(t *testing.T) {
	centre := engine.Evaluate(board.MustParseFEN("4k3/8/8/8/3N4/8/8/4K3 w - - 0 1"))
	rim := engine.Evaluate(board.MustParseFEN("4k3/8/8/8/N7/8/8/4K3 w - - 0 1"))
	if centre <= rim {
		t.Fatalf("knight on d4 (%d) should outscore knight on a4 (%d)", centre, rim)
	}
}
