package bench

import (
	"testing"

	"adam-engine/board"
	"adam-engine/engine"
)

func benchLegalMoves(b *testing.B, fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalMoves()
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, board.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	benchLegalMoves(b, kiwipete)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	benchLegalMoves(b, fen)
}

func BenchmarkPseudoLegalMoves_EP(b *testing.B) {
	pos := board.MustParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.PseudoLegalMoves()
	}
}

func BenchmarkAttackedBy_Kiwipete(b *testing.B) {
	pos := board.MustParseFEN(kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.AttackedBy(board.Black)
	}
}

func BenchmarkWithMove_AllMoves_Initial(b *testing.B) {
	pos := board.StartingPosition()
	moves := pos.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			_ = pos.WithMove(m)
		}
	}
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	pos := board.MustParseFEN(kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Evaluate(pos)
	}
}

func benchBestMove(b *testing.B, workers int) {
	pos := board.StartingPosition()
	s := &engine.Searcher{Workers: workers}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.BestMove(pos, 2); err != nil {
			b.Fatalf("BestMove: %v", err)
		}
	}
}

func BenchmarkBestMove_Initial_D2(b *testing.B)         { benchBestMove(b, 1) }
func BenchmarkBestMove_Initial_D2_Workers4(b *testing.B) { benchBestMove(b, 4) }
