package engine

import (
	"adam-engine/board"
)

// Material values in centipawns, indexed by board.PieceType.
var pieceValues = [6]int{
	board.Pawn:   100,
	board.Bishop: 330,
	board.Knight: 320,
	board.Rook:   500,
	board.King:   0,
	board.Queen:  900,
}

// Game phase weights for interpolation
const (
	PawnPhase   = 0
	KnightPhase = 1
	BishopPhase = 1
	RookPhase   = 2
	QueenPhase  = 4
	TotalPhase  = PawnPhase*16 + KnightPhase*4 + BishopPhase*4 + RookPhase*4 + QueenPhase*2
)

var piecePhase = [6]int{
	board.Pawn:   PawnPhase,
	board.Bishop: BishopPhase,
	board.Knight: KnightPhase,
	board.Rook:   RookPhase,
	board.King:   0,
	board.Queen:  QueenPhase,
}

// Piece-square tables from White's point of view, laid out in square order:
// the first row is rank 8, the last row rank 1. Black reads them through
// a rank flip (sq ^ 56).
var PSQT_MG = [6][64]int{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	board.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
	board.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
}

// PSQT_EG differs from the midgame tables only for the king, which walks to
// the centre once the heavy pieces are gone.
var PSQT_EG = func() [6][64]int {
	eg := PSQT_MG
	eg[board.King] = [64]int{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
	return eg
}()

// Evaluator scores a position in centipawns, positive when White is better.
type Evaluator func(board.Position) int

// Evaluate is the default static evaluation: material plus piece-square
// bonuses, tapered between midgame and endgame tables by remaining material.
// It never looks at legality or whose turn it is.
func Evaluate(p board.Position) int {
	var mg, eg, phase int
	for pc := board.Piece(0); pc < board.PieceCount; pc++ {
		pt := pc.Type()
		sign, flip := 1, board.Square(0)
		if pc.Color() == board.Black {
			sign, flip = -1, 56
		}
		for sq := range p.Bitboard(pc).Squares() {
			idx := sq ^ flip
			mg += sign * (pieceValues[pt] + PSQT_MG[pt][idx])
			eg += sign * (pieceValues[pt] + PSQT_EG[pt][idx])
			phase += piecePhase[pt]
		}
	}
	phase = clamp(phase, 0, TotalPhase)
	return (mg*phase + eg*(TotalPhase-phase)) / TotalPhase
}
