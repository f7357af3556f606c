package board

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrigin = errors.New("no piece on origin square")
	ErrWrongSide   = errors.New("origin piece belongs to the side not to move")
	ErrIllegalMove = errors.New("illegal move")
)

// castlingLoss maps a square to the rights lost when a piece leaves or is
// captured on it: the king homes lose both flags, the rook corners one.
var castlingLoss = func() [64]Castling {
	var loss [64]Castling
	loss[E1] = WhiteKingside | WhiteQueenside
	loss[H1] = WhiteKingside
	loss[A1] = WhiteQueenside
	loss[E8] = BlackKingside | BlackQueenside
	loss[H8] = BlackKingside
	loss[A8] = BlackQueenside
	return loss
}()

// Apply validates m against the position's occupancy and returns the
// resulting position. It does not check legality; use IsLegal for that.
func (p Position) Apply(m Move) (Position, error) {
	from, to := m.From(), m.To()
	if !from.Valid() || !to.Valid() {
		return p, ErrSquareOutOfRange
	}
	moved := p.PieceAt(from)
	if moved == NoPiece {
		return p, fmt.Errorf("%w: %s", ErrEmptyOrigin, from)
	}
	if moved.Color() != p.SideToMove() {
		return p, fmt.Errorf("%w: %s on %s", ErrWrongSide, moved, from)
	}
	return p.WithMove(m), nil
}

// WithMove returns the position after m. The origin must hold a piece of the
// side to move; anything else means the caller and generator disagree, and
// WithMove panics.
func (p Position) WithMove(m Move) Position {
	from, to := m.From(), m.To()
	moved := p.PieceAt(from)
	if moved == NoPiece {
		panic(fmt.Sprintf("board: move %s has no piece on its origin", m))
	}
	us := moved.Color()
	them := us.Other()

	next := p
	next.whiteToMove = !p.whiteToMove
	next.enPassant = NoSquare
	next.halfmoveClock++
	if us == Black {
		next.fullmoveNumber++
	}

	if moved.Type() == King {
		if rule, ok := castleRuleFor(moved, from, to); ok {
			next.pieces[rule.king] ^= rule.kingFrom.Mask() | rule.kingTo.Mask()
			next.pieces[rule.rook] ^= rule.rookFrom.Mask() | rule.rookTo.Mask()
			next.castling &^= castlingOf(us)
			return next
		}
	}

	// Capture: clear whatever enemy piece sits on the destination.
	toMask := to.Mask()
	base := MakePiece(them, Pawn)
	for pc := base; pc < base+6; pc++ {
		if next.pieces[pc]&toMask != 0 {
			next.pieces[pc] &^= toMask
			next.halfmoveClock = 0
		}
	}

	placed := moved
	if moved.Type() == Pawn {
		next.halfmoveClock = 0
		if pt, ok := m.Promotion().PieceType(); ok {
			placed = MakePiece(us, pt)
		}
		switch {
		case absDiff(from, to) == 16:
			next.enPassant = (from + to) / 2
		case to == p.enPassant && from.File() != to.File():
			// The captured pawn sits one rank behind the destination.
			captured := to + 8
			if us == Black {
				captured = to - 8
			}
			next.pieces[MakePiece(them, Pawn)].Clear(captured)
		}
	}
	next.pieces[moved].Clear(from)
	next.pieces[placed].Set(to)

	next.castling &^= castlingLoss[from] | castlingLoss[to]
	return next
}

// castleRuleFor recognizes the king's two-square castling step.
func castleRuleFor(king Piece, from, to Square) (castleRule, bool) {
	for _, wing := range castleWings[king.Color()] {
		rule := castleRules[wing]
		if rule.kingFrom == from && rule.kingTo == to {
			return rule, true
		}
	}
	return castleRule{}, false
}

// ApplyAll plays moves in order, validating each for legality. It is the fold
// the protocol layer uses to turn "position ... moves ..." into a Position.
func (p Position) ApplyAll(moves ...Move) (Position, error) {
	for i, m := range moves {
		if !p.IsLegal(m) {
			return p, fmt.Errorf("move %d (%s): %w", i+1, m, ErrIllegalMove)
		}
		p = p.WithMove(m)
	}
	return p, nil
}
