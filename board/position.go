package board

import (
	"errors"
	"fmt"
)

// Position is an immutable board snapshot. Methods take it by value and
// derived positions are returned as new values, so a Position can be shared
// freely between callers and goroutines.
type Position struct {
	// One bitboard per Piece, indexed by the Piece value. No square is set in
	// more than one of them.
	pieces [PieceCount]Bitboard

	whiteToMove bool

	// Castling rights; a flag never comes back once cleared.
	castling Castling

	// Square a pawn lands on when capturing en passant, NoSquare otherwise.
	enPassant Square

	// Carried for FEN output only.
	halfmoveClock  int
	fullmoveNumber int
}

var (
	ErrOverlappingPieces = errors.New("square occupied by more than one piece")
	ErrKingCount         = errors.New("each side needs exactly one king")
	ErrPawnOnBackRank    = errors.New("pawn on the first or last rank")
	ErrEnPassantSquare   = errors.New("invalid en passant square")
)

// StartingPosition returns the standard initial chess position.
func StartingPosition() Position {
	var p Position

	// White pieces
	p.pieces[WhitePawn] = 0x0000_0000_0000_ff00
	p.pieces[WhiteRook] = 0x0000_0000_0000_0081
	p.pieces[WhiteKnight] = 0x0000_0000_0000_0042
	p.pieces[WhiteBishop] = 0x0000_0000_0000_0024
	p.pieces[WhiteQueen] = 0x0000_0000_0000_0010
	p.pieces[WhiteKing] = 0x0000_0000_0000_0008

	// Black pieces
	p.pieces[BlackPawn] = 0x00ff_0000_0000_0000
	p.pieces[BlackRook] = 0x8100_0000_0000_0000
	p.pieces[BlackKnight] = 0x4200_0000_0000_0000
	p.pieces[BlackBishop] = 0x2400_0000_0000_0000
	p.pieces[BlackQueen] = 0x1000_0000_0000_0000
	p.pieces[BlackKing] = 0x0800_0000_0000_0000

	p.whiteToMove = true
	p.castling = AllCastling
	p.enPassant = NoSquare
	p.fullmoveNumber = 1
	return p
}

// ==========================
// Accessors
// ==========================

// Bitboard returns the squares holding piece pc.
func (p Position) Bitboard(pc Piece) Bitboard { return p.pieces[pc] }

// WhiteToMove reports whether White is to play.
func (p Position) WhiteToMove() bool { return p.whiteToMove }

// SideToMove reports which side is to play.
func (p Position) SideToMove() Color {
	if p.whiteToMove {
		return White
	}
	return Black
}

// CastlingRights returns the remaining castling flags.
func (p Position) CastlingRights() Castling { return p.castling }

// EnPassant returns the current en passant target square or NoSquare.
func (p Position) EnPassant() Square { return p.enPassant }

// HalfmoveClock counts half-moves since the last capture or pawn move.
func (p Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber starts at 1 and increments after Black's move.
func (p Position) FullmoveNumber() int { return p.fullmoveNumber }

// ColorOccupancy returns every square occupied by pieces of color c.
func (p Position) ColorOccupancy(c Color) Bitboard {
	base := MakePiece(c, Pawn)
	var occ Bitboard
	for pc := base; pc < base+6; pc++ {
		occ |= p.pieces[pc]
	}
	return occ
}

// Occupancy returns every occupied square.
func (p Position) Occupancy() Bitboard {
	var occ Bitboard
	for _, b := range p.pieces {
		occ |= b
	}
	return occ
}

// PieceAt returns the piece standing on sq, or NoPiece.
func (p Position) PieceAt(sq Square) Piece {
	mask := sq.Mask()
	for pc := WhitePawn; pc < NoPiece; pc++ {
		if p.pieces[pc]&mask != 0 {
			return pc
		}
	}
	return NoPiece
}

// KingSquare returns the square of c's king, or NoSquare if it has none.
func (p Position) KingSquare(c Color) Square {
	return p.pieces[MakePiece(c, King)].First()
}

// Pawns never stand on rank 1 or rank 8.
const backRanks Bitboard = 0xff00_0000_0000_00ff

// Validate checks the disjointness invariant, that each side has one king,
// that no pawn sits on a back rank and that the en passant target matches a
// pawn that has just advanced two squares.
func (p Position) Validate() error {
	var seen Bitboard
	for pc, b := range p.pieces {
		if overlap := seen & b; overlap != 0 {
			return fmt.Errorf("%w: %s on %s", ErrOverlappingPieces, Piece(pc), overlap.First())
		}
		seen |= b
	}
	if p.pieces[WhiteKing].Count() != 1 || p.pieces[BlackKing].Count() != 1 {
		return ErrKingCount
	}
	if pawns := (p.pieces[WhitePawn] | p.pieces[BlackPawn]) & backRanks; pawns != 0 {
		return fmt.Errorf("%w: %s", ErrPawnOnBackRank, pawns.First())
	}
	if p.castling&^AllCastling != 0 {
		return fmt.Errorf("invalid castling flags %04b", p.castling)
	}
	if !p.validEnPassant() {
		return fmt.Errorf("%w: %s", ErrEnPassantSquare, p.enPassant)
	}
	return nil
}

// validEnPassant reports whether the en passant field describes a double pawn
// push by the side that just moved: the target is empty and on the 6th rank
// (White to move) or the 3rd (Black to move), the enemy pawn stands right
// behind it and the square the pawn came from is empty.
func (p Position) validEnPassant() bool {
	ep := p.enPassant
	if ep == NoSquare {
		return true
	}
	if !ep.Valid() {
		return false
	}
	wantRank, pusher, behind, origin := 2, BlackPawn, ep+8, ep-8
	if !p.whiteToMove {
		wantRank, pusher, behind, origin = 5, WhitePawn, ep-8, ep+8
	}
	if ep.Rank() != wantRank {
		return false
	}
	occupied := p.Occupancy()
	return !occupied.Test(ep) && !occupied.Test(origin) && p.pieces[pusher].Test(behind)
}
