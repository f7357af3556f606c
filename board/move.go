package board

import (
	"errors"
	"strings"
)

// Move encodes a chess move in a 16-bit value.
//
// Layout from MSB to LSB:
//
//	pppp oooooo dddddd
//
// p is the promotion tag, o the origin square and d the destination square.
// Castling is written as the king's two-square step (e1g1, e1c1, e8g8, e8c8)
// and recognized by move application.
type Move uint16

// Promotion is the tag stored in the four most significant bits of a Move.
type Promotion uint8

const (
	NoPromotion   Promotion = 0
	PromoteKnight Promotion = 0b0001
	PromoteBishop Promotion = 0b0010
	PromoteRook   Promotion = 0b0100
	PromoteQueen  Promotion = 0b1000
)

// Promotions lists the promotion tags in generation order.
var Promotions = [4]Promotion{PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen}

const (
	moveOriginShift    = 6
	movePromotionShift = 12
	squareMask         = 0x3F
)

// NullMove is the zero Move. The generator never produces it.
const NullMove Move = 0

// The four castling moves, as king steps.
const (
	WhiteCastleKingside  = Move(E1)<<moveOriginShift | Move(G1)
	WhiteCastleQueenside = Move(E1)<<moveOriginShift | Move(C1)
	BlackCastleKingside  = Move(E8)<<moveOriginShift | Move(G8)
	BlackCastleQueenside = Move(E8)<<moveOriginShift | Move(C8)
)

var (
	ErrMoveSyntax     = errors.New("invalid move syntax")
	ErrPromotionPiece = errors.New("invalid promotion piece")
)

// NewMove constructs a plain move.
func NewMove(from, to Square) Move {
	return Move(from&squareMask)<<moveOriginShift | Move(to&squareMask)
}

// NewPromotion constructs a pawn move that promotes on arrival.
func NewPromotion(from, to Square, promo Promotion) Move {
	return NewMove(from, to) | Move(promo&0xF)<<movePromotionShift
}

// From returns the origin square.
func (m Move) From() Square { return Square(m>>moveOriginShift) & squareMask }

// To returns the destination square.
func (m Move) To() Square { return Square(m) & squareMask }

// Promotion returns the promotion tag, NoPromotion for ordinary moves.
func (m Move) Promotion() Promotion { return Promotion(m >> movePromotionShift) }

// PieceType returns the type a pawn becomes. It reports false for
// NoPromotion and for malformed tags.
func (p Promotion) PieceType() (PieceType, bool) {
	switch p {
	case PromoteKnight:
		return Knight, true
	case PromoteBishop:
		return Bishop, true
	case PromoteRook:
		return Rook, true
	case PromoteQueen:
		return Queen, true
	default:
		return 0, false
	}
}

func (p Promotion) suffix() string {
	switch p {
	case PromoteKnight:
		return "n"
	case PromoteBishop:
		return "b"
	case PromoteRook:
		return "r"
	case PromoteQueen:
		return "q"
	default:
		return ""
	}
}

// String returns the coordinate notation used by the UCI protocol, e.g.
// "e2e4" or "e7e8q". NullMove prints as "0000".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	return m.From().String() + m.To().String() + m.Promotion().suffix()
}

// ParseMove converts a coordinate string (e2e4, e7e8q) into a Move. The move
// is not checked against any position.
func ParseMove(str string) (Move, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if len(str) != 4 && len(str) != 5 {
		return NullMove, ErrMoveSyntax
	}
	from, err := ParseSquare(str[0:2])
	if err != nil {
		return NullMove, ErrMoveSyntax
	}
	to, err := ParseSquare(str[2:4])
	if err != nil {
		return NullMove, ErrMoveSyntax
	}
	if len(str) == 4 {
		return NewMove(from, to), nil
	}
	var promo Promotion
	switch str[4] {
	case 'n':
		promo = PromoteKnight
	case 'b':
		promo = PromoteBishop
	case 'r':
		promo = PromoteRook
	case 'q':
		promo = PromoteQueen
	default:
		return NullMove, ErrPromotionPiece
	}
	return NewPromotion(from, to, promo), nil
}
