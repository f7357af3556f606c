package board

// castleRule describes what one castling move requires and touches.
type castleRule struct {
	move     Move
	king     Piece
	rook     Piece
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	// Squares between king and rook that must be empty.
	between Bitboard
	// Squares the king stands on, crosses or lands on; none may be attacked.
	kingPath Bitboard
}

var castleRules = map[Castling]castleRule{
	WhiteKingside: {
		move: WhiteCastleKingside, king: WhiteKing, rook: WhiteRook,
		kingFrom: E1, kingTo: G1, rookFrom: H1, rookTo: F1,
		between:  BitboardOf(F1, G1),
		kingPath: BitboardOf(E1, F1, G1),
	},
	WhiteQueenside: {
		move: WhiteCastleQueenside, king: WhiteKing, rook: WhiteRook,
		kingFrom: E1, kingTo: C1, rookFrom: A1, rookTo: D1,
		between:  BitboardOf(B1, C1, D1),
		kingPath: BitboardOf(E1, D1, C1),
	},
	BlackKingside: {
		move: BlackCastleKingside, king: BlackKing, rook: BlackRook,
		kingFrom: E8, kingTo: G8, rookFrom: H8, rookTo: F8,
		between:  BitboardOf(F8, G8),
		kingPath: BitboardOf(E8, F8, G8),
	},
	BlackQueenside: {
		move: BlackCastleQueenside, king: BlackKing, rook: BlackRook,
		kingFrom: E8, kingTo: C8, rookFrom: A8, rookTo: D8,
		between:  BitboardOf(B8, C8, D8),
		kingPath: BitboardOf(E8, D8, C8),
	},
}

// castleWings lists each side's wings in generation order.
var castleWings = [2][2]Castling{
	White: {WhiteKingside, WhiteQueenside},
	Black: {BlackKingside, BlackQueenside},
}

// CastlingBlocked reports whether castling on the given wing is currently
// impossible: the right is gone, king or rook is not at home, a square
// between them is occupied, or any square the king stands on, crosses or
// lands on is attacked (which includes being in check).
func (p Position) CastlingBlocked(wing Castling) bool {
	rule, ok := castleRules[wing]
	if !ok || p.castling&wing == 0 {
		return true
	}
	if !p.pieces[rule.king].Test(rule.kingFrom) || !p.pieces[rule.rook].Test(rule.rookFrom) {
		return true
	}
	if p.Occupancy()&rule.between != 0 {
		return true
	}
	return p.AttackedBy(rule.king.Color().Other())&rule.kingPath != 0
}

// PseudoLegalMoves returns the moves of the side to move that obey piece
// movement and occupancy. King steps already avoid attacked squares and
// castling is fully checked, but a move may still expose the king through a
// pin; LegalMoves removes those.
func (p Position) PseudoLegalMoves() []Move {
	return p.appendPseudoLegal(make([]Move, 0, 64))
}

func (p Position) appendPseudoLegal(moves []Move) []Move {
	us := p.SideToMove()
	them := us.Other()
	own := p.ColorOccupancy(us)
	enemy := p.ColorOccupancy(them)
	occupied := own | enemy

	base := MakePiece(us, Pawn)
	for pc := base; pc < base+6; pc++ {
		for pieces := p.pieces[pc]; pieces != 0; {
			from := pieces.PopFirst()
			switch pc.Type() {
			case Pawn:
				moves = p.appendPawnMoves(moves, us, from, enemy, occupied)
			case King:
				targets := KingAttacks(from) &^ own &^ p.AttackedBy(them)
				moves = appendTargets(moves, from, targets)
				for _, wing := range castleWings[us] {
					if !p.CastlingBlocked(wing) {
						moves = append(moves, castleRules[wing].move)
					}
				}
			default:
				moves = appendTargets(moves, from, PieceAttacks(pc, from, occupied)&^own)
			}
		}
	}
	return moves
}

func appendTargets(moves []Move, from Square, targets Bitboard) []Move {
	for targets != 0 {
		moves = append(moves, NewMove(from, targets.PopFirst()))
	}
	return moves
}

// appendPawnMoves adds pushes and captures of one pawn. Arrivals on the back
// rank become four promotion moves instead of one plain move.
func (p Position) appendPawnMoves(moves []Move, us Color, from Square, enemy, occupied Bitboard) []Move {
	captureable := enemy
	if p.enPassant != NoSquare {
		captureable.Set(p.enPassant)
	}
	targets := PawnPushes(us, from, occupied) | PawnAttacks(us, from)&captureable

	backRank := 0
	if us == Black {
		backRank = 7
	}
	for targets != 0 {
		to := targets.PopFirst()
		if to.Rank() != backRank {
			moves = append(moves, NewMove(from, to))
			continue
		}
		for _, promo := range Promotions {
			moves = append(moves, NewPromotion(from, to, promo))
		}
	}
	return moves
}

// LegalMoves returns every legal move of the side to move. Each pseudo-legal
// candidate is applied to a copy of the position and kept only if the
// mover's king is not attacked afterwards.
func (p Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if p.leavesKingSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingSafe applies m and re-scans the opponent's attacks.
func (p Position) leavesKingSafe(m Move) bool {
	us := p.SideToMove()
	next := p.WithMove(m)
	return next.pieces[MakePiece(us, King)]&next.AttackedBy(us.Other()) == 0
}

// IsLegal reports whether m is among the legal moves of the position.
func (p Position) IsLegal(m Move) bool {
	for _, legal := range p.LegalMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

// Status is the game state of a position as far as move generation can tell.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Status reports whether the side to move is mated, stalemated or can play on.
func (p Position) Status() Status {
	if len(p.LegalMoves()) > 0 {
		return Ongoing
	}
	if p.InCheck() {
		return Checkmate
	}
	return Stalemate
}
