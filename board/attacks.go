package board

// Attack masks are reachability sets: they include squares holding pieces of
// either color. Callers remove their own pieces.

// Precomputed masks for the leapers.
var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard

// Pawn capture masks: pawnAttacks[color][sq].
var pawnAttacks [2][64]Bitboard

// Index offsets of the leapers. Raw index arithmetic cannot tell "off the
// right edge" from "wrapped onto the next rank", so every candidate is also
// checked against the largest file distance the piece can travel.
var knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
var kingOffsets = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}

const (
	knightFileTravel = 2
	kingFileTravel   = 1
)

// Slider directions as (rank step, file step). Rank steps are in index
// direction: -1 moves towards the 8th rank.
var bishopDirections = [4][2]int{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}
var rookDirections = [4][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}

func init() {
	initLeaperTables()
	initPawnTables()
}

func leaperMask(sq Square, offsets [8]int, fileTravel int) Bitboard {
	var mask Bitboard
	for _, off := range offsets {
		to := int(sq) + off
		if to < 0 || to > 63 {
			continue
		}
		if absDiff(Square(to).File(), sq.File()) > fileTravel {
			continue
		}
		mask.Set(Square(to))
	}
	return mask
}

// initLeaperTables precomputes knight and king masks for every square.
func initLeaperTables() {
	for sq := A8; sq <= H1; sq++ {
		knightAttacks[sq] = leaperMask(sq, knightOffsets, knightFileTravel)
		kingAttacks[sq] = leaperMask(sq, kingOffsets, kingFileTravel)
	}
}

// initPawnTables precomputes the diagonal capture squares of pawns.
func initPawnTables() {
	for sq := A8; sq <= H1; sq++ {
		file, rank := sq.File(), sq.Rank()

		// White pawns move towards rank index 0.
		if rank > 0 {
			if file > 0 {
				pawnAttacks[White][sq].Set(NewSquare(file-1, rank-1))
			}
			if file < 7 {
				pawnAttacks[White][sq].Set(NewSquare(file+1, rank-1))
			}
		}

		// Black pawns move towards rank index 7.
		if rank < 7 {
			if file > 0 {
				pawnAttacks[Black][sq].Set(NewSquare(file-1, rank+1))
			}
			if file < 7 {
				pawnAttacks[Black][sq].Set(NewSquare(file+1, rank+1))
			}
		}
	}
}

// PawnAttacks returns the two diagonal capture squares of a c pawn on sq,
// clipped at the board edges.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// PawnPushes returns the non-capturing advances of a c pawn on sq: one square
// forward, plus two from its starting rank. Any piece blocks a push.
func PawnPushes(c Color, sq Square, occupied Bitboard) Bitboard {
	step, startRank := -8, 6
	if c == Black {
		step, startRank = 8, 1
	}
	one := int(sq) + step
	if one < 0 || one > 63 || occupied.Test(Square(one)) {
		return EmptyBoard
	}
	pushes := Square(one).Mask()
	if sq.Rank() == startRank {
		two := Square(one + step)
		if !occupied.Test(two) {
			pushes.Set(two)
		}
	}
	return pushes
}

// KnightAttacks returns the squares a knight on sq reaches.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the squares adjacent to sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// ray walks from sq one step at a time until it leaves the board or hits an
// occupied square, which is included.
func ray(sq Square, dRank, dFile int, occupied Bitboard) Bitboard {
	var attacks Bitboard
	rank, file := sq.Rank()+dRank, sq.File()+dFile
	for rank >= 0 && rank < 8 && file >= 0 && file < 8 {
		to := NewSquare(file, rank)
		attacks.Set(to)
		if occupied.Test(to) {
			break
		}
		rank += dRank
		file += dFile
	}
	return attacks
}

// BishopAttacks ray-casts the four diagonals from sq.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range bishopDirections {
		attacks |= ray(sq, d[0], d[1], occupied)
	}
	return attacks
}

// RookAttacks ray-casts the ranks and files from sq.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range rookDirections {
		attacks |= ray(sq, d[0], d[1], occupied)
	}
	return attacks
}

// QueenAttacks is the union of bishop and rook rays.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// PieceAttacks dispatches on the piece type. Pawns report their capture
// squares; pushes are not attacks.
func PieceAttacks(pc Piece, sq Square, occupied Bitboard) Bitboard {
	switch pc.Type() {
	case Pawn:
		return PawnAttacks(pc.Color(), sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Knight:
		return KnightAttacks(sq)
	case Rook:
		return RookAttacks(sq, occupied)
	case King:
		return KingAttacks(sq)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		panic("board: unknown piece type")
	}
}

// AttackedBy returns every square attacked by the pieces of color c.
func (p Position) AttackedBy(c Color) Bitboard {
	occupied := p.Occupancy()
	var attacks Bitboard
	base := MakePiece(c, Pawn)
	for pc := base; pc < base+6; pc++ {
		for pieces := p.pieces[pc]; pieces != 0; {
			attacks |= PieceAttacks(pc, pieces.PopFirst(), occupied)
		}
	}
	return attacks
}

// InCheck reports whether the side to move has its king attacked.
func (p Position) InCheck() bool {
	us := p.SideToMove()
	return p.pieces[MakePiece(us, King)]&p.AttackedBy(us.Other()) != 0
}
