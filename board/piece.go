package board

// Piece constants and types for pieces and colors
type Piece uint8

// The numeric value of each piece is its index into Position's bitboards.
const (
	WhitePawn Piece = iota
	WhiteBishop
	WhiteKnight
	WhiteRook
	WhiteKing
	WhiteQueen
	BlackPawn
	BlackBishop
	BlackKnight
	BlackRook
	BlackKing
	BlackQueen

	// NoPiece is returned by lookups on empty squares.
	NoPiece
)

// PieceCount is the number of concrete piece variants.
const PieceCount = 12

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Bishop
	Knight
	Rook
	King
	Queen
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// MakePiece combines a color and a type into a concrete Piece.
func MakePiece(c Color, t PieceType) Piece { return Piece(uint8(c)*6 + uint8(t)) }

// Color returns the side owning the piece. NoPiece reports Black.
func (p Piece) Color() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p % 6) }

// Valid reports whether p is one of the twelve concrete pieces.
func (p Piece) Valid() bool { return p < NoPiece }

// Char returns the FEN letter of the piece: uppercase for White, lowercase
// for Black.
func (p Piece) Char() byte {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteBishop:
		return 'B'
	case WhiteKnight:
		return 'N'
	case WhiteRook:
		return 'R'
	case WhiteKing:
		return 'K'
	case WhiteQueen:
		return 'Q'
	case BlackPawn:
		return 'p'
	case BlackBishop:
		return 'b'
	case BlackKnight:
		return 'n'
	case BlackRook:
		return 'r'
	case BlackKing:
		return 'k'
	case BlackQueen:
		return 'q'
	default:
		return '.'
	}
}

func (p Piece) String() string { return string(p.Char()) }

// PieceFromChar converts a FEN letter into the corresponding Piece.
func PieceFromChar(ch byte) (Piece, bool) {
	switch ch {
	case 'P':
		return WhitePawn, true
	case 'B':
		return WhiteBishop, true
	case 'N':
		return WhiteKnight, true
	case 'R':
		return WhiteRook, true
	case 'K':
		return WhiteKing, true
	case 'Q':
		return WhiteQueen, true
	case 'p':
		return BlackPawn, true
	case 'b':
		return BlackBishop, true
	case 'n':
		return BlackKnight, true
	case 'r':
		return BlackRook, true
	case 'k':
		return BlackKing, true
	case 'q':
		return BlackQueen, true
	default:
		return NoPiece, false
	}
}

// Castling rights bit flags
type Castling uint8

const (
	// White king-side (short) castling
	WhiteKingside Castling = 1 << iota
	// White queen-side (long) castling
	WhiteQueenside
	// Black king-side castling
	BlackKingside
	// Black queen-side castling
	BlackQueenside

	NoCastling  Castling = 0
	AllCastling          = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingOf returns both castling flags belonging to a color.
func castlingOf(c Color) Castling {
	if c == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

// String renders the rights in FEN form ("KQkq", "-" when none remain).
func (c Castling) String() string {
	if c&AllCastling == 0 {
		return "-"
	}
	out := make([]byte, 0, 4)
	if c&WhiteKingside != 0 {
		out = append(out, 'K')
	}
	if c&WhiteQueenside != 0 {
		out = append(out, 'Q')
	}
	if c&BlackKingside != 0 {
		out = append(out, 'k')
	}
	if c&BlackQueenside != 0 {
		out = append(out, 'q')
	}
	return string(out)
}
