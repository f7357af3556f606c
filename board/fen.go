package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN parses a FEN string. The halfmove clock and fullmove number are
// optional and default to 0 and 1.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return Position{}, fenError("expected 4 to 6 fields, got %d", len(fields))
	}

	p := Position{enPassant: NoSquare, fullmoveNumber: 1}

	// 1. Piece placement, rank 8 first, which is also index order.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fenError("expected 8 ranks, got %d", len(ranks))
	}
	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := PieceFromChar(ch)
			if !ok {
				return Position{}, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return Position{}, fenError("too many squares in rank %d", 8-rank)
			}
			p.pieces[pc].Set(NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return Position{}, fenError("rank %d does not have 8 columns", 8-rank)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.whiteToMove = true
	case "b":
		p.whiteToMove = false
	default:
		return Position{}, fenError("side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.castling |= WhiteKingside
			case 'Q':
				p.castling |= WhiteQueenside
			case 'k':
				p.castling |= BlackKingside
			case 'q':
				p.castling |= BlackQueenside
			default:
				return Position{}, fenError("invalid castling character %q", fields[2][i])
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, fenError("en passant square %q", fields[3])
		}
		p.enPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, fenError("halfmove clock %q", fields[4])
		}
		p.halfmoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, fenError("fullmove number %q", fields[5])
		}
		p.fullmoveNumber = n
	}

	if err := p.Validate(); err != nil {
		return Position{}, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}
	return p, nil
}

// MustParseFEN is ParseFEN for FEN literals known to be valid; it panics on error.
func MustParseFEN(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// FEN produces the FEN string of the position.
func (p Position) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.PieceAt(NewSquare(file, rank))
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}

	// 2. Side to move
	if p.whiteToMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	// 3-4. Castling rights and en passant square
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())

	// 5-6. Clocks
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

// String returns the FEN of the position.
func (p Position) String() string { return p.FEN() }
