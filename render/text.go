// Package render draws positions for humans: a plain text board for the
// console and an SVG diagram.
package render

import (
	"strings"

	"adam-engine/board"
)

// Text returns the board as eight rows of piece letters, rank 8 on top,
// with file and rank labels. Empty squares alternate '.' (light) and '+'
// (dark).
func Text(p board.Position) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for rank := 0; rank < 8; rank++ {
		label := byte('8' - rank)
		sb.WriteByte(label)
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			switch pc := p.PieceAt(sq); {
			case pc != board.NoPiece:
				sb.WriteByte(pc.Char())
			case lightSquare(sq):
				sb.WriteByte('.')
			default:
				sb.WriteByte('+')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(label)
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// lightSquare reports the square colour; a8 and h1 are light.
func lightSquare(sq board.Square) bool {
	return (sq.Rank()+sq.File())%2 == 0
}
