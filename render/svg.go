package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"adam-engine/board"
)

// SVGOptions controls the diagram. The zero value draws a 45px board from
// White's side.
type SVGOptions struct {
	SquareSize int
	// Flipped draws the board from Black's side.
	Flipped bool
	// Highlight marks squares such as the last move's origin and destination.
	Highlight []board.Square
	// Coordinates adds file letters and rank digits along the edges.
	Coordinates bool
}

const (
	defaultSquareSize = 45
	lightFill         = "fill:#f0d9b5"
	darkFill          = "fill:#b58863"
	highlightFill     = "fill:#cdd26a;fill-opacity:0.8"
	checkFill         = "fill:#e04040;fill-opacity:0.7"
)

var glyphs = [board.PieceCount]string{
	board.WhitePawn:   "♙",
	board.WhiteBishop: "♗",
	board.WhiteKnight: "♘",
	board.WhiteRook:   "♖",
	board.WhiteKing:   "♔",
	board.WhiteQueen:  "♕",
	board.BlackPawn:   "♟",
	board.BlackBishop: "♝",
	board.BlackKnight: "♞",
	board.BlackRook:   "♜",
	board.BlackKing:   "♚",
	board.BlackQueen:  "♛",
}

// errWriter remembers the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

// SVG writes an SVG diagram of p to w. A king in check gets a red square.
func SVG(w io.Writer, p board.Position, opts SVGOptions) error {
	size := opts.SquareSize
	if size <= 0 {
		size = defaultSquareSize
	}
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	highlighted := board.BitboardOf(opts.Highlight...)
	checked := board.NoSquare
	if p.InCheck() {
		checked = p.KingSquare(p.SideToMove())
	}

	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(8*size+2*margin, 8*size+2*margin)
	canvas.Title(p.FEN())

	for sq := board.A8; sq <= board.H1; sq++ {
		col, row := sq.File(), sq.Rank()
		if opts.Flipped {
			col, row = 7-col, 7-row
		}
		x, y := margin+col*size, margin+row*size

		fill := darkFill
		if lightSquare(sq) {
			fill = lightFill
		}
		canvas.Rect(x, y, size, size, fill)
		if highlighted.Test(sq) {
			canvas.Rect(x, y, size, size, highlightFill)
		}
		if sq == checked {
			canvas.Rect(x, y, size, size, checkFill)
		}
		if pc := p.PieceAt(sq); pc != board.NoPiece {
			canvas.Text(x+size/2, y+size*4/5, glyphs[pc],
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", size*4/5))
		}
	}

	if opts.Coordinates {
		style := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#555", size/3)
		for i := 0; i < 8; i++ {
			file, rank := i, i
			if opts.Flipped {
				file, rank = 7-i, 7-i
			}
			pos := margin + i*size + size/2
			canvas.Text(pos, 8*size+margin+margin*3/4, string(rune('a'+file)), style)
			canvas.Text(margin/2, pos+size/8, string(rune('8'-rank)), style)
		}
	}

	canvas.End()
	return out.err
}
