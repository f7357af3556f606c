// Package oracle cross-checks the move generator against independent
// implementations. Perft and divide counts from dragontoothmg and goosemg
// are compared move by move with ours.
package oracle

import (
	"fmt"
	"sort"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"

	goose "github.com/Oliverans/GooseEngineMG/goosemg"

	"adam-engine/board"
)

// Divide maps a root move in coordinate notation to its perft count.
type Divide map[string]uint64

// Total sums the counts of all root moves.
func (d Divide) Total() uint64 {
	var sum uint64
	for _, n := range d {
		sum += n
	}
	return sum
}

// Moves returns the root moves in sorted order.
func (d Divide) Moves() []string {
	moves := maps.Keys(d)
	sort.Strings(moves)
	return moves
}

// Ours is board.PerftDivide keyed by move text.
func Ours(p board.Position, depth int) Divide {
	div := make(Divide)
	for m, n := range board.PerftDivide(p, depth) {
		div[m.String()] = n
	}
	return div
}

// =============================================================================
// DRAGONTOOTH
// =============================================================================

// DragontoothPerft counts leaves with dragontoothmg.
func DragontoothPerft(p board.Position, depth int) uint64 {
	b := dragontoothmg.ParseFen(p.FEN())
	return dragontoothPerft(&b, depth)
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth < 1 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// DragontoothDivide is the per-root-move breakdown of DragontoothPerft.
func DragontoothDivide(p board.Position, depth int) Divide {
	div := make(Divide)
	if depth < 1 {
		return div
	}
	b := dragontoothmg.ParseFen(p.FEN())
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		div[m.String()] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	return div
}

// =============================================================================
// GOOSEMG
// =============================================================================

// GoosePerft counts leaves with goosemg.
func GoosePerft(p board.Position, depth int) (uint64, error) {
	b, err := goose.ParseFEN(p.FEN())
	if err != nil {
		return 0, fmt.Errorf("goosemg: %w", err)
	}
	if depth < 1 {
		return 1, nil
	}
	return goose.Perft(b, depth), nil
}

// GooseDivide is the per-root-move breakdown of GoosePerft.
func GooseDivide(p board.Position, depth int) (Divide, error) {
	b, err := goose.ParseFEN(p.FEN())
	if err != nil {
		return nil, fmt.Errorf("goosemg: %w", err)
	}
	div := make(Divide)
	for m, n := range goose.PerftDivide(b, depth) {
		div[m.String()] = n
	}
	return div, nil
}

// =============================================================================
// DIFF
// =============================================================================

// Mismatch is one root move on which two divides disagree. A move missing
// from one side has a zero count and the matching flag set.
type Mismatch struct {
	Move        string
	Got, Want   uint64
	MissingGot  bool
	MissingWant bool
}

func (m Mismatch) String() string {
	switch {
	case m.MissingGot:
		return fmt.Sprintf("%s: missing, want %d", m.Move, m.Want)
	case m.MissingWant:
		return fmt.Sprintf("%s: got %d, not a legal move", m.Move, m.Got)
	default:
		return fmt.Sprintf("%s: got %d want %d", m.Move, m.Got, m.Want)
	}
}

// Diff lists the root moves where got and want disagree, sorted by move.
func Diff(got, want Divide) []Mismatch {
	union := make(Divide, len(want))
	for m := range got {
		union[m] = 0
	}
	for m := range want {
		union[m] = 0
	}

	var out []Mismatch
	for _, move := range union.Moves() {
		g, inGot := got[move]
		w, inWant := want[move]
		if inGot && inWant && g == w {
			continue
		}
		out = append(out, Mismatch{Move: move, Got: g, Want: w, MissingGot: !inGot, MissingWant: !inWant})
	}
	return out
}
