package engine

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"adam-engine/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MateScore is the magnitude of a mated side's score. The remaining depth
	// is added on top so that quicker mates rank higher.
	MateScore = 100000
	DrawScore = 0
)

var (
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrNegativeDepth = errors.New("negative search depth")
)

// Result is the outcome of a root search.
type Result struct {
	Move   board.Move
	Score  int // White's point of view
	Depth  int // plies searched below each root move
	Nodes  uint64
	// Every legal root move with its score, in generation order.
	Moves  []board.Move
	Scores []int
	white  bool
}

// Searcher runs plain minimax. The zero value searches sequentially with
// the default evaluation.
type Searcher struct {
	Evaluate Evaluator
	// Workers > 1 searches root moves concurrently. The result is the same
	// as a sequential search.
	Workers int
}

// DefaultSearcher is used by the package-level functions.
var DefaultSearcher = &Searcher{}

func (s *Searcher) evaluator() Evaluator {
	if s == nil || s.Evaluate == nil {
		return Evaluate
	}
	return s.Evaluate
}

// Minimax returns the minimax score of p searched depth plies deep.
func Minimax(p board.Position, depth int) int {
	return DefaultSearcher.Minimax(p, depth)
}

// BestMove searches every legal move of p with DefaultSearcher.
func BestMove(p board.Position, depth int) (Result, error) {
	return DefaultSearcher.BestMove(p, depth)
}

// Minimax scores p at the given depth: the static evaluation at depth 0,
// otherwise the best child score for the side to move (max for White, min
// for Black). No pruning is done.
func (s *Searcher) Minimax(p board.Position, depth int) int {
	var nodes uint64
	return minimax(p, depth, s.evaluator(), &nodes)
}

func minimax(p board.Position, depth int, eval Evaluator, nodes *uint64) int {
	*nodes++
	if depth <= 0 {
		return eval(p)
	}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return terminalScore(p, depth)
	}

	white := p.WhiteToMove()
	best := minimax(p.WithMove(moves[0]), depth-1, eval, nodes)
	for _, m := range moves[1:] {
		score := minimax(p.WithMove(m), depth-1, eval, nodes)
		if better(white, score, best) {
			best = score
		}
	}
	return best
}

// terminalScore scores a position without legal moves: the mated side loses
// MateScore plus the remaining depth, stalemate is a draw.
func terminalScore(p board.Position, depth int) int {
	if !p.InCheck() {
		return DrawScore
	}
	if p.WhiteToMove() {
		return -(MateScore + depth)
	}
	return MateScore + depth
}

// better reports whether score strictly improves on best for the mover.
func better(white bool, score, best int) bool {
	if white {
		return score > best
	}
	return score < best
}

// BestMove scores every legal root move with Minimax(child, depth) and picks
// the best one for the side to move. Ties keep the earliest move in
// generation order. A position without legal moves yields ErrNoLegalMoves.
func (s *Searcher) BestMove(p board.Position, depth int) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoLegalMoves, p.Status())
	}

	scores, nodes := s.scoreRootMoves(p, moves, depth)

	white := p.WhiteToMove()
	best := 0
	for i := 1; i < len(moves); i++ {
		if better(white, scores[i], scores[best]) {
			best = i
		}
	}
	return Result{
		Move:   moves[best],
		Score:  scores[best],
		Depth:  depth,
		Nodes:  nodes,
		Moves:  moves,
		Scores: scores,
		white:  white,
	}, nil
}

// scoreRootMoves fills scores in move order. With several workers each root
// move is searched by whichever goroutine picks up its index; the slots are
// disjoint, so the reduction in BestMove sees the same slice either way.
func (s *Searcher) scoreRootMoves(p board.Position, moves []board.Move, depth int) ([]int, uint64) {
	eval := s.evaluator()
	scores := make([]int, len(moves))

	workers := 1
	if s != nil && s.Workers > 1 {
		workers = min(s.Workers, len(moves))
	}
	if workers == 1 {
		var nodes uint64
		for i, m := range moves {
			scores[i] = minimax(p.WithMove(m), depth, eval, &nodes)
		}
		return scores, nodes
	}

	var (
		wg    sync.WaitGroup
		total atomic.Uint64
		next  = make(chan int)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var nodes uint64
			for i := range next {
				scores[i] = minimax(p.WithMove(moves[i]), depth, eval, &nodes)
			}
			total.Add(nodes)
		}()
	}
	for i := range moves {
		next <- i
	}
	close(next)
	wg.Wait()
	return scores, total.Load()
}

// IsMate reports whether score is a forced mate rather than an evaluation.
func IsMate(score int) bool {
	return score >= MateScore || score <= -MateScore
}

// UCIScore formats the result score from the side to move's point of view,
// as "cp N" or "mate N".
func (r Result) UCIScore() string {
	score := r.Score
	if !r.white {
		score = -score
	}
	if !IsMate(score) {
		return fmt.Sprintf("cp %d", score)
	}
	// The root move is one ply; the mated node had remaining depth left over.
	remaining := max(score, -score) - MateScore
	plies := r.Depth + 1 - remaining
	mateIn := (plies + 1) / 2
	if score < 0 {
		mateIn = -mateIn
	}
	return fmt.Sprintf("mate %d", mateIn)
}
