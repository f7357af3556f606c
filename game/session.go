// Package game holds the state of a game in progress: a start position and
// the moves played from it. The current position is always the fold of the
// moves over the start.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"adam-engine/board"
)

var ErrPGNReplay = errors.New("move rejected while building PGN")

// Session is the only mutable state of the protocol layer.
type Session struct {
	start board.Position
	pos   board.Position
	moves []board.Move
}

// New starts a session from the standard initial position.
func New() *Session {
	return FromPosition(board.StartingPosition())
}

// FromPosition starts a session from an arbitrary position.
func FromPosition(p board.Position) *Session {
	return &Session{start: p, pos: p}
}

// FromFEN starts a session from a FEN string.
func FromFEN(fen string) (*Session, error) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return FromPosition(p), nil
}

// Replay folds moves over start, rejecting the first illegal one.
func Replay(start board.Position, moves []board.Move) (board.Position, error) {
	return start.ApplyAll(moves...)
}

// Position is the current position.
func (s *Session) Position() board.Position { return s.pos }

// Start is the position the session began from.
func (s *Session) Start() board.Position { return s.start }

// Moves returns a copy of the moves played so far.
func (s *Session) Moves() []board.Move {
	return append([]board.Move(nil), s.moves...)
}

// Reset discards the history and restarts from p.
func (s *Session) Reset(p board.Position) {
	s.start = p
	s.pos = p
	s.moves = s.moves[:0]
}

// Play appends a legal move. An illegal move leaves the session unchanged.
func (s *Session) Play(m board.Move) error {
	if !s.pos.IsLegal(m) {
		return fmt.Errorf("%s: %w", m, board.ErrIllegalMove)
	}
	s.pos = s.pos.WithMove(m)
	s.moves = append(s.moves, m)
	return nil
}

// PlayUCI parses a coordinate move such as "e2e4" or "e7e8q" and plays it.
func (s *Session) PlayUCI(str string) error {
	m, err := board.ParseMove(str)
	if err != nil {
		return err
	}
	return s.Play(m)
}

// PlayAll plays a sequence of coordinate moves, stopping at the first error.
func (s *Session) PlayAll(moves []string) error {
	for _, str := range moves {
		if err := s.PlayUCI(str); err != nil {
			return err
		}
	}
	return nil
}

// Undo takes back the last move, replaying the rest from the start.
func (s *Session) Undo() bool {
	if len(s.moves) == 0 {
		return false
	}
	s.moves = s.moves[:len(s.moves)-1]
	pos, err := Replay(s.start, s.moves)
	if err != nil {
		// Every stored move was legal when it was played.
		panic(err)
	}
	s.pos = pos
	return true
}

// Status reports whether the current side to move is mated or stalemated.
func (s *Session) Status() board.Status { return s.pos.Status() }

// PGN renders the session as PGN. The moves are replayed through an
// independent rules implementation, which also converts them to SAN.
func (s *Session) PGN() (string, error) {
	var opts []func(*chess.Game)
	if fen := s.start.FEN(); fen != board.FENStartPos {
		opt, err := chess.FEN(fen)
		if err != nil {
			return "", fmt.Errorf("%w: start position: %w", ErrPGNReplay, err)
		}
		opts = append(opts, opt)
	}
	g := chess.NewGame(opts...)
	g.AddTagPair("Event", "adam-engine session")
	g.AddTagPair("Site", "?")

	for i, m := range s.moves {
		mv := findMove(g.ValidMoves(), m.String())
		if mv == nil {
			return "", fmt.Errorf("%w: move %d (%s)", ErrPGNReplay, i+1, m)
		}
		if err := g.Move(mv); err != nil {
			return "", fmt.Errorf("%w: move %d (%s): %w", ErrPGNReplay, i+1, m, err)
		}
	}
	g.AddTagPair("Result", string(g.Outcome()))
	return strings.TrimSpace(g.String()), nil
}

func findMove(moves []*chess.Move, uci string) *chess.Move {
	for _, mv := range moves {
		if mv.String() == uci {
			return mv
		}
	}
	return nil
}
