package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runUCI(t *testing.T, script ...string) []string {
	t.Helper()
	var out bytes.Buffer
	uciLoop(strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func lastLine(lines []string) string { return lines[len(lines)-1] }

func TestUCIHandshake(t *testing.T) {
	lines := runUCI(t, "uci", "isready", "quit")
	if lines[0] != "id name Adam 0.1" || lines[1] != "id author aallbert" {
		t.Fatalf("id lines: got %q", lines[:2])
	}
	if lines[len(lines)-2] != "uciok" || lastLine(lines) != "readyok" {
		t.Fatalf("handshake: got %q", lines)
	}
}

func TestUCIGoReturnsLegalMove(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e4 e7e5", "go depth 1")
	if !strings.HasPrefix(lines[0], "info depth 1 score cp ") {
		t.Fatalf("info line: got %q", lines[0])
	}
	best := strings.TrimPrefix(lastLine(lines), "bestmove ")
	if best == lastLine(lines) || len(best) < 4 {
		t.Fatalf("bestmove line: got %q", lastLine(lines))
	}
}

func TestUCIFindsMate(t *testing.T) {
	lines := runUCI(t, "position fen 6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "go depth 2")
	if lastLine(lines) != "bestmove a1a8" {
		t.Fatalf("got %q want bestmove a1a8", lastLine(lines))
	}
	if !strings.Contains(lines[0], "score mate 1") {
		t.Fatalf("info line should report mate: %q", lines[0])
	}
}

func TestUCINoLegalMove(t *testing.T) {
	lines := runUCI(t, "position startpos moves f2f3 e7e5 g2g4 d8h4", "go depth 2")
	if lines[0] != "info string no legal moves (checkmate)" || lastLine(lines) != "bestmove 0000" {
		t.Fatalf("got %q", lines)
	}
}

func TestUCIPositionFENWithMoves(t *testing.T) {
	lines := runUCI(t,
		"position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 moves e2e4 e7e5 g1f3 b8c6 f1c4 d8f6 e1g1",
		"d")
	want := "Fen: r1b1kbnr/pppp1ppp/2n2q2/4p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4"
	if lastLine(lines) != want {
		t.Fatalf("got %q want %q", lastLine(lines), want)
	}
}

func TestUCIRejectsIllegalMove(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e4 e2e4", "d")
	if !strings.HasPrefix(lines[0], "info string Move e2e4 not played") {
		t.Fatalf("got %q", lines[0])
	}
	if lastLine(lines) != "Fen: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1" {
		t.Fatalf("moves before the bad one should stay applied: %q", lastLine(lines))
	}
}

func TestUCIPerft(t *testing.T) {
	lines := runUCI(t, "position startpos", "perft 2")
	if lastLine(lines) != "Nodes searched: 400" {
		t.Fatalf("got %q", lastLine(lines))
	}
	if lines[0] != "a2a3: 20" {
		t.Fatalf("first divide line: got %q", lines[0])
	}
}

func TestUCISetOption(t *testing.T) {
	lines := runUCI(t,
		"setoption name Threads value 4",
		"setoption name Depth value 1",
		"setoption name Depth value 99",
		"go")
	if lines[0] != "info string Depth must be between 1 and 8" {
		t.Fatalf("got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "info depth 1 ") {
		t.Fatalf("default depth should be 1 now: %q", lines[1])
	}
}

func TestUCIConsoleCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")
	lines := runUCI(t, "position startpos moves e2e4", "eval", "pgn", "svg "+path, "bogus")
	if !strings.HasPrefix(lines[0], "info string eval cp ") {
		t.Fatalf("eval: got %q", lines[0])
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "e4") {
		t.Fatalf("pgn output missing the move:\n%s", joined)
	}
	if !strings.Contains(joined, "info string wrote "+path) {
		t.Fatalf("svg not reported:\n%s", joined)
	}
	data, err := os.ReadFile(path)
	if err != nil || !bytes.Contains(data, []byte("</svg>")) {
		t.Fatalf("svg file: %v", err)
	}
	if lastLine(lines) != "info string Unknown command: bogus" {
		t.Fatalf("got %q", lastLine(lines))
	}
}
