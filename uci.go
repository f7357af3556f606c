package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"adam-engine/board"
	"adam-engine/engine"
	"adam-engine/game"
	"adam-engine/render"
)

const (
	engineName   = "Adam 0.1"
	engineAuthor = "aallbert"

	defaultDepth = 3
	maxDepth     = 8
	maxThreads   = 64
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

// uciState is everything the protocol loop remembers between commands.
type uciState struct {
	out      io.Writer
	session  *game.Session
	searcher engine.Searcher
	depth    int
}

func uciLoop(in io.Reader, out io.Writer) {
	st := &uciState{out: out, session: game.New(), depth: defaultDepth}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			st.println("id name " + engineName)
			st.println("id author " + engineAuthor)
			st.printf("option name Depth type spin default %d min 1 max %d\n", defaultDepth, maxDepth)
			st.printf("option name Threads type spin default 1 min 1 max %d\n", maxThreads)
			st.println("uciok")
		case "isready":
			st.println("readyok")
		case "ucinewgame":
			st.session = game.New()
		case "quit":
			return
		case "stop":
			// Searches run to completion before the next command is read.
		case "position":
			st.position(tokens[1:])
		case "go":
			st.goCommand(tokens[1:])
		case "setoption":
			st.setOption(tokens[1:])

		// Console commands
		case "d":
			st.print(render.Text(st.session.Position()))
			st.println("Fen: " + st.session.Position().FEN())
		case "perft":
			st.perft(tokens[1:])
		case "eval":
			st.printf("info string eval cp %d\n", engine.Evaluate(st.session.Position()))
		case "pgn":
			pgn, err := st.session.PGN()
			if err != nil {
				st.println("info string pgn failed:", err)
				continue
			}
			st.println(pgn)
		case "svg":
			st.svg(tokens[1:])
		default:
			st.println("info string Unknown command:", line)
		}
	}
}

func (st *uciState) println(args ...any)               { fmt.Fprintln(st.out, args...) }
func (st *uciState) printf(format string, args ...any) { fmt.Fprintf(st.out, format, args...) }
func (st *uciState) print(s string)                    { io.WriteString(st.out, s) }

// position handles "position startpos|fen <fen> [moves m1 m2 ...]". The
// session is rebuilt from scratch so that it is always the fold of the
// listed moves.
func (st *uciState) position(args []string) {
	if len(args) == 0 {
		st.println("info string Malformed position command")
		return
	}
	var (
		session *game.Session
		rest    []string
	)
	switch strings.ToLower(args[0]) {
	case "startpos":
		session = game.New()
		rest = args[1:]
	case "fen":
		end := len(args)
		for i, tok := range args[1:] {
			if strings.ToLower(tok) == "moves" {
				end = i + 1
				break
			}
		}
		s, err := game.FromFEN(strings.Join(args[1:end], " "))
		if err != nil {
			st.println("info string Invalid fen position:", err)
			return
		}
		session, rest = s, args[end:]
	default:
		st.println("info string Invalid position subcommand")
		return
	}

	if len(rest) > 0 {
		if strings.ToLower(rest[0]) != "moves" {
			st.println("info string Malformed position command")
			return
		}
		for _, mv := range rest[1:] {
			if err := session.PlayUCI(strings.ToLower(mv)); err != nil {
				st.println("info string Move", mv, "not played:", err)
				break
			}
		}
	}
	st.session = session
}

// goCommand handles "go [depth N]". Clock parameters are accepted and
// ignored; the search always runs to a fixed depth in plies.
func (st *uciState) goCommand(args []string) {
	depth := st.depth
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "infinite", "ponder":
			continue
		case "depth":
			if i+1 >= len(args) {
				st.println("info string Malformed go command option depth")
				continue
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				st.println("info string Malformed go command option; could not convert depth")
				continue
			}
			depth = n
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes", "mate":
			i++
		default:
			st.println("info string Unknown go subcommand", args[i])
		}
	}

	pos := st.session.Position()
	start := time.Now()
	res, err := st.searcher.BestMove(pos, depth-1)
	if errors.Is(err, engine.ErrNoLegalMoves) {
		st.printf("info string no legal moves (%s)\n", pos.Status())
		st.println("bestmove 0000")
		return
	}
	if err != nil {
		st.println("info string search failed:", err)
		st.println("bestmove 0000")
		return
	}
	elapsed := time.Since(start)
	nps := uint64(float64(res.Nodes) / max(elapsed.Seconds(), 1e-9))
	st.printf("info depth %d score %s nodes %d time %d nps %d pv %s\n",
		depth, res.UCIScore(), res.Nodes, elapsed.Milliseconds(), nps, res.Move)
	st.printf("bestmove %s\n", res.Move)
}

// setOption handles "setoption name <id> value <x>" for Depth and Threads.
func (st *uciState) setOption(args []string) {
	var name, value string
	for i := 0; i+1 < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "name":
			name = strings.ToLower(args[i+1])
		case "value":
			value = args[i+1]
		}
	}
	n, err := strconv.Atoi(value)
	switch name {
	case "depth":
		if err != nil || n < 1 || n > maxDepth {
			st.println("info string Depth must be between 1 and", maxDepth)
			return
		}
		st.depth = n
	case "threads":
		if err != nil || n < 1 || n > maxThreads {
			st.println("info string Threads must be between 1 and", maxThreads)
			return
		}
		st.searcher.Workers = n
	default:
		st.println("info string Unknown option", name)
	}
}

// perft prints the divide of the current position followed by the total.
func (st *uciState) perft(args []string) {
	if len(args) == 0 {
		st.println("info string Usage: perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		st.println("info string Malformed perft depth", args[0])
		return
	}
	div := board.PerftDivide(st.session.Position(), depth)
	moves := make([]board.Move, 0, len(div))
	var total uint64
	for m, n := range div {
		moves = append(moves, m)
		total += n
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
	for _, m := range moves {
		st.printf("%s: %d\n", m, div[m])
	}
	st.println()
	st.printf("Nodes searched: %d\n", total)
}

// svg writes a diagram of the current position, marking the last move.
func (st *uciState) svg(args []string) {
	if len(args) == 0 {
		st.println("info string Usage: svg <path>")
		return
	}
	opts := render.SVGOptions{Coordinates: true}
	if moves := st.session.Moves(); len(moves) > 0 {
		last := moves[len(moves)-1]
		opts.Highlight = []board.Square{last.From(), last.To()}
	}
	f, err := os.Create(args[0])
	if err != nil {
		st.println("info string svg failed:", err)
		return
	}
	err = render.SVG(f, st.session.Position(), opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		st.println("info string svg failed:", err)
		return
	}
	st.println("info string wrote", args[0])
}
