package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"adam-engine/board"
	"adam-engine/oracle"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	moves := flag.String("moves", "", "Space separated moves to play from the FEN before counting")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Compare the divide against dragontoothmg and report mismatches")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	for _, s := range strings.Fields(*moves) {
		m, err := board.ParseMove(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "move %q: %v\n", s, err)
			os.Exit(2)
		}
		if pos, err = pos.ApplyAll(m); err != nil {
			fmt.Fprintf(os.Stderr, "move %q: %v\n", s, err)
			os.Exit(2)
		}
	}

	if *verify {
		ours := oracle.Ours(pos, *depth)
		diff := oracle.Diff(ours, oracle.DragontoothDivide(pos, *depth))
		for _, d := range diff {
			fmt.Println(d)
		}
		if len(diff) > 0 {
			fmt.Printf("%d mismatching root moves\n", len(diff))
			os.Exit(1)
		}
		fmt.Printf("OK: %d root moves, %d nodes\n", len(ours), ours.Total())
		return
	}

	// Optional divide output, in the perftree format
	if *divide {
		div := oracle.Ours(pos, *depth)
		for _, m := range div.Moves() {
			fmt.Printf("%s %d\n", m, div[m])
		}
		fmt.Println()
		fmt.Println(div.Total())
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
