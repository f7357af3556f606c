package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"adam-engine/board"
	"adam-engine/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 3, "search depth in plies, as in \"go depth N\"")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	workersFlag := flag.Int("workers", 1, "goroutines searching root moves")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := board.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	pos, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("bad FEN: %v", err)
	}

	depth := *depthFlag
	repeat := *repeatFlag
	searcher := &engine.Searcher{Workers: *workersFlag}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d workers=%d\n", fen, depth, repeat, *workersFlag)

	startAll := time.Now()
	var totalNodes uint64
	for i := 0; i < repeat; i++ {
		iterStart := time.Now()
		res, err := searcher.BestMove(pos, depth-1)
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		iterElapsed := time.Since(iterStart)
		totalNodes += res.Nodes

		fmt.Printf("iteration %d: bestmove %v  score %s  nodes=%d  time=%v\n",
			i+1, res.Move, res.UCIScore(), res.Nodes, iterElapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nps: %.0f\n", totalElapsed, float64(totalNodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
