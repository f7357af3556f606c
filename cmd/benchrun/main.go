// Command benchrun runs the bench package, the perft suite and the search
// benchmark in turn, stopping at the first failure.
//
// Usage: go run ./cmd/benchrun
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

type step struct {
	header string
	args   []string
}

var steps = []step{
	{"Columns: BENCHMARK  N  ns/op  B/op  allocs/op", []string{"test", "./bench", "-run", "^$", "-bench", ".", "-benchmem"}},
	{"\nPerft:", []string{"run", "./cmd/perft", "-depth", "5", "-label", "Initial"}},
	{"", []string{"run", "./cmd/perft", "-fen", kiwipete, "-depth", "3", "-label", "Kiwipete"}},
	{"\nSearch:", []string{"run", "./cmd/searchbench", "-depth", "3", "-workers", "4"}},
}

func main() {
	for _, s := range steps {
		if s.header != "" {
			fmt.Println(s.header)
		}
		cmd := exec.Command("go", s.args...)
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "go %s: %v\n", strings.Join(s.args, " "), err)
			os.Exit(1)
		}
	}
}
