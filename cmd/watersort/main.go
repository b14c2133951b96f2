// Command watersort solves water-sort puzzles read from YAML, JSON, or text files.
//
//	watersort solve -i puzzle.yaml --strategy dfs --timeout 10s --format json
//	watersort validate -i puzzle.txt
//	watersort formats
//	watersort batch puzzles/*.yaml --jobs 4 --report out.parquet
//
// Exit codes: 0 success, 1 error or unsolvable puzzle, 2 search timed out.
package main

import (
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
