package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"sudoku-solver/internal/puzzles"
	"sudoku-solver/internal/sudoku/dp"
	"sudoku-solver/pkg/constants"
)

func main() {
	count := flag.Int("n", 10000, "Number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "Output file path")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "Starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("Generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	puzzleSet := make([]puzzles.CompactPuzzle, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				remaining := float64(*count-int(g)) / rate
				fmt.Printf("  Progress: %d/%d (%.1f/sec, ~%.0fs remaining)\n", g, *count, rate, remaining)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + int64(idx)
				puzzleSet[idx] = generatePuzzle(seed)
				atomic.AddInt64(&generated, 1)
			}
		}(w)
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	fmt.Printf("Writing to %s...\n", *output)

	file := puzzles.PuzzleFile{
		Version: 1,
		Count:   *count,
		Puzzles: puzzleSet,
	}

	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("Done! File size: %.2f MB\n", sizeMB)
}

// generatePuzzle produces one solved grid plus a subset-consistent set of
// given-cell indices per difficulty, using the DP solver's deterministic
// LCG fixture generator (seeded so a run can be reproduced exactly).
func generatePuzzle(seed int64) puzzles.CompactPuzzle {
	fullGrid := dp.GenerateFullGrid(seed)

	solStr := make([]byte, constants.TotalCells)
	for i, v := range fullGrid {
		solStr[i] = byte('0' + v)
	}

	allPuzzles := dp.CarveGivensWithSubset(fullGrid, seed)

	givens := make(map[string][]int, len(allPuzzles))
	for diff, puzzle := range allPuzzles {
		var indices []int
		for i, v := range puzzle {
			if v != 0 {
				indices = append(indices, i)
			}
		}
		givens[constants.DifficultyKeys[diff]] = indices
	}

	return puzzles.CompactPuzzle{
		S: string(solStr),
		G: givens,
	}
}
