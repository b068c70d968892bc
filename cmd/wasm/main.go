//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"sudoku-solver/internal/sudoku/dp"
	"sudoku-solver/internal/sudoku/engine"
	"sudoku-solver/pkg/constants"
)

// jsArrayToIntSlice converts a JavaScript array to a Go []int
func jsArrayToIntSlice(arr js.Value) []int {
	length := arr.Length()
	result := make([]int, length)
	for i := 0; i < length; i++ {
		result[i] = arr.Index(i).Int()
	}
	return result
}

// intSliceToJSArray converts a Go []int to a JavaScript array
func intSliceToJSArray(slice []int) js.Value {
	arr := js.Global().Get("Array").New(len(slice))
	for i, v := range slice {
		arr.SetIndex(i, v)
	}
	return arr
}

// toJSValue converts a Go value to a JavaScript value via JSON
func toJSValue(v interface{}) js.Value {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf(nil)
	}
	return js.Global().Get("JSON").Call("parse", string(jsonBytes))
}

// givensToPuzzleString converts a []int grid (0 for empty) into the
// engine's 81-byte ASCII puzzle representation.
func givensToPuzzleString(givens []int) string {
	buf := make([]byte, constants.TotalCells)
	for i, v := range givens {
		if v == 0 {
			buf[i] = '.'
		} else {
			buf[i] = byte('0' + v)
		}
	}
	return string(buf)
}

// puzzleStringToIntSlice converts an engine ASCII puzzle back into a
// []int grid (0 for '.').
func puzzleStringToIntSlice(puzzle string) []int {
	out := make([]int, len(puzzle))
	for i := 0; i < len(puzzle); i++ {
		if puzzle[i] == '.' {
			out[i] = 0
		} else {
			out[i] = int(puzzle[i] - '0')
		}
	}
	return out
}

// ==================== Engine Solver Functions ====================

// solve finds solutions using the bitset constraint-propagation engine.
// Input: givens (number[81]), limit (number, optional - default 1)
// Output: { status: string, solutions: number, solution: number[81]|null }
func solve(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return toJSValue(map[string]interface{}{"error": "givens required"})
	}

	givens := jsArrayToIntSlice(args[0])
	if len(givens) != constants.TotalCells {
		return toJSValue(map[string]interface{}{"error": "givens must have 81 elements"})
	}

	limit := uint32(1)
	if len(args) >= 2 {
		limit = uint32(args[1].Int())
	}
	if limit == 0 {
		limit = 1
	}

	var puzzle [engine.Cells]byte
	copy(puzzle[:], givensToPuzzleString(givens))

	var out [engine.Cells]byte
	for i := range out {
		out[i] = '.'
	}

	count := engine.Solve(&puzzle, &out, limit)

	if count < 0 {
		return toJSValue(map[string]interface{}{
			"status":    "ill_formed",
			"solutions": 0,
			"solution":  nil,
		})
	}

	status := "solved"
	if count == 0 {
		status = "unsolvable"
	} else if uint32(count) >= limit {
		status = "limit_reached"
	}

	var solution interface{}
	if count > 0 {
		solution = puzzleStringToIntSlice(string(out[:]))
	}

	return toJSValue(map[string]interface{}{
		"status":    status,
		"solutions": count,
		"solution":  solution,
	})
}

// hasUniqueSolution checks if puzzle has exactly one solution.
// Input: grid (number[81])
// Output: boolean
func hasUniqueSolution(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}

	givens := jsArrayToIntSlice(args[0])
	if len(givens) != constants.TotalCells {
		return js.ValueOf(false)
	}

	var puzzle [engine.Cells]byte
	copy(puzzle[:], givensToPuzzleString(givens))

	var out [engine.Cells]byte
	count := engine.Solve(&puzzle, &out, 2)
	return js.ValueOf(count == 1)
}

// ==================== DP Reference Functions ====================

// isValid checks if the grid has no conflicts.
// Input: grid (number[81])
// Output: boolean
func isValid(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}

	grid := jsArrayToIntSlice(args[0])
	if len(grid) != constants.TotalCells {
		return js.ValueOf(false)
	}

	return js.ValueOf(dp.IsValid(grid))
}

// findConflicts returns all conflicting cell pairs.
// Input: grid (number[81])
// Output: Conflict[]
func findConflicts(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return toJSValue([]interface{}{})
	}

	grid := jsArrayToIntSlice(args[0])
	if len(grid) != constants.TotalCells {
		return toJSValue([]interface{}{})
	}

	conflicts := dp.FindConflicts(grid)
	return toJSValue(conflicts)
}

// generateFullGrid generates a complete valid sudoku grid.
// Input: seed (number)
// Output: number[81]
func generateFullGrid(this js.Value, args []js.Value) interface{} {
	seed := int64(0)
	if len(args) >= 1 {
		seed = int64(args[0].Float())
	}

	grid := dp.GenerateFullGrid(seed)
	return intSliceToJSArray(grid)
}

// carveGivens creates a puzzle from a full grid.
// Input: fullGrid (number[81]), targetGivens (number), seed (number)
// Output: number[81]
func carveGivens(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return js.Null()
	}

	fullGrid := jsArrayToIntSlice(args[0])
	if len(fullGrid) != constants.TotalCells {
		return js.Null()
	}

	targetGivens := args[1].Int()
	seed := int64(args[2].Float())

	puzzle := dp.CarveGivens(fullGrid, targetGivens, seed)
	return intSliceToJSArray(puzzle)
}

// carveGivensWithSubset generates puzzles for all difficulty levels.
// Input: fullGrid (number[81]), seed (number)
// Output: { easy, medium, hard, extreme, impossible: number[81] }
func carveGivensWithSubset(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.Null()
	}

	fullGrid := jsArrayToIntSlice(args[0])
	if len(fullGrid) != constants.TotalCells {
		return js.Null()
	}

	seed := int64(args[1].Float())

	puzzles := dp.CarveGivensWithSubset(fullGrid, seed)

	result := make(map[string][]int)
	for diff, givens := range puzzles {
		result[diff] = givens
	}

	return toJSValue(result)
}

// ==================== Validation Functions ====================

// validateCustomPuzzle checks a user-supplied set of givens for the
// 17-clue minimum, internal conflicts, and solution uniqueness.
// Input: givens (number[81])
// Output: { valid: boolean, unique?: boolean, reason?: string, solution?: number[81] }
func validateCustomPuzzle(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return toJSValue(map[string]interface{}{
			"valid":  false,
			"reason": "givens required",
		})
	}

	givens := jsArrayToIntSlice(args[0])
	if len(givens) != constants.TotalCells {
		return toJSValue(map[string]interface{}{
			"valid":  false,
			"reason": "givens must have 81 elements",
		})
	}

	givenCount := 0
	for _, v := range givens {
		if v != 0 {
			givenCount++
		}
	}

	if givenCount < engine.MinGivens {
		return toJSValue(map[string]interface{}{
			"valid":  false,
			"reason": "need at least 17 givens",
		})
	}

	if !dp.IsValid(givens) {
		return toJSValue(map[string]interface{}{
			"valid":  false,
			"reason": "puzzle contains conflicts",
		})
	}

	var puzzle [engine.Cells]byte
	copy(puzzle[:], givensToPuzzleString(givens))

	var out [engine.Cells]byte
	count := engine.Solve(&puzzle, &out, 2)

	if count == 0 {
		return toJSValue(map[string]interface{}{
			"valid":  false,
			"reason": "puzzle has no solution",
		})
	}

	if count > 1 {
		return toJSValue(map[string]interface{}{
			"valid":  true,
			"unique": false,
			"reason": "puzzle has multiple solutions",
		})
	}

	return toJSValue(map[string]interface{}{
		"valid":    true,
		"unique":   true,
		"solution": puzzleStringToIntSlice(string(out[:])),
	})
}

// validateBoard validates current board state during gameplay by
// comparing against the known solution.
// Input: board (number[81]), solution (number[81])
// Output: { valid: boolean, reason?: string, message?: string, incorrectCells?: number[] }
func validateBoard(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return toJSValue(map[string]interface{}{
			"valid":  false,
			"reason": "board and solution required",
		})
	}

	board := jsArrayToIntSlice(args[0])
	solution := jsArrayToIntSlice(args[1])

	if len(board) != constants.TotalCells {
		return toJSValue(map[string]interface{}{
			"valid":  false,
			"reason": "board must have 81 elements",
		})
	}

	if len(solution) != constants.TotalCells {
		return toJSValue(map[string]interface{}{
			"valid":  false,
			"reason": "solution must have 81 elements",
		})
	}

	incorrectCells := []int{}
	for i := 0; i < constants.TotalCells; i++ {
		if board[i] != 0 && board[i] != solution[i] {
			incorrectCells = append(incorrectCells, i)
		}
	}

	if len(incorrectCells) > 0 {
		msg := fmt.Sprintf("Found %d incorrect cell", len(incorrectCells))
		if len(incorrectCells) > 1 {
			msg += "s"
		}
		return toJSValue(map[string]interface{}{
			"valid":          false,
			"reason":         "incorrect_entries",
			"message":        msg,
			"incorrectCells": incorrectCells,
		})
	}

	return toJSValue(map[string]interface{}{
		"valid":   true,
		"message": "All entries are correct so far!",
	})
}

// ==================== Utility Functions ====================

// getPuzzleForSeed generates or retrieves a puzzle for a given seed.
// Input: seed (string), difficulty (string)
// Output: { givens: number[81], solution: number[81], puzzleId: string, seed: string, difficulty: string }
func getPuzzleForSeed(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return toJSValue(map[string]interface{}{"error": "seed and difficulty required"})
	}

	seed := args[0].String()
	difficulty := args[1].String()

	if _, ok := constants.DifficultyKeys[difficulty]; !ok {
		return toJSValue(map[string]interface{}{"error": "invalid difficulty"})
	}

	seedHash := hashSeed(seed)
	fullGrid := dp.GenerateFullGrid(seedHash)
	allPuzzles := dp.CarveGivensWithSubset(fullGrid, seedHash)
	givens := allPuzzles[difficulty]

	puzzleID := seed + "-" + difficulty

	return toJSValue(map[string]interface{}{
		"givens":     givens,
		"solution":   fullGrid,
		"puzzleId":   puzzleID,
		"seed":       seed,
		"difficulty": difficulty,
	})
}

// hashSeed converts a string seed to a deterministic int64 via FNV-1a.
func hashSeed(seed string) int64 {
	var hash uint64 = 14695981039346656037
	for i := 0; i < len(seed); i++ {
		hash ^= uint64(seed[i])
		hash *= 1099511628211
	}
	return int64(hash & 0x7fffffffffffffff)
}

// getVersion returns the API version string.
// Output: string
func getVersion(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(constants.APIVersion)
}

func main() {
	exports := map[string]interface{}{
		// Constraint-propagation engine
		"solve":             js.FuncOf(solve),
		"hasUniqueSolution": js.FuncOf(hasUniqueSolution),

		// DP reference / generation
		"isValid":               js.FuncOf(isValid),
		"findConflicts":         js.FuncOf(findConflicts),
		"generateFullGrid":      js.FuncOf(generateFullGrid),
		"carveGivens":           js.FuncOf(carveGivens),
		"carveGivensWithSubset": js.FuncOf(carveGivensWithSubset),

		// Validation
		"validateCustomPuzzle": js.FuncOf(validateCustomPuzzle),
		"validateBoard":        js.FuncOf(validateBoard),

		// Utility
		"getPuzzleForSeed": js.FuncOf(getPuzzleForSeed),
		"getVersion":       js.FuncOf(getVersion),
	}

	js.Global().Set("SudokuWasm", js.ValueOf(exports))

	js.Global().Call("dispatchEvent", js.Global().Get("CustomEvent").New("wasmReady"))

	select {}
}
