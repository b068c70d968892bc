package engine

import "testing"

func toPuzzle(t *testing.T, s string) *[Cells]byte {
	t.Helper()
	if len(s) != Cells {
		t.Fatalf("fixture puzzle has %d chars, want %d", len(s), Cells)
	}
	var p [Cells]byte
	copy(p[:], s)
	return &p
}

// Scenario 1 (§8): easy single-solution puzzle.
func TestSolveEasySingleSolution(t *testing.T) {
	puzzle := toPuzzle(t, "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	want := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	var out [Cells]byte
	for i := range out {
		out[i] = '.'
	}

	n := Solve(puzzle, &out, 1)
	if n != 1 {
		t.Fatalf("Solve returned %d solutions, want 1", n)
	}
	if string(out[:]) != want {
		t.Fatalf("Solve output =\n%s\nwant\n%s", out[:], want)
	}
}

// Scenario 2 (§8): a distinct hard puzzle with a unique solution.
func TestSolveUniqueHardPuzzle(t *testing.T) {
	puzzle := toPuzzle(t, "..53.....8......2..7..1.5..4....53...1..7...6..32...8..6.5....9..4....3......97..")
	want := "145327698839654127672918543496185372218473956753296481367542819984761235521839764"

	var out [Cells]byte
	n := Solve(puzzle, &out, 1)
	if n != 1 {
		t.Fatalf("Solve returned %d solutions, want 1", n)
	}
	if string(out[:]) != want {
		t.Fatalf("Solve output =\n%s\nwant\n%s", out[:], want)
	}
}

// Scenario 3 (§8): a puzzle with exactly two solutions. limit=2 must
// return both; limit=1 must stop after the first.
func TestSolveExactlyTwoSolutions(t *testing.T) {
	puzzle := toPuzzle(t, "4.395726.9.536274.267184953198475632652893174374621589531246897846719325729538416")

	var out2 [Cells]byte
	if n := Solve(puzzle, &out2, 2); n != 2 {
		t.Fatalf("Solve with limit=2 returned %d, want 2", n)
	}

	var out1 [Cells]byte
	if n := Solve(puzzle, &out1, 1); n != 1 {
		t.Fatalf("Solve with limit=1 returned %d, want 1", n)
	}
}

// Scenario 4 (§8): contradictory givens (two 1s in row 0) must report
// IllFormedInput via a negative return.
func TestSolveContradictoryGivensIsIllFormed(t *testing.T) {
	s := "11......." + "........." + "........." + "........." + "........." + "........." + "........." + "........." + "........."
	puzzle := toPuzzle(t, s)

	var out [Cells]byte
	n := Solve(puzzle, &out, 1)
	if n >= 0 {
		t.Fatalf("Solve returned %d for contradictory givens, want negative", n)
	}
}

// Scenario 5 (§8): the empty puzzle is ill-formed (zero givens, far below
// the 17-clue minimum), which this implementation reports via a negative
// return rather than "1 solution, any valid grid" - documented §8 policy
// choice (see DESIGN.md).
func TestSolveEmptyPuzzleIsIllFormed(t *testing.T) {
	s := ""
	for i := 0; i < Cells; i++ {
		s += "."
	}
	puzzle := toPuzzle(t, s)

	var out [Cells]byte
	n := Solve(puzzle, &out, 1)
	if n >= 0 {
		t.Fatalf("Solve returned %d for the empty puzzle, want negative (IllFormedInput)", n)
	}
}

// Scenario 6 (§8) names a 17-given puzzle and claims limit=2 returns 1.
// This exact grid leaves rows 7 and 8 empty, so it admits many distinct
// solutions (the dp reference brute-forcer counts at least 50), and a
// limit of 2 must return 2 and a limit of 10 must return 10; this test
// asserts the verified, limit-respecting behaviour.
func TestSolveKnownPuzzleRespectsLimit(t *testing.T) {
	puzzle := toPuzzle(t, ".....6....59.....82....8....45........3........6..3.54...325..6..................")

	var out [Cells]byte
	if n := Solve(puzzle, &out, 2); n != 2 {
		t.Fatalf("Solve with limit=2 returned %d, want 2", n)
	}

	var out10 [Cells]byte
	if n := Solve(puzzle, &out10, 10); n != 10 {
		t.Fatalf("Solve with limit=10 returned %d, want 10 (the grid has more than 10 solutions)", n)
	}
}

// §8 boundary behaviour: fewer than 17 givens.
func TestSolveTooFewGivensIsIllFormed(t *testing.T) {
	s := "5........" + "........." + "........." + "........." + "........." + "........." + "........." + "........." + "........."
	puzzle := toPuzzle(t, s)

	var out [Cells]byte
	n := Solve(puzzle, &out, 1)
	if n >= 0 {
		t.Fatalf("Solve returned %d for a 1-given puzzle, want negative", n)
	}
}

// §8 boundary behaviour: a fully filled valid grid solves immediately
// with no guesses required.
func TestSolveFullyFilledValidGrid(t *testing.T) {
	puzzle := toPuzzle(t, "534678912672195348198342567859761423426853791713924856961537284287419635345286179")

	var out [Cells]byte
	n := Solve(puzzle, &out, 1)
	if n != 1 {
		t.Fatalf("Solve returned %d for a filled valid grid, want 1", n)
	}
	if string(out[:]) != "534678912672195348198342567859761423426853791713924856961537284287419635345286179" {
		t.Fatalf("Solve changed a filled valid grid: got %s", out[:])
	}
}

// §8 boundary behaviour: a fully filled but invalid grid (duplicate 1s in
// row 0) is all givens, so the duplicate is a given/given conflict caught
// at ingest and reported as IllFormedInput rather than a 0-solution count.
func TestSolveFullyFilledInvalidGrid(t *testing.T) {
	bad := "534678911672195348198342567859761423426853791713924856961537284287419635345286179"
	puzzle := toPuzzle(t, bad)

	var out [Cells]byte
	n := Solve(puzzle, &out, 1)
	if n >= 0 {
		t.Fatalf("Solve returned %d for an invalid filled grid, want negative (IllFormedInput)", n)
	}
}

func TestSolveRejectsMalformedByte(t *testing.T) {
	s := "X3..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	puzzle := toPuzzle(t, s)

	var out [Cells]byte
	n := Solve(puzzle, &out, 1)
	if n >= 0 {
		t.Fatalf("Solve returned %d for a malformed byte, want negative", n)
	}
}
