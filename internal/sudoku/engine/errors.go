package engine

import "errors"

// ErrIllFormedInput is returned once, to the top-level caller, when a
// puzzle has too few givens (below the 17-clue minimum) or an immediate
// contradiction among the givens (§7). Unsolvable and LimitReached are
// not represented as errors: Unsolvable is a plain sentinel return used
// internally during search, and LimitReached is simply the solver
// stopping early and returning the count found so far.
var ErrIllFormedInput = errors.New("engine: ill-formed sudoku input")

// MinGivens is the minimum number of givens a well-formed puzzle must
// supply (§8 boundary behaviour).
const MinGivens = 17
