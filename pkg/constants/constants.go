package constants

import "time"

// Grid constants
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17
)

// Solver limits
const (
	// DefaultSolveLimit is the number of distinct solutions an HTTP solve
	// request enumerates when it gives no limit and SOLVE_LIMIT_DEFAULT is
	// unset; a request may ask for more, up to MaxSolveLimit.
	DefaultSolveLimit uint32 = 2
	// MaxSolveLimit is the hard ceiling on the limit a caller may request,
	// protecting the service from an unbounded solution enumeration.
	MaxSolveLimit uint32 = 100
)

// Session
const (
	SessionTokenExpiry = 24 * time.Hour
)

// Difficulties
const (
	DifficultyEasy       = "easy"
	DifficultyMedium     = "medium"
	DifficultyHard       = "hard"
	DifficultyExtreme    = "extreme"
	DifficultyImpossible = "impossible"
)

// Difficulty compact keys (for puzzle file format)
var DifficultyKeys = map[string]string{
	DifficultyEasy:       "e",
	DifficultyMedium:     "m",
	DifficultyHard:       "h",
	DifficultyExtreme:    "x",
	DifficultyImpossible: "i",
}

// Target givens by difficulty
var TargetGivens = map[string]int{
	DifficultyEasy:       40,
	DifficultyMedium:     34,
	DifficultyHard:       28,
	DifficultyExtreme:    24,
	DifficultyImpossible: 20,
}

// Solve result status, returned alongside a solution count over HTTP.
const (
	StatusSolved       = "solved"
	StatusUnsolvable   = "unsolvable"
	StatusLimitReached = "limit_reached"
	StatusIllFormed    = "ill_formed"
)

// API version
const APIVersion = "0.1.0"

// Default ports
const DefaultPort = "8080"

// Date format
const DateFormat = "2006-01-02"
