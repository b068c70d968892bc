package engine

// DigitBoard holds, for one digit, the set of positions where that
// digit is still a candidate: three real band words plus an always-zero
// sentinel lane so neighbour-band arithmetic never needs a bounds check.
type DigitBoard [bandLanes]BandWord

// BandBoard is the same four-lane shape used for board-wide (not
// per-digit) bitsets: the Solved mask and the Pairs mask.
type BandBoard = DigitBoard

// State is the full search frame: nine DigitBoards, a solved-cell mask,
// a per-digit "previous candidates" cache, a per-digit solved-rows word,
// and a pairs mask. It is allocated once per solve() call and cloned on
// every guess; clone is a plain value copy since State holds no pointers.
type State struct {
	candidates     [Digits]DigitBoard
	prevCandidates [Digits]DigitBoard
	solved         BandBoard
	// solvedRows packs a 9-bit sub-word per digit (3 digits per array
	// slot, 9 bits each) marking which of that digit's 9 rows are fully
	// placed, matching the reference band-solver's layout.
	solvedRows [3]uint32
	pairs      BandBoard
}

// newState returns a State with every candidate bit set for every digit
// at every position - the starting point before any givens are applied.
func newState() *State {
	s := &State{}
	for d := 0; d < Digits; d++ {
		for b := 0; b < Bands; b++ {
			s.candidates[d][b] = fullBand
		}
		// prevCandidates deliberately starts mismatched (zero) so the
		// first propagator pass never short-circuits on a stale cache.
	}
	return s
}

// clone performs the deep-enough copy the spec calls for: State has no
// pointers or slices, so a value copy is both "deep" and independent.
func (s *State) clone() *State {
	c := *s
	return &c
}

// isSolved reports whether every cell has a placed digit.
func (s *State) isSolved() bool {
	for b := 0; b < Bands; b++ {
		if s.solved[b] != fullBand {
			return false
		}
	}
	return true
}

// solvedRowsWord and solvedRowsShift locate a digit's 9-bit solved-rows
// subword: solvedRows[digit/3] holds three digits' subwords, each 9 bits
// (one bit per row of the grid for that digit), offset by (digit%3)*9.
func solvedRowsWord(digit int) int { return digit / 3 }

func solvedRowsShift(digit, band int) uint {
	return uint((digit%3)*9 + band*3)
}
