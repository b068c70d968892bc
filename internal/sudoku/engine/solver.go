package engine

// Solve is the engine's sole external entry point (§6). puzzle holds 81
// bytes, each an ASCII digit '1'..'9' (a given) or '.' (empty), in
// row-major order. On success out is filled with '1'..'9' in the same
// order; on failure out is left untouched where no solution reached that
// cell. limit caps the number of distinct solutions counted.
//
// Returns the number of solutions found, capped at limit. A negative
// return means the puzzle is ill-formed: too few givens, a malformed
// byte, or a contradiction among the givens themselves.
func Solve(puzzle *[Cells]byte, out *[Cells]byte, limit uint32) int32 {
	resetGuessStats()

	s, err := parse(puzzle)
	if err != nil {
		return -1
	}

	var solutionsFound uint32
	s.solve(limit, &solutionsFound, out)
	return int32(solutionsFound)
}

// parse ingests the ASCII puzzle into a fresh State, rejecting malformed
// bytes, too-few givens, and given/given conflicts (§7 IllFormedInput).
func parse(puzzle *[Cells]byte) (*State, error) {
	s := newState()

	givens := 0
	for pos, b := range puzzle {
		if b == '.' {
			continue
		}
		if b < '1' || b > '9' {
			return nil, ErrIllFormedInput
		}
		digit := int(b - '1')
		givens++
		if !s.placeDigit(pos, digit) {
			return nil, ErrIllFormedInput
		}
	}

	if givens < MinGivens {
		return nil, ErrIllFormedInput
	}

	return s, nil
}

// solve runs the search/guess driver (§4.6-§4.7). It mutates s in place
// and writes every solution it finds into out, so out ends up holding the
// most recently found solution; solutionsFound accumulates across the
// whole recursion, and recursion unwinds without further exploration once
// it reaches limit (§5 cooperative cancellation).
//
// Returns true once the limit has been reached, so no further branches
// should be explored; returns false when this frame's subtree is
// exhausted or contradictory, so the caller tries its next branch.
func (s *State) solve(limit uint32, solutionsFound *uint32, out *[Cells]byte) bool {
	if *solutionsFound >= limit {
		return true
	}

	solved, ok := s.search()
	if !ok {
		guessStats.numFailedReturn++
		return false
	}
	if solved {
		*solutionsFound++
		s.extractSolution(out)
		return *solutionsFound >= limit
	}

	candidates := s.guessCandidates()
	if len(candidates) == 0 {
		guessStats.numFailedReturn++
		return false
	}
	if len(candidates) == 1 {
		guessStats.numUniqueCandidate++
	}

	last := len(candidates) - 1
	for i, c := range candidates {
		if i == last {
			// Last branch: reuse the current state, no clone (§4.7).
			if !s.placeDigit(c.pos, c.digit) {
				return false
			}
			return s.solve(limit, solutionsFound, out)
		}

		guessStats.numGuesses++
		branch := s.clone()
		if !branch.placeDigit(c.pos, c.digit) {
			continue
		}
		if branch.solve(limit, solutionsFound, out) {
			return true
		}
	}

	return false
}

// extractSolution implements §4.8: for each digit and band, every set bit
// in that digit's band word names a cell where the digit belongs.
func (s *State) extractSolution(out *[Cells]byte) {
	for digit := 0; digit < Digits; digit++ {
		for band := 0; band < Bands; band++ {
			w := uint32(s.candidates[digit][band])
			for w != 0 {
				bit := ls1b(w)
				w &^= bit
				pos := bandBitPosToCell[band][bsf(bit)]
				if pos >= 0 {
					out[pos] = byte('1' + digit)
				}
			}
		}
	}
}
