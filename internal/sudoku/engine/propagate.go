package engine

// bandPeers maps a band to the other two bands of the same stack, in
// the order the reference solver visits them.
var bandPeers = [Bands][2]int{
	{1, 2},
	{0, 2},
	{0, 1},
}

// propagateBandWord runs one locked-candidates step for (digit, band)
// given its current candidate word: §4.4. Returns false if the band's
// candidates went empty (Unsolvable).
func (s *State) propagateBandWord(digit, band int, w uint32) bool {
	if BandWord(w) == s.prevCandidates[digit][band] {
		return true
	}

	t := rowTriadsMask[w&uint32(fullRow)] |
		(rowTriadsMask[(w>>9)&uint32(fullRow)] << 3) |
		(rowTriadsMask[(w>>18)&uint32(fullRow)] << 6)

	newW := w & keepLockedCandidates[t]
	if newW == 0 {
		return false
	}

	s.candidates[digit][band] = BandWord(newW)
	s.prevCandidates[digit][band] = BandWord(newW)

	cols := (newW | (newW >> 9) | (newW >> 18)) & uint32(fullRow)
	nonconflicting := nonconflictingNeighbourBands[cols]
	peers := bandPeers[band]
	s.candidates[digit][peers[0]] &= BandWord(nonconflicting)
	s.candidates[digit][peers[1]] &= BandWord(nonconflicting)

	k := rowTriadsSingle[t] & combColumnSingle[cols]
	bandSolvedRows := rowHiddenSingle[k]
	if bandSolvedRows != 0 {
		shift := solvedRowsShift(digit, band)
		s.solvedRows[solvedRowsWord(digit)] |= bandSolvedRows << shift
		s.applySolvedRows(digit, band, newW, bandSolvedRows)
	}

	return true
}

// applySolvedRows implements §4.4 step 8's apply_solved_row: the rows
// named by bandSolvedRows (a 3-bit row selector local to this band) have
// become hidden singles for digit. Their placement cells are promoted
// into Solved and cleared from every other digit's candidates in this
// same band; cross-band elimination for those cells follows from later
// propagation passes over the affected digits.
func (s *State) applySolvedRows(digit, band int, newW uint32, bandSolvedRows uint32) {
	solvedCells := BandWord(newW & solvedRowsBitMask[bandSolvedRows])
	s.solved[band] |= solvedCells
	keep := ^solvedCells
	for d := 0; d < Digits; d++ {
		if d == digit {
			continue
		}
		s.candidates[d][band] &= keep
	}
}

// propagate runs the locked-candidates sweep to a fixed point across all
// nine digits and three bands (§4.4, closing paragraph).
func (s *State) propagate() bool {
	for {
		foundNothing := true
		for digit := 0; digit < Digits; digit++ {
			// Some variants of the reference solver skip a digit once its
			// solved-rows word is fully set, trading a redundant pass for a
			// branch. This implementation always re-checks every band
			// against prevCandidates instead (§9 open question), which is
			// cheap and avoids depending on solved-rows bookkeeping being
			// perfectly in sync with candidates.
			for band := 0; band < Bands; band++ {
				w := uint32(s.candidates[digit][band])
				if BandWord(w) == s.prevCandidates[digit][band] {
					continue
				}
				foundNothing = false
				if !s.propagateBandWord(digit, band, w) {
					return false
				}
			}
		}
		if foundNothing {
			return true
		}
	}
}

// extractNakedSingles implements §4.5: one pass over R1/R2/R3 identifies
// every cell with exactly one remaining candidate and places it, and
// caches the by-product pairs mask (cells with exactly two candidates)
// for GuessStrategy. Returns (progressed, ok): ok is false on Unsolvable
// (some cell has zero remaining candidates), progressed is true if any
// naked single was placed.
func (s *State) extractNakedSingles() (progressed bool, ok bool) {
	var r1, r2, r3 BandBoard
	for d := 0; d < Digits; d++ {
		for b := 0; b < bandLanes; b++ {
			c := s.candidates[d][b]
			r3[b] |= r2[b] & c
			r2[b] |= r1[b] & c
			r1[b] |= c
		}
	}

	for b := 0; b < Bands; b++ {
		if fullBand&^r1[b]&^s.solved[b] != 0 {
			return false, false
		}
		s.pairs[b] = r2[b] &^ r3[b]
	}

	for b := 0; b < Bands; b++ {
		singles := r1[b] &^ r2[b] &^ s.solved[b]
		for singles != 0 {
			bit := ls1b(uint32(singles))
			singles &^= BandWord(bit)
			pos := bandBitPosToCell[b][bsf(uint32(bit))]
			if pos < 0 {
				return false, false
			}
			digit := s.digitAt(b, bit)
			if digit < 0 {
				return false, false
			}
			if !s.placeDigit(int(pos), digit) {
				return false, false
			}
			progressed = true
		}
	}

	return progressed, true
}

// digitAt scans the nine DigitBoards for the one whose bit is set at the
// given band/bit, used to recover which digit a naked single names.
func (s *State) digitAt(band int, bit uint32) int {
	for d := 0; d < Digits; d++ {
		if uint32(s.candidates[d][band])&bit != 0 {
			return d
		}
	}
	return -1
}

// search runs the propagator and naked-single extractor to a fixed point
// (§4.6). It returns (solved, ok): ok is false on Unsolvable.
func (s *State) search() (solved bool, ok bool) {
	for {
		if !s.propagate() {
			return false, false
		}
		if s.isSolved() {
			return true, true
		}
		progressed, ok := s.extractNakedSingles()
		if !ok {
			return false, false
		}
		if !progressed {
			return false, true
		}
	}
}
