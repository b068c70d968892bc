// Package engine implements the constraint-propagation Sudoku solver: a
// bitset board representation, deterministic locked-candidate and
// naked/hidden-single inference, and a recursive guessing search that
// backtracks on contradiction.
package engine

import "math/bits"

const (
	// Digits is the number of distinct Sudoku symbols (1-9).
	Digits = 9
	// Bands is the number of horizontal 3-row stripes in a 9x9 grid.
	Bands = 3
	// Cells is the total number of cells in a 9x9 grid.
	Cells = 81
	// bandLanes is 3 real bands plus one always-zero sentinel lane, so a
	// DigitBoard can be treated as a fixed 4-word array without a bounds
	// check on the "neighbour band" arithmetic used by the propagator.
	bandLanes = 4

	// fullBand is the 27-bit mask of all cells in one band; bits 27-31
	// must stay zero in every BandWord.
	fullBand BandWord = 0x07FFFFFF
	// fullRow is the 9-bit mask of one row within a band.
	fullRow uint32 = 0x1FF
)

// BandWord is a bitset over the 27 cells of one horizontal band (three
// stacked rows). Bit i (0-8) is the top row, 9-17 the middle row, 18-26
// the bottom row; bits 27-31 are always zero.
type BandWord uint32

// bsf returns the index of the lowest set bit. The result is undefined
// if w is zero; callers must check first.
func bsf(w uint32) int {
	return bits.TrailingZeros32(w)
}

// ls1b isolates the lowest set bit.
func ls1b(w uint32) uint32 {
	return w & (-w)
}

// popcount returns the number of set bits.
func popcount(w uint32) int {
	return bits.OnesCount32(w)
}

// peerColumns ORs a band's three rows together, yielding the 9-bit set
// of columns in which the digit may appear anywhere in the band.
func peerColumns(w BandWord) uint32 {
	u := uint32(w)
	return (u | (u >> 9) | (u >> 18)) & fullRow
}

// Cell geometry. The engine never stores row/col/box per cell; it looks
// these up from position so the hot path stays branch-free.
var (
	rowOfCell       [Cells]int
	colOfCell       [Cells]int
	boxOfCell       [Cells]int
	bandOfCell      [Cells]int
	rowInBandOfCell [Cells]int // 0-2, this cell's row within its band
	bitInBandOfCell [Cells]int // 0-26, this cell's bit position within its band word

	// fillMask[pos] has exactly the bit for pos set, in the BandBoard
	// layout (bandLanes words per digit board, bit at bitInBandOfCell
	// within the word at bandOfCell).
	fillMask [Cells][bandLanes]BandWord
	// flipMask[pos] has the bits for every peer of pos (same row,
	// column, or box, excluding pos itself) set, in the same layout.
	flipMask [Cells][bandLanes]BandWord
)

func init() {
	for pos := 0; pos < Cells; pos++ {
		row := pos / 9
		col := pos % 9
		box := (row/3)*3 + col/3
		band := row / 3
		rowInBand := row % 3
		bit := rowInBand*9 + col

		rowOfCell[pos] = row
		colOfCell[pos] = col
		boxOfCell[pos] = box
		bandOfCell[pos] = band
		rowInBandOfCell[pos] = rowInBand
		bitInBandOfCell[pos] = bit

		fillMask[pos][band] = 1 << uint(bit)
	}

	// flipMask needs every other cell's row/col/box, so it is built in
	// its own pass once the geometry tables above are fully populated.
	for pos := 0; pos < Cells; pos++ {
		row, col, box := rowOfCell[pos], colOfCell[pos], boxOfCell[pos]
		for peer := 0; peer < Cells; peer++ {
			if peer == pos {
				continue
			}
			pr, pc, pbx := rowOfCell[peer], colOfCell[peer], boxOfCell[peer]
			if pr == row || pc == col || pbx == box {
				flipMask[pos][bandOfCell[peer]] |= 1 << uint(bitInBandOfCell[peer])
			}
		}
	}

	// The transcribed band-mask tables carry the reference solver's
	// bookkeeping in bits 27-29; band words are 27-bit, so those bits are
	// cleared here before any table is used.
	for i := range nonconflictingNeighbourBands {
		nonconflictingNeighbourBands[i] &= uint32(fullBand)
		keepLockedCandidates[i] &= uint32(fullBand)
	}
	for i := range bandUnsolvedMask {
		bandUnsolvedMask[i] &= uint32(fullBand)
	}
}
