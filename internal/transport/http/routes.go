package http

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzles"
	"sudoku-solver/internal/sudoku/dp"
	"sudoku-solver/internal/sudoku/engine"
	"sudoku-solver/pkg/config"
	"sudoku-solver/pkg/constants"
)

var cfg *config.Config

func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.GET("/daily", dailyHandler)
		api.GET("/puzzle/:seed", puzzleHandler)
		api.POST("/session/start", sessionStartHandler)
		api.POST("/solve", solveHandler)
		api.POST("/validate", validateBoardHandler)
		api.POST("/custom/validate", customValidateHandler)
	}
}

// validatePuzzleString checks that puzzle is 81 ASCII characters ('1'-'9'
// or '.') with at least the 17-clue minimum. Returns nil if valid.
func validatePuzzleString(puzzle string) error {
	if len(puzzle) != constants.TotalCells {
		return fmt.Errorf("puzzle must be exactly %d characters, got %d", constants.TotalCells, len(puzzle))
	}

	clueCount := 0
	for i := 0; i < len(puzzle); i++ {
		ch := puzzle[i]
		if ch != '.' && (ch < '1' || ch > '9') {
			return fmt.Errorf("invalid character %q at position %d", ch, i)
		}
		if ch != '.' {
			clueCount++
		}
	}

	if clueCount < engine.MinGivens {
		return fmt.Errorf("puzzle must have at least %d clues for a unique solution, got %d", engine.MinGivens, clueCount)
	}

	return nil
}

// givensToPuzzleString converts a dp-style []int grid (0 for empty) into
// the engine's 81-byte ASCII puzzle representation.
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

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// TodayUTC returns today's UTC date string.
func TodayUTC() string {
	return time.Now().UTC().Format(constants.DateFormat)
}

func dailyHandler(c *gin.Context) {
	dateUTC := TodayUTC()

	seed := "D" + dateUTC

	var puzzleIndex int
	loader := puzzles.Global()
	if loader != nil {
		_, _, puzzleIndex, _ = loader.GetDailyPuzzle(time.Now(), "medium")
	}

	c.JSON(http.StatusOK, gin.H{
		"date_utc":     dateUTC,
		"seed":         seed,
		"puzzle_index": puzzleIndex,
	})
}

func puzzleHandler(c *gin.Context) {
	seed := c.Param("seed")
	difficulty := core.Difficulty(c.Query("d"))

	if difficulty == "" {
		difficulty = core.DifficultyMedium
	}

	if !validDifficulty(difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_difficulty"})
		return
	}

	var givens []int
	var puzzleIndex int

	loader := puzzles.Global()
	if loader != nil {
		var err error
		givens, _, puzzleIndex, err = loader.GetPuzzleBySeed(seed, string(difficulty))
		if err != nil {
			loader = nil
		}
	}

	if loader == nil {
		seedHash := hashSeed(seed)
		fullGrid := dp.GenerateFullGrid(seedHash)
		allPuzzles := dp.CarveGivensWithSubset(fullGrid, seedHash)
		givens = allPuzzles[string(difficulty)]
		puzzleIndex = -1
	}

	puzzleID := seed + "-" + string(difficulty)

	c.JSON(http.StatusOK, gin.H{
		"puzzle_id":    puzzleID,
		"seed":         seed,
		"difficulty":   difficulty,
		"givens":       givens,
		"puzzle_index": puzzleIndex,
	})
}

func validDifficulty(d core.Difficulty) bool {
	switch d {
	case core.DifficultyEasy, core.DifficultyMedium, core.DifficultyHard, core.DifficultyExtreme, core.DifficultyImpossible:
		return true
	default:
		return false
	}
}

func hashSeed(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

func hashSolution(puzzle string) string {
	h := sha256.New()
	h.Write([]byte(puzzle))
	return hex.EncodeToString(h.Sum(nil))
}

type SessionStartRequest struct {
	Seed       string `json:"seed" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	DeviceID   string `json:"device_id" binding:"required"`
}

func sessionStartHandler(c *gin.Context) {
	var req SessionStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty := core.Difficulty(req.Difficulty)
	if !validDifficulty(difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_difficulty"})
		return
	}

	puzzleID := req.Seed + "-" + req.Difficulty

	var givens []int
	loader := puzzles.Global()
	if loader != nil {
		var err error
		givens, _, _, err = loader.GetPuzzleBySeed(req.Seed, req.Difficulty)
		if err != nil {
			loader = nil
		}
	}
	if loader == nil {
		seedHash := hashSeed(req.Seed)
		fullGrid := dp.GenerateFullGrid(seedHash)
		allPuzzles := dp.CarveGivensWithSubset(fullGrid, seedHash)
		givens = allPuzzles[req.Difficulty]
	}

	now := time.Now()
	session := SessionToken{
		DeviceID:   req.DeviceID,
		PuzzleID:   puzzleID,
		PuzzleHash: hashSolution(givensToPuzzleString(givens)),
		StartedAt:  now,
		ExpiresAt:  now.Add(constants.SessionTokenExpiry),
	}

	token, err := createToken(cfg.JWTSecret, session)
	if err != nil {
		log.Printf("ERROR [sessionStart]: failed to create token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"puzzle_id":  puzzleID,
		"started_at": now.Format(time.RFC3339),
	})
}

// SolveRequest carries a puzzle through the engine's external interface
// (spec §6): an 81-character ASCII string, digits '1'-'9' for givens and
// '.' for empty cells. Limit bounds the number of distinct solutions
// enumerated; zero means "use the default".
type SolveRequest struct {
	Token  string `json:"token" binding:"required"`
	Puzzle string `json:"puzzle" binding:"required,len=81"`
	Limit  uint32 `json:"limit"`
}

func solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := verifyToken(cfg.JWTSecret, req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = cfg.SolveLimitDefault
		if limit == 0 {
			limit = constants.DefaultSolveLimit
		}
	}
	if limit > constants.MaxSolveLimit {
		limit = constants.MaxSolveLimit
	}

	var puzzle [engine.Cells]byte
	copy(puzzle[:], req.Puzzle)

	var out [engine.Cells]byte
	for i := range out {
		out[i] = '.'
	}

	count := engine.Solve(&puzzle, &out, limit)

	if count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": constants.StatusIllFormed,
			"error":  "puzzle is ill-formed: too few givens or a contradiction among the givens",
		})
		return
	}

	status := constants.StatusSolved
	if count == 0 {
		status = constants.StatusUnsolvable
	} else if uint32(count) >= limit && limit < constants.MaxSolveLimit {
		status = constants.StatusLimitReached
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"solutions": count,
		"solution":  string(out[:]),
	})
}

// ValidateBoardRequest validates current board state during gameplay.
type ValidateBoardRequest struct {
	Token string `json:"token" binding:"required"`
	Board []int  `json:"board" binding:"required"`
}

func validateBoardHandler(c *gin.Context) {
	var req ValidateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := verifyToken(cfg.JWTSecret, req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
		return
	}

	if len(req.Board) != constants.TotalCells {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board must have 81 cells"})
		return
	}

	conflicts := dp.FindConflicts(req.Board)
	if len(conflicts) > 0 {
		conflictCells := make(map[int]bool)
		for _, conflict := range conflicts {
			conflictCells[conflict.Cell1] = true
			conflictCells[conflict.Cell2] = true
		}
		cellList := make([]int, 0, len(conflictCells))
		for cell := range conflictCells {
			cellList = append(cellList, cell)
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":         false,
			"reason":        "conflicts",
			"message":       "There are conflicting numbers in the puzzle",
			"conflicts":     conflicts,
			"conflictCells": cellList,
		})
		return
	}

	solutions := dp.CountSolutions(req.Board, 1)
	if solutions == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"reason":  "unsolvable",
			"message": "The puzzle cannot be solved from this state - a digit you entered is incorrect",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"message": "All entries are correct so far!",
	})
}

type CustomValidateRequest struct {
	Givens   []int  `json:"givens" binding:"required"`
	DeviceID string `json:"device_id" binding:"required"`
}

func customValidateHandler(c *gin.Context) {
	var req CustomValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Givens) != constants.TotalCells {
		c.JSON(http.StatusBadRequest, gin.H{"error": "givens must have 81 cells"})
		return
	}

	givenCount := 0
	for _, v := range req.Givens {
		if v != 0 {
			givenCount++
		}
	}

	if givenCount < constants.MinGivens {
		c.JSON(http.StatusOK, gin.H{
			"valid":  false,
			"reason": "need at least 17 givens",
		})
		return
	}

	if !dp.IsValid(req.Givens) {
		c.JSON(http.StatusOK, gin.H{
			"valid":  false,
			"reason": "puzzle contains conflicts",
		})
		return
	}

	solutions := dp.CountSolutions(req.Givens, 2)

	if solutions == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid":  false,
			"reason": "puzzle has no solution",
		})
		return
	}

	if solutions > 1 {
		c.JSON(http.StatusOK, gin.H{
			"valid":  true,
			"unique": false,
			"reason": "puzzle has multiple solutions",
		})
		return
	}

	puzzleHash := hashSolution(givensToPuzzleString(req.Givens))
	puzzleID := "custom-" + puzzleHash[:16]

	c.JSON(http.StatusOK, gin.H{
		"valid":     true,
		"unique":    true,
		"puzzle_id": puzzleID,
	})
}
