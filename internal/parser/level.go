// Package parser provides utilities for parsing and transforming input data.
// It handles data normalization, validation, and conversion between formats.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/ballsort/levelconv/internal/models"
)

// PuzzleType tags every level and the index. All balls in the distribution
// data share one color, so this is a liquid pouring puzzle rather than a
// color sorting one.
const PuzzleType = "liquid_pouring"

// ballColor is the single uniform unit label used for every ball.
const ballColor = "blue"

// BuildLevel converts one parsed puzzle into the game level format.
// levelID is the 1-based position in the sorted batch; originalNumber is
// the numeric id embedded in the source filename.
func BuildLevel(puzzle *models.Puzzle, levelID, originalNumber int) *models.Level {
	tubes := make([]models.Tube, len(puzzle.InitialState))
	totalBalls := 0

	for i, ballCount := range puzzle.InitialState {
		balls := make([]string, ballCount)
		for j := range balls {
			balls[j] = ballColor
		}

		tubes[i] = models.Tube{
			ID:       i,
			Balls:    balls,
			Capacity: puzzle.BottleCapacities[i],
		}
		totalBalls += ballCount
	}

	colors := []string{}
	if totalBalls > 0 {
		colors = append(colors, ballColor)
	}

	steps := puzzle.SolutionSteps
	if steps == nil {
		steps = []json.RawMessage{}
	}

	moves := *puzzle.MovesToSolve

	return &models.Level{
		LevelID:       levelID,
		Name:          fmt.Sprintf("Level %d - Puzzle %d", levelID, originalNumber),
		Difficulty:    classifyDifficulty(moves, len(tubes), totalBalls),
		Tubes:         tubes,
		Colors:        colors,
		Moves:         0,
		MinMoves:      moves,
		Stars:         starThresholds(moves),
		OriginalFile:  SourceFileName(originalNumber),
		PuzzleType:    PuzzleType,
		DesiredLevel:  puzzle.DesiredLevel,
		SolutionSteps: steps,
	}
}

// classifyDifficulty buckets a level by a weighted complexity score.
// Solution length dominates; tube and ball counts contribute smaller terms.
// Boundary values fall into the lower tier.
func classifyDifficulty(moves, tubeCount, totalBalls int) string {
	complexity := float64(moves) + 0.5*float64(tubeCount) + 0.1*float64(totalBalls)

	switch {
	case complexity <= 6:
		return "easy"
	case complexity <= 12:
		return "medium"
	default:
		return "hard"
	}
}

// starThresholds maps the optimal move count to the three star cutoffs.
// The additive guards keep the one- and two-star cutoffs meaningful for
// very short puzzles, where pure multiples would collapse.
func starThresholds(moves int) map[string]int {
	return map[string]int{
		"1": max(moves*3, moves+10),
		"2": max(moves*2, moves+5),
		"3": moves,
	}
}
