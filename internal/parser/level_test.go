// Package parser provides utilities for parsing and transforming input data.
// It handles data normalization, validation, and conversion between formats.
package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ballsort/levelconv/internal/models"
)

func makePuzzle(state, capacities []int, moves int) *models.Puzzle {
	m := moves
	return &models.Puzzle{
		InitialState:     state,
		BottleCapacities: capacities,
		DesiredLevel:     json.RawMessage(`3`),
		MovesToSolve:     &m,
	}
}

func TestBuildLevel(t *testing.T) {
	t.Run("tubes mirror initial state and capacities", func(t *testing.T) {
		puzzle := makePuzzle([]int{2, 0, 3}, []int{4, 4, 5}, 6)

		level := BuildLevel(puzzle, 1, 17)

		require.Len(t, level.Tubes, 3)
		assert.Equal(t, 0, level.Tubes[0].ID)
		assert.Equal(t, []string{"blue", "blue"}, level.Tubes[0].Balls)
		assert.Equal(t, 4, level.Tubes[0].Capacity)
		assert.Empty(t, level.Tubes[1].Balls)
		assert.Len(t, level.Tubes[2].Balls, 3)
		assert.Equal(t, 5, level.Tubes[2].Capacity)
	})

	t.Run("name and original file use the ids", func(t *testing.T) {
		puzzle := makePuzzle([]int{2}, []int{4}, 3)

		level := BuildLevel(puzzle, 5, 42)

		assert.Equal(t, 5, level.LevelID)
		assert.Equal(t, "Level 5 - Puzzle 42", level.Name)
		assert.Equal(t, "distribution_23555_4_42_solution.json", level.OriginalFile)
		assert.Equal(t, "liquid_pouring", level.PuzzleType)
	})

	t.Run("colors holds the single label when any tube is filled", func(t *testing.T) {
		level := BuildLevel(makePuzzle([]int{0, 1}, []int{4, 4}, 2), 1, 1)
		assert.Equal(t, []string{"blue"}, level.Colors)
	})

	t.Run("colors is empty when all tubes are empty", func(t *testing.T) {
		level := BuildLevel(makePuzzle([]int{0, 0}, []int{4, 4}, 2), 1, 1)
		assert.Empty(t, level.Colors)
		assert.NotNil(t, level.Colors)
	})

	t.Run("moves start at zero and minMoves is the solution length", func(t *testing.T) {
		level := BuildLevel(makePuzzle([]int{2}, []int{4}, 9), 1, 1)
		assert.Equal(t, 0, level.Moves)
		assert.Equal(t, 9, level.MinMoves)
	})

	t.Run("passthrough fields survive unchanged", func(t *testing.T) {
		puzzle := makePuzzle([]int{1}, []int{4}, 2)
		puzzle.DesiredLevel = json.RawMessage(`{"target": "full"}`)
		puzzle.SolutionSteps = []json.RawMessage{json.RawMessage(`{"from":0,"to":1}`)}

		level := BuildLevel(puzzle, 1, 1)

		assert.JSONEq(t, `{"target": "full"}`, string(level.DesiredLevel))
		require.Len(t, level.SolutionSteps, 1)
		assert.JSONEq(t, `{"from":0,"to":1}`, string(level.SolutionSteps[0]))
	})

	t.Run("absent solution steps default to an empty sequence", func(t *testing.T) {
		level := BuildLevel(makePuzzle([]int{1}, []int{4}, 2), 1, 1)

		require.NotNil(t, level.SolutionSteps)
		assert.Empty(t, level.SolutionSteps)

		out, err := json.Marshal(level)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"solutionSteps":[]`)
	})

	t.Run("deterministic output", func(t *testing.T) {
		puzzle := makePuzzle([]int{2, 2, 0}, []int{4, 4, 4}, 12)

		a, err := json.Marshal(BuildLevel(puzzle, 3, 99))
		require.NoError(t, err)
		b, err := json.Marshal(BuildLevel(puzzle, 3, 99))
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}

func TestStarThresholds(t *testing.T) {
	t.Run("three stars always equal the optimal move count", func(t *testing.T) {
		for _, m := range []int{0, 1, 5, 20, 100} {
			assert.Equal(t, m, starThresholds(m)["3"])
		}
	})

	t.Run("thresholds are ordered", func(t *testing.T) {
		for _, m := range []int{0, 1, 2, 4, 5, 6, 10, 50} {
			stars := starThresholds(m)
			assert.GreaterOrEqual(t, stars["1"], stars["2"])
			assert.GreaterOrEqual(t, stars["2"], stars["3"])
		}
	})

	t.Run("additive guards win for short puzzles", func(t *testing.T) {
		stars := starThresholds(1)
		assert.Equal(t, 11, stars["1"])
		assert.Equal(t, 6, stars["2"])
		assert.Equal(t, 1, stars["3"])
	})

	t.Run("multiples win for long puzzles", func(t *testing.T) {
		stars := starThresholds(10)
		assert.Equal(t, 30, stars["1"])
		assert.Equal(t, 20, stars["2"])
	})
}

func TestClassifyDifficulty(t *testing.T) {
	t.Run("boundaries fall into the lower tier", func(t *testing.T) {
		// 5 moves + 0.5*2 tubes = 6.0 exactly
		assert.Equal(t, "easy", classifyDifficulty(5, 2, 0))
		// 11 moves + 0.5*2 tubes = 12.0 exactly
		assert.Equal(t, "medium", classifyDifficulty(11, 2, 0))
	})

	t.Run("just past a boundary moves up a tier", func(t *testing.T) {
		// 5 + 0.5*2 + 0.1*1 = 6.1
		assert.Equal(t, "medium", classifyDifficulty(5, 2, 1))
		// 11 + 0.5*2 + 0.1*1 = 12.1
		assert.Equal(t, "hard", classifyDifficulty(11, 2, 1))
	})

	t.Run("representative tiers", func(t *testing.T) {
		assert.Equal(t, "easy", classifyDifficulty(3, 2, 4))
		assert.Equal(t, "medium", classifyDifficulty(9, 2, 4))
		assert.Equal(t, "hard", classifyDifficulty(20, 2, 4))
	})
}
