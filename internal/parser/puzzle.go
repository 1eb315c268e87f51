// Package parser provides utilities for parsing and transforming input data.
// It handles data normalization, validation, and conversion between formats.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/ballsort/levelconv/internal/models"
)

func ParsePuzzle(data []byte) (*models.Puzzle, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty puzzle data")
	}

	var file models.PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle: %w", err)
	}

	puzzle := file.Puzzle
	if puzzle == nil {
		return nil, fmt.Errorf("invalid puzzle: missing puzzle object")
	}

	if puzzle.InitialState == nil {
		return nil, fmt.Errorf("invalid puzzle: missing initialState field")
	}

	for i, count := range puzzle.InitialState {
		if count < 0 {
			return nil, fmt.Errorf("invalid puzzle: negative ball count %d in tube %d", count, i)
		}
	}

	if puzzle.BottleCapacities == nil {
		return nil, fmt.Errorf("invalid puzzle: missing bottleCapacities field")
	}

	if len(puzzle.BottleCapacities) != len(puzzle.InitialState) {
		return nil, fmt.Errorf("invalid puzzle: %d tubes but %d capacities",
			len(puzzle.InitialState), len(puzzle.BottleCapacities))
	}

	if puzzle.MovesToSolve == nil {
		return nil, fmt.Errorf("invalid puzzle: missing movesToSolve field")
	}

	if puzzle.DesiredLevel == nil {
		return nil, fmt.Errorf("invalid puzzle: missing desiredLevel field")
	}

	return puzzle, nil
}
