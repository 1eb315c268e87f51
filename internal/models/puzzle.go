// Package models defines the JSON record shapes the converter works with:
// the source distribution format, the game level format, and the
// aggregated level index.
package models

import "encoding/json"

// PuzzleFile is the top-level shape of one distribution file. The puzzle
// record lives under the "puzzle" key.
type PuzzleFile struct {
	Puzzle *Puzzle `json:"puzzle"`
}

// Puzzle is the source puzzle record. DesiredLevel and SolutionSteps are
// opaque to the converter and copied through unchanged. MovesToSolve is a
// pointer so a missing field can be told apart from a legitimate 0.
type Puzzle struct {
	InitialState     []int             `json:"initialState"`
	BottleCapacities []int             `json:"bottleCapacities"`
	DesiredLevel     json.RawMessage   `json:"desiredLevel"`
	MovesToSolve     *int              `json:"movesToSolve"`
	SolutionSteps    []json.RawMessage `json:"solutionSteps"`
}
