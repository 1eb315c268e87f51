// Package models defines the JSON record shapes the converter works with:
// the source distribution format, the game level format, and the
// aggregated level index.
package models

import "encoding/json"

// Level is one game-ready level file.
type Level struct {
	LevelID       int               `json:"levelId"`
	Name          string            `json:"name"`
	Difficulty    string            `json:"difficulty"`
	Tubes         []Tube            `json:"tubes"`
	Colors        []string          `json:"colors"`
	Moves         int               `json:"moves"`
	MinMoves      int               `json:"minMoves"`
	Stars         map[string]int    `json:"stars"`
	OriginalFile  string            `json:"originalFile"`
	PuzzleType    string            `json:"puzzleType"`
	DesiredLevel  json.RawMessage   `json:"desiredLevel"`
	SolutionSteps []json.RawMessage `json:"solutionSteps"`
}

// Tube holds an ordered stack of balls up to a fixed capacity.
type Tube struct {
	ID       int      `json:"id"`
	Balls    []string `json:"balls"`
	Capacity int      `json:"capacity"`
}

// Index is the aggregated manifest describing every converted level.
type Index struct {
	Version      string       `json:"version"`
	TotalLevels  int          `json:"totalLevels"`
	Levels       []IndexEntry `json:"levels"`
	Difficulties Difficulties `json:"difficulties"`
	PuzzleType   string       `json:"puzzleType"`
	Description  string       `json:"description"`
}

// IndexEntry is the per-level summary in the index. BestMoves is a pointer
// so that an unplayed level serializes as null.
type IndexEntry struct {
	ID         int    `json:"id"`
	File       string `json:"file"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Unlocked   bool   `json:"unlocked"`
	Completed  bool   `json:"completed"`
	Stars      int    `json:"stars"`
	BestMoves  *int   `json:"bestMoves"`
}

// Difficulties is a struct rather than a map so the three tiers keep their
// easy/medium/hard order in the serialized index.
type Difficulties struct {
	Easy   DifficultyGroup `json:"easy"`
	Medium DifficultyGroup `json:"medium"`
	Hard   DifficultyGroup `json:"hard"`
}

// DifficultyGroup carries the display name and color of one tier plus the
// ids of the levels classified into it, in conversion order.
type DifficultyGroup struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Levels []int  `json:"levels"`
}
