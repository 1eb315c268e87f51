// Package batch drives the one-shot conversion run: it discovers the
// distribution files in a levels directory, converts each one, and writes
// the level files plus the aggregated index next to them.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ballsort/levelconv/internal/models"
	"github.com/ballsort/levelconv/internal/parser"
)

// IndexFileName is the fixed name of the aggregated index.
const IndexFileName = "levels-index.json"

const (
	indexVersion     = "1.0.0"
	indexDescription = "Liquid pouring puzzle - move balls between tubes with different capacities"
)

type Runner struct {
	log *zap.Logger
}

func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run converts every distribution file in dir, writing one level file per
// success plus the index, and returns the converted levels and the index.
//
// A file that fails to read, parse, or convert is logged and skipped; it
// still consumes its position in the level numbering, so the output set can
// have numbering gaps. No renumbering is done, as that would change level
// identity between runs with different failure sets. Output write failures
// abort the whole run.
func (r *Runner) Run(dir string) ([]*models.Level, *models.Index, error) {
	files, err := DiscoverFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	r.log.Info("found puzzle files to convert", zap.Int("count", len(files)))

	index := newIndex(len(files))
	var levels []*models.Level

	for i, path := range files {
		levelID := i + 1
		filename := filepath.Base(path)
		outName := LevelFileName(levelID)

		r.log.Debug("converting",
			zap.String("file", filename),
			zap.String("output", outName))

		level, err := convertFile(path, levelID)
		if err != nil {
			r.log.Warn("failed to convert",
				zap.String("file", filename),
				zap.Error(err))
			continue
		}

		if err := writeJSON(filepath.Join(dir, outName), level); err != nil {
			return nil, nil, err
		}

		index.Levels = append(index.Levels, models.IndexEntry{
			ID:         levelID,
			File:       outName,
			Name:       level.Name,
			Difficulty: level.Difficulty,
			Unlocked:   levelID == 1,
		})
		appendTier(index, level.Difficulty, levelID)
		levels = append(levels, level)
	}

	if err := writeJSON(filepath.Join(dir, IndexFileName), index); err != nil {
		return nil, nil, err
	}

	return levels, index, nil
}

func convertFile(path string, levelID int) (*models.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	puzzle, err := parser.ParsePuzzle(data)
	if err != nil {
		return nil, err
	}

	number := parser.ExtractPuzzleNumber(filepath.Base(path))
	return parser.BuildLevel(puzzle, levelID, number), nil
}

func newIndex(totalFiles int) *models.Index {
	return &models.Index{
		Version:     indexVersion,
		TotalLevels: totalFiles,
		Levels:      []models.IndexEntry{},
		Difficulties: models.Difficulties{
			Easy:   models.DifficultyGroup{Name: "Easy", Color: "#4CAF50", Levels: []int{}},
			Medium: models.DifficultyGroup{Name: "Medium", Color: "#FF9800", Levels: []int{}},
			Hard:   models.DifficultyGroup{Name: "Hard", Color: "#F44336", Levels: []int{}},
		},
		PuzzleType:  parser.PuzzleType,
		Description: indexDescription,
	}
}

func appendTier(index *models.Index, difficulty string, levelID int) {
	switch difficulty {
	case "easy":
		index.Difficulties.Easy.Levels = append(index.Difficulties.Easy.Levels, levelID)
	case "medium":
		index.Difficulties.Medium.Levels = append(index.Difficulties.Medium.Levels, levelID)
	case "hard":
		index.Difficulties.Hard.Levels = append(index.Difficulties.Hard.Levels, levelID)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
