// Package batch drives the one-shot conversion run: it discovers the
// distribution files in a levels directory, converts each one, and writes
// the level files plus the aggregated index next to them.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ballsort/levelconv/internal/parser"
)

// DiscoverFiles lists the distribution files in dir, ordered ascending by
// their embedded puzzle number so level numbering does not depend on
// filesystem iteration order. Ties (pattern fallbacks, all id 0) keep the
// lexicographic glob order.
func DiscoverFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, parser.SourceGlob))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	sort.SliceStable(files, func(i, j int) bool {
		return parser.ExtractPuzzleNumber(filepath.Base(files[i])) <
			parser.ExtractPuzzleNumber(filepath.Base(files[j]))
	})

	return files, nil
}

// LevelFileName is the output filename for a level id. The 3-digit padding
// widens naturally past 999.
func LevelFileName(levelID int) string {
	return fmt.Sprintf("level-%03d.json", levelID)
}
