// Package parser provides utilities for parsing and transforming input data.
// It handles data normalization, validation, and conversion between formats.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// SourceGlob matches the distribution files in a levels directory. It must
// stay in sync with sourceNumberRe below; both derive from the one fixed
// filename pattern.
const SourceGlob = "distribution_23555_4_*_solution.json"

var sourceNumberRe = regexp.MustCompile(`distribution_23555_4_(\d+)_solution\.json`)

// ExtractPuzzleNumber pulls the numeric id out of a distribution filename.
// Names that do not match the pattern yield 0 instead of an error, so
// out-of-pattern files still convert, at the cost of ambiguous numbering
// when several of them appear in one run.
func ExtractPuzzleNumber(filename string) int {
	m := sourceNumberRe.FindStringSubmatch(filename)
	if m == nil {
		return 0
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// SourceFileName reconstructs the distribution filename for a puzzle number.
func SourceFileName(number int) string {
	return fmt.Sprintf("distribution_23555_4_%d_solution.json", number)
}
