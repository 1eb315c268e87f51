// Package main implements the levelconv command. It converts ball sort
// distribution files into game-ready level files plus an aggregated index,
// then prints a summary of the run.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ballsort/levelconv/internal/batch"
)

var (
	levelsDir string
	verbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "levelconv",
	Short: "Convert ball sort distribution files into game levels",
	Long: `levelconv reads the distribution_*_solution.json puzzle files in a
levels directory and writes one level-NNN.json per puzzle plus a
levels-index.json manifest, deriving a difficulty tier and star
thresholds for each level. Output is written into the same directory,
overwriting any previous run.

Files that fail to parse are reported and skipped; the run itself only
fails on directory or write errors.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, index, err := batch.NewRunner(logger).Run(levelsDir)
		if err != nil {
			return err
		}

		fmt.Printf("Converted %d of %d levels\n", len(levels), index.TotalLevels)
		fmt.Println("Difficulty distribution:")
		fmt.Printf("   Easy: %d levels\n", len(index.Difficulties.Easy.Levels))
		fmt.Printf("   Medium: %d levels\n", len(index.Difficulties.Medium.Levels))
		fmt.Printf("   Hard: %d levels\n", len(index.Difficulties.Hard.Levels))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&levelsDir, "levels-dir", "./levels",
		"directory holding the distribution files; output is written alongside them")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
