package cmd

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// seedExtensions covers every category, including names no lookup knows.
var seedExtensions = []string{
	".txt", ".md", ".csv", ".pdf", ".docx", ".xlsx", ".pptx", ".yaml",
	".png", ".jpg", ".gif", ".svg",
	".mp4", ".mkv", ".mov",
	".mp3", ".flac", ".wav",
	".zip", ".json", ".exe", ".tar",
	".bin", ".dat", "",
}

var seedDirNames = []string{"inbox", "old", "misc", "projects", "2024", "tmp", "downloads", "backup"}

// NewSeedCmd creates and returns the seed subcommand for the sortdir CLI.
// It generates test files with a randomized directory structure.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		maxDepth   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files with randomized directory structure",
		Long: `Generate a tree of test files for trying out sortdir.

Files are spread over randomly named directories up to --depth levels deep
and carry extensions from every category, plus a few that are unrecognized.
Each file contains a single UUID line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "Generating %d test files in %s\n", fileCount, outputPath)
			}
			dirs, err := runSeed(outputPath, fileCount, maxDepth)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(out, "Successfully created %d files\n", fileCount)
				fmt.Fprintf(out, "Files distributed across %d directories\n", dirs)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 200, "Number of files to generate")
	cmd.Flags().IntVarP(&maxDepth, "depth", "d", 3, "Maximum directory nesting")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// runSeed writes fileCount files under outputPath and returns the number of
// distinct directories that received at least one file.
func runSeed(outputPath string, fileCount, maxDepth int) (int, error) {
	if fileCount < 0 || maxDepth < 0 {
		return 0, fmt.Errorf("count and depth must not be negative")
	}
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	dirs := make(map[string]struct{})
	for created := 0; created < fileCount; {
		dirPath := outputPath
		for range randInt(maxDepth + 1) {
			dirPath = filepath.Join(dirPath, seedDirNames[randInt(len(seedDirNames))])
		}
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return len(dirs), fmt.Errorf("failed to create directory %s: %w", dirPath, err)
		}

		ext := seedExtensions[randInt(len(seedExtensions))]
		filePath := filepath.Join(dirPath, fmt.Sprintf("%08x%s", randInt(math.MaxInt32), ext))
		if _, err := os.Lstat(filePath); err == nil {
			continue
		}
		if err := os.WriteFile(filePath, []byte(uuid.NewString()+"\n"), 0644); err != nil {
			return len(dirs), fmt.Errorf("failed to write file %s: %w", filePath, err)
		}
		dirs[dirPath] = struct{}{}
		created++
	}
	return len(dirs), nil
}

// randInt returns a uniform value in [0, n).
func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
