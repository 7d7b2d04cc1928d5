package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dendrascience/sortdir/classify"
	"github.com/dendrascience/sortdir/fsutil"
	"github.com/dendrascience/sortdir/sorter"
)

// NewCountCmd creates and returns the count subcommand for the sortdir CLI.
// It reports how many files each category folder would receive.
func NewCountCmd() *cobra.Command {
	var (
		showProgress bool
		category     string
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count files in a directory tree by category",
		Long: `Count the files under PATH (default: the working directory) and show
how many would land in each category folder. With --category, also list
the files bound for that folder.

Nothing is moved, archived or deleted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return runCount(cmd, path, category, showProgress)
		},
	}

	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show progress every 10,000 files")
	cmd.Flags().StringVar(&category, "category", "", "List the files that would land in this folder")

	return cmd
}

func runCount(cmd *cobra.Command, path, category string, showProgress bool) error {
	cfg, _, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	root, err := sorter.Resolve(path)
	if err != nil {
		return err
	}
	lookup, err := classify.NewLookup(cfg.Classify.Lookup)
	if err != nil {
		return err
	}
	classifier := classify.New(lookup)
	layout := sorter.NewLayout(root, cfg.Names())

	listOnly := category != ""
	var want classify.Category
	if listOnly {
		if want, err = parseFolder(layout, category); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	counts := make(map[classify.Category]int)
	total := 0
	for file, err := range fsutil.Walk(root) {
		if err != nil {
			return fmt.Errorf("error counting files: %w", err)
		}
		c := classifier.Classify(file)
		counts[c]++
		total++
		if listOnly && c == want {
			rel, err := filepath.Rel(root, file)
			if err != nil {
				rel = file
			}
			fmt.Fprintln(out, rel)
		}
		if showProgress && total%10000 == 0 {
			fmt.Fprintf(out, "Progress: %d files counted\n", total)
		}
	}

	fmt.Fprintln(out, renderCounts(counts, total, layout, shouldColorize(out)))
	fmt.Fprintf(out, "Total files: %d\n", total)
	return nil
}

// parseFolder accepts either a configured folder name or a default category name.
func parseFolder(layout sorter.Layout, name string) (classify.Category, error) {
	for _, c := range classify.Categories {
		if strings.EqualFold(strings.TrimSpace(name), layout.Name(c)) {
			return c, nil
		}
	}
	return classify.ParseCategory(name)
}
