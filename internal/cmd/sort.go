package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dendrascience/sortdir/backup"
	"github.com/dendrascience/sortdir/classify"
	"github.com/dendrascience/sortdir/internal/logging"
	"github.com/dendrascience/sortdir/sorter"
)

// NewSortCmd creates and returns the sort subcommand for the sortdir CLI.
func NewSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [PATH]",
		Short: "Back up a directory and sort its files into category folders",
		Long: `Sort every file under PATH (default: the working directory) into
Documents, Pictures, Videos, Audio, Applications and Miscellaneous.

The tree is archived to <backup-dir>/<name>.bak.zip first and nothing is moved
if that fails. Top-level directories other than the six category folders are
deleted once sorting finishes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSort,
	}
	addSortFlags(cmd)
	return cmd
}

func runSort(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) > 0 {
		target = args[0]
	}

	cfg, _, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	lookup, err := classify.NewLookup(cfg.Classify.Lookup)
	if err != nil {
		return err
	}
	policy, err := sorter.ParseConflictPolicy(cfg.Sort.OnConflict)
	if err != nil {
		return err
	}

	opts := sorter.Options{
		BackupDir:  cfg.Paths.BackupDir,
		OnConflict: policy,
		Classifier: classify.New(lookup),
		Names:      cfg.Names(),
		Logger:     logger,
	}
	if cfg.Sort.Lock {
		opts.LockDir = cfg.Paths.LockDir
	}

	summary, err := sorter.Run(target, opts)
	if err != nil {
		logRunFailure(logger, summary, err)
		return err
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	layout := sorter.NewLayout(summary.Root, cfg.Names())
	fmt.Fprintf(out, "Sorted %s (backup: %s)\n", summary.Root, summary.Backup.Path)
	fmt.Fprintln(out, renderSummary(summary, layout, colorize))
	if summary.Renamed > 0 {
		fmt.Fprintf(out, "%d file(s) renamed to avoid overwriting an existing name\n", summary.Renamed)
	}
	if len(summary.Removed) > 0 {
		fmt.Fprintf(out, "Removed %d leftover director%s\n", len(summary.Removed), plural(len(summary.Removed), "y", "ies"))
	}
	return nil
}

// logRunFailure records why a run stopped and where its backup is, if any.
func logRunFailure(logger *slog.Logger, summary sorter.Summary, err error) {
	attrs := []logging.Attr{
		logging.String(logging.FieldRunID, summary.RunID),
		logging.Error(err),
	}
	var bfe *backup.BackupFailedError
	switch {
	case errors.As(err, &bfe):
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "no files were moved; check that the backup directory is writable"))
	case summary.Backup.Path != "":
		attrs = append(attrs,
			logging.String("archive", summary.Backup.Path),
			logging.String(logging.FieldErrorHint, "the tree may be partially sorted; restore it from "+summary.Backup.Path),
		)
	}
	logging.ErrorWithContext(logger, "sort failed", "sort_failed", attrs...)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
