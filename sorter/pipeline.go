package sorter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dendrascience/sortdir/backup"
	"github.com/dendrascience/sortdir/classify"
	"github.com/dendrascience/sortdir/fsutil"
	"github.com/dendrascience/sortdir/internal/logging"
)

// BackupFunc snapshots src into an archive at dest.
type BackupFunc func(src, dest string) (backup.Result, error)

// Options configures a Run. The zero value sorts with the builtin lookup,
// renames on conflict, backs up into the home directory and takes no lock.
type Options struct {
	BackupDir  string // directory receiving <base>.bak.zip; "" means the home directory
	LockDir    string // "" disables the run lock
	OnConflict ConflictPolicy
	Classifier *classify.Classifier
	Names      map[classify.Category]string
	Backup     BackupFunc
	Logger     *slog.Logger
	RunID      string
}

// CategoryStats counts what one category folder received.
type CategoryStats struct {
	Files int
	Bytes int64
}

// Summary reports a completed run.
type Summary struct {
	RunID      string
	Root       string
	Backup     backup.Result
	Files      int
	Moved      int
	Renamed    int
	InPlace    int
	Categories map[classify.Category]CategoryStats
	Removed    []string
	Duration   time.Duration
}

// Run sorts the directory named by arg (see Resolve) and returns a summary.
// The backup always completes before the first move; a backup failure is
// returned as a *backup.BackupFailedError with the tree untouched.
func Run(arg string, opts Options) (Summary, error) {
	start := time.Now()
	summary := Summary{RunID: opts.RunID, Categories: make(map[classify.Category]CategoryStats)}
	if summary.RunID == "" {
		summary.RunID = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String(logging.FieldRunID, summary.RunID))

	root, err := Resolve(arg)
	if err != nil {
		return summary, err
	}
	summary.Root = root

	var protected []string
	lockPath := ""
	if opts.LockDir != "" {
		lockPath = LockPath(opts.LockDir, root)
		if name, ok := topLevelEntry(root, lockPath); ok {
			protected = append(protected, name)
		}
		lock, err := AcquireLock(opts.LockDir, root)
		if err != nil {
			return summary, err
		}
		defer lock.Unlock()
	}

	backupDir := opts.BackupDir
	if backupDir == "" {
		backupDir, err = os.UserHomeDir()
		if err != nil {
			return summary, &backup.BackupFailedError{Source: root, Err: fmt.Errorf("resolve home directory: %w", err)}
		}
	}
	dest := backup.DestinationFor(backupDir, root)
	if name, ok := topLevelEntry(root, dest); ok {
		protected = append(protected, name)
	}
	backupFn := opts.Backup
	if backupFn == nil {
		backupFn = backup.CompressDirectoryToDest
	}

	logger.Info("creating backup",
		logging.String(logging.FieldEventType, "backup_started"),
		logging.String("root", root),
		logging.String("archive", dest),
	)
	res, err := backupFn(root, dest)
	if err != nil {
		var bfe *backup.BackupFailedError
		if !errors.As(err, &bfe) {
			err = &backup.BackupFailedError{Source: root, Dest: dest, Err: err}
		}
		return summary, err
	}
	if res.Path == "" {
		res.Path = dest
	}
	summary.Backup = res
	logger.Info("backup complete",
		logging.String(logging.FieldEventType, "backup_complete"),
		logging.String("archive", res.Path),
		logging.Int("files", res.Files),
		logging.Int64("compressed_bytes", res.CompressedSize),
	)
	for _, skipped := range res.Skipped {
		logging.WarnWithContext(logger, "special file not archived", "backup_skipped",
			logging.String("path", skipped),
			logging.String(logging.FieldErrorHint, "sockets, fifos and devices cannot be archived"),
			logging.String(logging.FieldImpact, "file is sorted but absent from the backup"),
		)
	}

	files, err := fsutil.CollectFiles(root)
	if err != nil {
		return summary, fmt.Errorf("walk %s: %w", root, err)
	}
	logger.Info("found files", logging.Int("count", len(files)))

	classifier := opts.Classifier
	if classifier == nil {
		classifier = classify.New(nil)
	}
	layout := NewLayout(root, opts.Names)
	mover := NewMover(layout, opts.OnConflict, logger)

	for _, path := range files {
		if path == res.Path || path == dest || path == lockPath {
			continue
		}
		info, err := os.Lstat(path)
		if err != nil {
			return summary, err
		}
		category := classifier.Classify(path)
		logger.Debug("classified file",
			logging.String("path", path),
			logging.String("category", layout.Name(category)),
		)
		mv, err := mover.Move(path, category)
		if err != nil {
			return summary, err
		}

		summary.Files++
		stats := summary.Categories[category]
		stats.Files++
		stats.Bytes += info.Size()
		summary.Categories[category] = stats
		switch {
		case mv.Skipped:
			summary.InPlace++
		case mv.Renamed:
			summary.Moved++
			summary.Renamed++
		default:
			summary.Moved++
		}
	}

	summary.Removed, err = Cleanup(layout, logger, protected...)
	if err != nil {
		return summary, err
	}

	summary.Duration = time.Since(start)
	logger.Info("sort complete",
		logging.String(logging.FieldEventType, "sort_complete"),
		logging.Int("files", summary.Files),
		logging.Int("moved", summary.Moved),
		logging.Int("removed_dirs", len(summary.Removed)),
		logging.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// topLevelEntry returns the name of the entry directly under root that
// contains path, or false when path lies outside root.
func topLevelEntry(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	name, _, _ := strings.Cut(rel, string(filepath.Separator))
	return name, true
}
