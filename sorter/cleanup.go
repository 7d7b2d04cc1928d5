package sorter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/dendrascience/sortdir/internal/logging"
)

// Cleanup removes every top-level directory under layout.Root whose name is
// not a category folder, including its contents. Files and symlinks at the
// top level are left alone, as are empty category folders and the entries
// named in keep. It returns the removed paths.
func Cleanup(layout Layout, logger *slog.Logger, keep ...string) ([]string, error) {
	logger = logging.NewComponentLogger(logger, "cleanup")
	entries, err := os.ReadDir(layout.Root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", layout.Root, err)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() || layout.Expected(entry.Name()) || slices.Contains(keep, entry.Name()) {
			continue
		}
		path := filepath.Join(layout.Root, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
		logger.Info("removed directory",
			logging.String(logging.FieldEventType, "directory_removed"),
			logging.String("path", path),
		)
		removed = append(removed, path)
	}
	return removed, nil
}
