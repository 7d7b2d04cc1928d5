package sorter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/sortdir/classify"
	"github.com/dendrascience/sortdir/fsutil"
	"github.com/dendrascience/sortdir/internal/logging"
)

// ConflictPolicy decides what happens when a destination name is taken.
type ConflictPolicy string

const (
	// ConflictRename stores the file as "name (1).ext", "name (2).ext", ...
	ConflictRename ConflictPolicy = "rename"
	// ConflictOverwrite replaces the existing file.
	ConflictOverwrite ConflictPolicy = "overwrite"
	// ConflictFail aborts with ErrDestinationExists.
	ConflictFail ConflictPolicy = "fail"
)

// ParseConflictPolicy accepts a policy name case-insensitively. The empty
// string selects ConflictRename.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch p := ConflictPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ConflictRename, nil
	case ConflictRename, ConflictOverwrite, ConflictFail:
		return p, nil
	default:
		return "", fmt.Errorf("unknown conflict policy %q (want rename, overwrite or fail)", s)
	}
}

// Move describes one relocated file.
type Move struct {
	Source   string
	Dest     string
	Category classify.Category
	Renamed  bool // Dest differs from the original base name
	Skipped  bool // the file was already in place
}

// Mover relocates files into the folders of a Layout.
type Mover struct {
	layout Layout
	policy ConflictPolicy
	logger *slog.Logger
}

// NewMover returns a Mover. A nil logger discards output.
func NewMover(layout Layout, policy ConflictPolicy, logger *slog.Logger) *Mover {
	if policy == "" {
		policy = ConflictRename
	}
	return &Mover{
		layout: layout,
		policy: policy,
		logger: logging.NewComponentLogger(logger, "mover"),
	}
}

// Move renames src into the folder for c, creating the folder if needed.
func (m *Mover) Move(src string, c classify.Category) (Move, error) {
	folder := m.layout.Folder(c)
	mv := Move{Source: src, Category: c}
	if err := ensureDir(folder); err != nil {
		return mv, fmt.Errorf("create %s: %w", folder, err)
	}

	dst := filepath.Join(folder, filepath.Base(src))
	if dst == src {
		mv.Dest = dst
		mv.Skipped = true
		return mv, nil
	}

	exists, err := lexists(dst)
	if err != nil {
		return mv, err
	}
	if exists {
		switch m.policy {
		case ConflictFail:
			return mv, fmt.Errorf("move %s: %s: %w", src, dst, ErrDestinationExists)
		case ConflictRename:
			dst, err = uniqueName(dst)
			if err != nil {
				return mv, err
			}
			mv.Renamed = true
		case ConflictOverwrite:
			m.logger.Debug("overwriting existing file", logging.String("dest", dst))
		}
	}

	if err := os.Rename(src, dst); err != nil {
		return mv, fmt.Errorf("move %s: %w", src, err)
	}
	mv.Dest = dst
	m.logger.Info("moved file",
		logging.String(logging.FieldEventType, "file_moved"),
		logging.String("source", src),
		logging.String("dest", dst),
		logging.String("category", m.layout.Name(c)),
	)
	return mv, nil
}

// ensureDir creates a single directory level, accepting one that exists.
func ensureDir(dir string) error {
	err := os.Mkdir(dir, 0o755)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return err
	}
	info, statErr := os.Stat(dir)
	if statErr != nil {
		return statErr
	}
	if !info.IsDir() {
		return fsutil.ErrExpectedDirectory
	}
	return nil
}

func lexists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// uniqueName returns the first "stem (n)ext" variant of path that is free.
func uniqueName(path string) (string, error) {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		exists, err := lexists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}
