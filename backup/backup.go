package backup

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/sortdir/fsutil"
)

// Suffix is appended to the target directory's base name to form the archive name.
const Suffix = ".bak.zip"

// BackupFailedError reports that a snapshot could not be produced. No archive
// is left at Dest when it is returned.
type BackupFailedError struct {
	Source string
	Dest   string
	Err    error
}

func (e *BackupFailedError) Error() string {
	return fmt.Sprintf("failed to make a backup of %s at %s: %v", e.Source, e.Dest, e.Err)
}

func (e *BackupFailedError) Unwrap() error {
	return e.Err
}

// Result describes a completed snapshot.
type Result struct {
	Path             string // final archive location
	Files            int    // file and symlink entries written
	Dirs             int    // directory entries written, including the root
	Skipped          []string
	UncompressedSize int64
	CompressedSize   int64
}

// DestinationFor returns the archive path for root inside dir:
// <dir>/<basename of root>.bak.zip
func DestinationFor(dir, root string) string {
	return filepath.Join(dir, filepath.Base(filepath.Clean(root))+Suffix)
}

// CompressDirectoryToDest recursively snapshots path into a zip archive at
// dest, replacing any archive already there. Entries are stored under the
// base name of path. The archive is assembled in a temporary file beside dest
// and renamed into place only after it has been written and re-read, so a
// failed run never leaves a partial archive at dest.
//
// If dest lies inside path it is left out of the snapshot.
// Every failure is returned as a *BackupFailedError.
func CompressDirectoryToDest(path string, dest string) (Result, error) {
	res, err := compress(path, dest)
	if err != nil {
		return Result{}, &BackupFailedError{Source: path, Dest: dest, Err: err}
	}
	return res, nil
}

func compress(path, dest string) (Result, error) {
	var res Result
	path, err := filepath.Abs(path)
	if err != nil {
		return res, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return res, err
	}
	if !info.IsDir() {
		return res, fsutil.ErrExpectedDirectory
	}
	dest, err = filepath.Abs(dest)
	if err != nil {
		return res, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return res, err
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := zip.NewWriter(tmp)
	prefix := filepath.Base(filepath.Clean(path))
	err = filepath.WalkDir(path, func(subpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if subpath == dest || subpath == tmpPath {
			return nil
		}
		rel, err := filepath.Rel(path, subpath)
		if err != nil {
			return err
		}
		name := prefix
		if rel != "." {
			name = prefix + "/" + filepath.ToSlash(rel)
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		switch {
		case d.IsDir():
			if err := addDirToZip(w, fi, name); err != nil {
				return err
			}
			res.Dirs++
		case fi.Mode()&fs.ModeSymlink != 0:
			if err := addSymlinkToZip(w, subpath, fi, name); err != nil {
				return err
			}
			res.Files++
		case fi.Mode().IsRegular():
			n, err := addFileToZip(w, subpath, fi, name)
			if err != nil {
				return err
			}
			res.Files++
			res.UncompressedSize += n
		default:
			// sockets, fifos and devices have no content to archive
			res.Skipped = append(res.Skipped, subpath)
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("error walking path %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return res, fmt.Errorf("finalize archive: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return res, err
	}
	if err := tmp.Close(); err != nil {
		return res, err
	}

	if err := checkArchive(tmpPath, res.Files); err != nil {
		return res, err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return res, err
	}
	committed = true

	stat, err := os.Stat(dest)
	if err != nil {
		return res, err
	}
	res.Path = dest
	res.CompressedSize = stat.Size()
	return res, nil
}

func addDirToZip(w *zip.Writer, fi fs.FileInfo, name string) error {
	header, err := zip.FileInfoHeader(fi)
	if err != nil {
		return err
	}
	header.Name = name + "/"
	header.Method = zip.Store
	_, err = w.CreateHeader(header)
	return err
}

func addSymlinkToZip(w *zip.Writer, path string, fi fs.FileInfo, name string) error {
	target, err := os.Readlink(path)
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(fi)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Store
	writer, err := w.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.WriteString(writer, target)
	return err
}

// addFileToZip copies one regular file into the archive and returns the
// number of bytes written. The source handle is closed before returning.
func addFileToZip(w *zip.Writer, path string, fi fs.FileInfo, name string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	header, err := zip.FileInfoHeader(fi)
	if err != nil {
		return 0, err
	}
	header.Name = name
	header.Method = zip.Deflate
	writer, err := w.CreateHeader(header)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(writer, f)
	if err != nil {
		return n, err
	}
	if n != fi.Size() {
		return n, fmt.Errorf("%s changed size while archiving: expected %d bytes, copied %d", path, fi.Size(), n)
	}
	return n, nil
}

// checkArchive reopens the archive and confirms it holds the expected number
// of non-directory entries.
func checkArchive(path string, wantFiles int) error {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("reopen archive: %w", err)
	}
	defer zrc.Close()
	files := 0
	for _, f := range zrc.File {
		if !strings.HasSuffix(f.Name, "/") {
			files++
		}
	}
	if files != wantFiles {
		return errors.Join(ErrIncomplete, fmt.Errorf("archive holds %d files, wrote %d", files, wantFiles))
	}
	return nil
}
