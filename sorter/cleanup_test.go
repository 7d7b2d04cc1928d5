package sorter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanup(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "OldStuff", "deep", "a.txt"), "a")
	writeFile(t, filepath.Join(root, "Documents", "b.txt"), "b")
	writeFile(t, filepath.Join(root, "loose.txt"), "c")
	os.Mkdir(filepath.Join(root, "Audio"), 0755)
	os.Mkdir(filepath.Join(root, "empty"), 0755)

	removed, err := Cleanup(NewLayout(root, nil), nil)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if len(removed) != 2 {
		t.Errorf("Expected 2 removed directories, got %v", removed)
	}
	for _, gone := range []string{"OldStuff", "empty"} {
		if _, err := os.Stat(filepath.Join(root, gone)); !os.IsNotExist(err) {
			t.Errorf("%s should have been removed", gone)
		}
	}
	for _, kept := range []string{"Documents/b.txt", "loose.txt", "Audio"} {
		if _, err := os.Stat(filepath.Join(root, kept)); err != nil {
			t.Errorf("%s should have been kept: %v", kept, err)
		}
	}
}

func TestCleanup_SecondRunIsNoop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "junk", "x"), "x")
	writeFile(t, filepath.Join(root, "Videos", "v.mp4"), "v")
	layout := NewLayout(root, nil)

	if _, err := Cleanup(layout, nil); err != nil {
		t.Fatalf("first Cleanup failed: %v", err)
	}
	before, _ := os.ReadDir(root)
	removed, err := Cleanup(layout, nil)
	if err != nil {
		t.Fatalf("second Cleanup failed: %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("second Cleanup removed %v", removed)
	}
	after, _ := os.ReadDir(root)
	if len(before) != len(after) {
		t.Errorf("second Cleanup changed the tree: %d entries before, %d after", len(before), len(after))
	}
}

func TestCleanup_LeavesSymlinkedDirectory(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "keep.txt"), "k")
	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Skip("Symlinks not supported on this system")
	}

	if _, err := Cleanup(NewLayout(root, nil), nil); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outside, "keep.txt")); err != nil {
		t.Error("Cleanup must not follow symlinks out of the tree")
	}
}

func TestCleanup_KeepsNamedEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Backups", "inbox.bak.zip"), "z")
	writeFile(t, filepath.Join(root, "junk", "x"), "x")

	removed, err := Cleanup(NewLayout(root, nil), nil, "Backups")
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if len(removed) != 1 || removed[0] != filepath.Join(root, "junk") {
		t.Errorf("removed = %v, want only junk", removed)
	}
	if _, err := os.Stat(filepath.Join(root, "Backups", "inbox.bak.zip")); err != nil {
		t.Errorf("kept entry was removed: %v", err)
	}
}

func TestCleanup_MissingRoot(t *testing.T) {
	if _, err := Cleanup(NewLayout(filepath.Join(t.TempDir(), "nope"), nil), nil); err == nil {
		t.Error("Cleanup should fail on a missing root")
	}
}
