package sorter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dendrascience/sortdir/classify"
	"github.com/dendrascience/sortdir/fsutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestParseConflictPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ConflictPolicy
		wantErr bool
	}{
		{in: "", want: ConflictRename},
		{in: "rename", want: ConflictRename},
		{in: " Overwrite ", want: ConflictOverwrite},
		{in: "FAIL", want: ConflictFail},
		{in: "skip", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseConflictPolicy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseConflictPolicy(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestMover_CreatesFolderAndMoves(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "nested", "photo.png")
	writeFile(t, src, "png")

	m := NewMover(NewLayout(root, nil), ConflictRename, nil)
	mv, err := m.Move(src, classify.Pictures)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	want := filepath.Join(root, "Pictures", "photo.png")
	if mv.Dest != want || mv.Renamed || mv.Skipped {
		t.Errorf("unexpected move %+v", mv)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source should be gone after move")
	}
	if readFile(t, want) != "png" {
		t.Error("content changed during move")
	}
}

func TestMover_AlreadyInPlace(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Documents", "a.txt")
	writeFile(t, src, "a")

	mv, err := NewMover(NewLayout(root, nil), ConflictFail, nil).Move(src, classify.Documents)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !mv.Skipped || mv.Dest != src {
		t.Errorf("file already in place should be skipped, got %+v", mv)
	}
	if readFile(t, src) != "a" {
		t.Error("file in place was modified")
	}
}

func TestMover_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		policy   ConflictPolicy
		wantErr  error
		wantDest string
		existing string // content left at Documents/report.txt
	}{
		{name: "rename", policy: ConflictRename, wantDest: "report (1).txt", existing: "old"},
		{name: "overwrite", policy: ConflictOverwrite, wantDest: "report.txt", existing: "new"},
		{name: "fail", policy: ConflictFail, wantErr: ErrDestinationExists, existing: "old"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, "Documents", "report.txt"), "old")
			src := filepath.Join(root, "in", "report.txt")
			writeFile(t, src, "new")

			mv, err := NewMover(NewLayout(root, nil), tt.policy, nil).Move(src, classify.Documents)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				if readFile(t, src) != "new" {
					t.Error("source should be untouched on failure")
				}
			} else {
				if err != nil {
					t.Fatalf("Move failed: %v", err)
				}
				if filepath.Base(mv.Dest) != tt.wantDest {
					t.Errorf("Dest = %s, want %s", mv.Dest, tt.wantDest)
				}
				if readFile(t, mv.Dest) != "new" {
					t.Error("moved content mismatch")
				}
			}
			if got := readFile(t, filepath.Join(root, "Documents", "report.txt")); got != tt.existing {
				t.Errorf("existing file holds %q, want %q", got, tt.existing)
			}
		})
	}
}

func TestUniqueName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "")
	writeFile(t, filepath.Join(dir, "a (1).txt"), "")
	writeFile(t, filepath.Join(dir, ".bashrc"), "")

	tests := []struct {
		in   string
		want string
	}{
		{"a.txt", "a (2).txt"},
		{".bashrc", ".bashrc (1)"},
		{"b.tar.gz", "b.tar (1).gz"},
		{"Makefile", "Makefile (1)"},
	}
	for _, tt := range tests {
		got, err := uniqueName(filepath.Join(dir, tt.in))
		if err != nil {
			t.Fatalf("uniqueName(%s): %v", tt.in, err)
		}
		if filepath.Base(got) != tt.want {
			t.Errorf("uniqueName(%s) = %s, want %s", tt.in, filepath.Base(got), tt.want)
		}
	}
}

func TestMover_FolderIsAFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Audio"), "not a folder")
	src := filepath.Join(root, "x", "song.mp3")
	writeFile(t, src, "mp3")

	_, err := NewMover(NewLayout(root, nil), ConflictRename, nil).Move(src, classify.Audio)
	if !errors.Is(err, fsutil.ErrExpectedDirectory) {
		t.Errorf("Expected ErrExpectedDirectory, got %v", err)
	}
}

func TestLayout(t *testing.T) {
	l := NewLayout("/data", map[classify.Category]string{classify.Pictures: "Photos"})
	if got := l.Folder(classify.Pictures); got != filepath.Join("/data", "Photos") {
		t.Errorf("Folder(Pictures) = %s", got)
	}
	if got := l.Folder(classify.Audio); got != filepath.Join("/data", "Audio") {
		t.Errorf("Folder(Audio) = %s", got)
	}
	if !l.Expected("Photos") || l.Expected("Pictures") || l.Expected("OldStuff") {
		t.Error("Expected() does not follow the layout names")
	}
}
