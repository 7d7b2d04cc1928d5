package backup

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dendrascience/sortdir/fsutil"
)

func TestVerify(t *testing.T) {
	srcDir := filepath.Join(t.TempDir(), "src")
	os.MkdirAll(filepath.Join(srcDir, "sub"), 0755)
	os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("aaaa"), 0644)
	os.WriteFile(filepath.Join(srcDir, "sub", "b.txt"), []byte("bb"), 0644)

	destPath := filepath.Join(t.TempDir(), "src.bak.zip")
	if _, err := CompressDirectoryToDest(srcDir, destPath); err != nil {
		t.Fatalf("CompressDirectoryToDest failed: %v", err)
	}

	report, err := Verify(destPath)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !report.OK() {
		t.Errorf("Expected a clean report, got problems: %v", report.Problems)
	}
	if report.Files != 2 || report.Dirs != 2 || report.Entries != 4 {
		t.Errorf("Unexpected counts: %+v", report)
	}
	if len(report.SHA256) != 64 {
		t.Errorf("SHA256 = %q, want a hex sha256", report.SHA256)
	}
	if report.UncompressedSize != 6 {
		t.Errorf("UncompressedSize = %d, want 6", report.UncompressedSize)
	}
}

func TestVerify_ExtensionCheck(t *testing.T) {
	_, err := Verify("backup.tar")
	if err != ErrNotZip {
		t.Errorf("Expected ErrNotZip for wrong extension, got: %v", err)
	}
}

func TestVerify_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "looks.zip")
	os.Mkdir(dir, 0755)
	if _, err := Verify(dir); !errors.Is(err, fsutil.ErrExpectedFile) {
		t.Errorf("Expected ErrExpectedFile, got: %v", err)
	}
}

func TestVerify_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.zip")
	os.WriteFile(path, []byte("this is not a zip archive"), 0644)
	if _, err := Verify(path); err == nil {
		t.Error("Verify should fail to open a non-zip file")
	}
}

func TestVerify_CorruptEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	w := zip.NewWriter(f)
	// stored entries keep the payload verbatim, so it can be flipped on disk
	entry, _ := w.CreateHeader(&zip.FileHeader{Name: "x/payload.txt", Method: zip.Store})
	entry.Write([]byte("PAYLOAD-PAYLOAD-PAYLOAD"))
	w.Close()
	f.Close()

	data, _ := os.ReadFile(path)
	for i := 0; i+7 <= len(data); i++ {
		if string(data[i:i+7]) == "PAYLOAD" {
			data[i] = 'X'
			break
		}
	}
	os.WriteFile(path, data, 0644)

	report, err := Verify(path)
	if err != nil {
		t.Fatalf("Verify failed to open archive: %v", err)
	}
	if report.OK() {
		t.Error("Expected a checksum problem to be reported")
	}
}
