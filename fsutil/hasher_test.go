package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetFileHash(t *testing.T) {
	// Create temp directory for test files
	tmpDir := t.TempDir()

	emptyFile := filepath.Join(tmpDir, "empty.txt")
	os.WriteFile(emptyFile, []byte{}, 0644)

	helloFile := filepath.Join(tmpDir, "hello.txt")
	os.WriteFile(helloFile, []byte("hello world"), 0644)

	subDir := filepath.Join(tmpDir, "subdir")
	os.Mkdir(subDir, 0755)

	tests := []struct {
		name     string
		path     string
		wantHash string
		wantErr  error
	}{
		{
			name:     "empty file",
			path:     emptyFile,
			wantHash: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "hello world file",
			path:     helloFile,
			wantHash: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name:    "directory returns error",
			path:    subDir,
			wantErr: ErrExpectedFile,
		},
		{
			name:    "non-existent file",
			path:    filepath.Join(tmpDir, "nonexistent.txt"),
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetFileHash(tt.path)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("GetFileHash() expected error %v, got nil", tt.wantErr)
					return
				}
				if tt.wantErr == os.ErrNotExist {
					if !os.IsNotExist(err) {
						t.Errorf("GetFileHash() error = %v, want os.ErrNotExist", err)
					}
					return
				}
				if err != tt.wantErr {
					t.Errorf("GetFileHash() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("GetFileHash() unexpected error = %v", err)
				return
			}
			if gotHash != tt.wantHash {
				t.Errorf("GetFileHash() = %v, want %v", gotHash, tt.wantHash)
			}
		})
	}
}

func TestGetHash(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "hello world",
			input: "hello world",
			want:  "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name:  "newline at end",
			input: "hello\n",
			want:  "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetHash(strings.NewReader(tt.input))
			if err != nil {
				t.Errorf("GetHash() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetHash() = %v, want %v", got, tt.want)
			}
			if HashString(tt.input) != tt.want {
				t.Errorf("HashString(%q) = %v, want %v", tt.input, HashString(tt.input), tt.want)
			}
		})
	}
}
