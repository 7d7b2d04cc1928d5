package classify

import (
	"strings"
	"testing"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.PNG", ".png"},
		{"/a/b/archive.tar.gz", ".gz"},
		{"Makefile", ""},
		{".bashrc", ""},
		{"/home/u/.config.json", ".json"},
		{"trailing.", ""},
		{"dir.d/file", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extension(tt.name); got != tt.want {
				t.Errorf("Extension(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestBuiltin(t *testing.T) {
	l := Builtin()
	if got, ok := l.TypeByName("report.docx"); !ok || got != "application/vnd.openxmlformats-officedocument.wordprocessingml.document" {
		t.Errorf("docx = %q, %v", got, ok)
	}
	if _, ok := l.TypeByName("archive.bin"); ok {
		t.Error(".bin should not be recognized")
	}
	for ext, ct := range builtinTypes {
		if ext != strings.ToLower(ext) || !strings.HasPrefix(ext, ".") {
			t.Errorf("table key %q must be a lower-case extension", ext)
		}
		if !strings.Contains(ct, "/") {
			t.Errorf("table value %q for %s is not a media type", ct, ext)
		}
	}
}

func TestSystem_StripsParameters(t *testing.T) {
	l := System()
	// mime's own fallback table always knows .html
	got, ok := l.TypeByName("index.html")
	if !ok {
		t.Fatal("expected .html to be known")
	}
	if strings.Contains(got, ";") {
		t.Errorf("parameters not stripped: %q", got)
	}
	if _, ok := l.TypeByName("Makefile"); ok {
		t.Error("name without extension should be unknown")
	}
}

func TestChain(t *testing.T) {
	first := LookupFunc(func(name string) (string, bool) {
		if name == "a.special" {
			return "image/special", true
		}
		return "", false
	})
	l := Chain(first, Builtin())
	if got, _ := l.TypeByName("a.special"); got != "image/special" {
		t.Errorf("first lookup not consulted, got %q", got)
	}
	if got, _ := l.TypeByName("a.mp3"); got != "audio/mpeg" {
		t.Errorf("fallback lookup not consulted, got %q", got)
	}
	if _, ok := l.TypeByName("a.nothing"); ok {
		t.Error("unknown in every lookup should be unknown")
	}
}

func TestNewLookup(t *testing.T) {
	for _, kind := range []string{"", "builtin", " SYSTEM "} {
		if _, err := NewLookup(kind); err != nil {
			t.Errorf("NewLookup(%q) error: %v", kind, err)
		}
	}
	if _, err := NewLookup("magic"); err == nil {
		t.Error("NewLookup should reject unknown kinds")
	}
}
