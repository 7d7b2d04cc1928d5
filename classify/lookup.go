package classify

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Lookup infers a content type from a file name. The boolean is false when
// the name is not recognized.
type Lookup interface {
	TypeByName(name string) (string, bool)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(name string) (string, bool)

func (f LookupFunc) TypeByName(name string) (string, bool) {
	return f(name)
}

// Lookup kinds accepted by NewLookup.
const (
	LookupBuiltin = "builtin"
	LookupSystem  = "system"
)

// NewLookup returns the lookup named by kind. "system" consults the platform
// MIME table first and falls back to the builtin table.
func NewLookup(kind string) (Lookup, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", LookupBuiltin:
		return Builtin(), nil
	case LookupSystem:
		return Chain(System(), Builtin()), nil
	default:
		return nil, fmt.Errorf("unknown content type lookup %q", kind)
	}
}

// Extension returns the lower-cased final extension of name including the
// dot, or "" when there is none. A leading dot alone does not count, so
// ".bashrc" has no extension while ".config.json" has ".json".
func Extension(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}

// Builtin returns a lookup over the compiled-in extension table.
func Builtin() Lookup {
	return LookupFunc(func(name string) (string, bool) {
		ext := Extension(name)
		if ext == "" {
			return "", false
		}
		t, ok := builtinTypes[ext]
		return t, ok
	})
}

// System returns a lookup backed by mime.TypeByExtension, which reads the
// platform's mime.types files. Parameters such as charset are dropped.
func System() Lookup {
	return LookupFunc(func(name string) (string, bool) {
		ext := Extension(name)
		if ext == "" {
			return "", false
		}
		t := mime.TypeByExtension(ext)
		if t == "" {
			return "", false
		}
		mediaType, _, err := mime.ParseMediaType(t)
		if err != nil {
			return "", false
		}
		return mediaType, true
	})
}

// Chain returns a lookup that tries each lookup in order.
func Chain(lookups ...Lookup) Lookup {
	return LookupFunc(func(name string) (string, bool) {
		for _, l := range lookups {
			if t, ok := l.TypeByName(name); ok {
				return t, true
			}
		}
		return "", false
	})
}
