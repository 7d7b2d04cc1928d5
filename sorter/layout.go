package sorter

import (
	"path/filepath"

	"github.com/dendrascience/sortdir/classify"
)

// Layout places the category folders under a target root.
type Layout struct {
	Root  string
	names map[classify.Category]string
}

// NewLayout returns the layout for root. names overrides folder names per
// category; categories missing from names use their default name.
func NewLayout(root string, names map[classify.Category]string) Layout {
	l := Layout{Root: root, names: make(map[classify.Category]string, len(classify.Categories))}
	for _, c := range classify.Categories {
		name := c.String()
		if n, ok := names[c]; ok && n != "" {
			name = n
		}
		l.names[c] = name
	}
	return l
}

// Name returns the folder name for c.
func (l Layout) Name(c classify.Category) string {
	if n, ok := l.names[c]; ok {
		return n
	}
	return l.names[classify.Miscellaneous]
}

// Folder returns the absolute folder path for c.
func (l Layout) Folder(c classify.Category) string {
	return filepath.Join(l.Root, l.Name(c))
}

// Expected reports whether name is one of the category folder names.
func (l Layout) Expected(name string) bool {
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}
