package classify

import (
	"fmt"
	"strings"
)

// Category identifies one of the six destination folders.
type Category int

const (
	Documents Category = iota
	Pictures
	Videos
	Audio
	Applications
	Miscellaneous
)

// Categories lists every category in display order.
var Categories = []Category{Documents, Pictures, Videos, Audio, Applications, Miscellaneous}

var categoryNames = [...]string{
	Documents:     "Documents",
	Pictures:      "Pictures",
	Videos:        "Videos",
	Audio:         "Audio",
	Applications:  "Applications",
	Miscellaneous: "Miscellaneous",
}

// String returns the default folder name for c.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory accepts a folder name case-insensitively.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(name), c.String()) {
			return c, nil
		}
	}
	return Miscellaneous, fmt.Errorf("unknown category %q", name)
}
