package classify

import (
	"regexp"
	"strings"
)

// Rule assigns Category to every content type Match accepts.
type Rule struct {
	Name     string
	Match    func(contentType string) bool
	Category Category
}

// officeOpenXML matches every subtype of the wordprocessing, presentation and
// spreadsheet Office Open XML families.
var officeOpenXML = regexp.MustCompile(`(?i)^application/vnd\.openxmlformats-officedocument\.(wordprocessingml|presentationml|spreadsheetml)\.`)

var documentTypes = map[string]bool{
	"application/pdf":  true,
	"application/yaml": true,
	"application/csv":  true,
}

// IsDocument reports whether contentType belongs in Documents even though it
// may carry an application/ prefix.
func IsDocument(contentType string) bool {
	ct := strings.ToLower(contentType)
	return officeOpenXML.MatchString(ct) || documentTypes[ct] || strings.HasPrefix(ct, "text")
}

func hasPrefix(prefix string) func(string) bool {
	return func(contentType string) bool {
		return strings.HasPrefix(strings.ToLower(contentType), prefix)
	}
}

// DefaultRules returns the standard first-match-wins rule list. Types no
// rule accepts are Miscellaneous.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "document", Match: IsDocument, Category: Documents},
		{Name: "image", Match: hasPrefix("image"), Category: Pictures},
		{Name: "video", Match: hasPrefix("video"), Category: Videos},
		{Name: "audio", Match: hasPrefix("audio"), Category: Audio},
		{Name: "application", Match: hasPrefix("application"), Category: Applications},
	}
}
