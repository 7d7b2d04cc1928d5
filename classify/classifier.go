package classify

// Classifier resolves file names to categories.
type Classifier struct {
	lookup Lookup
	rules  []Rule
}

// New returns a Classifier using lookup and rules. A nil lookup means the
// builtin table; no rules means DefaultRules.
func New(lookup Lookup, rules ...Rule) *Classifier {
	if lookup == nil {
		lookup = Builtin()
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{lookup: lookup, rules: rules}
}

// ContentType returns the inferred content type of name.
func (c *Classifier) ContentType(name string) (string, bool) {
	return c.lookup.TypeByName(name)
}

// Classify returns the category for name.
func (c *Classifier) Classify(name string) Category {
	ct, ok := c.ContentType(name)
	return c.CategoryOf(ct, ok)
}

// CategoryOf applies the rule list to a content type. An unknown type is
// always Miscellaneous.
func (c *Classifier) CategoryOf(contentType string, known bool) Category {
	if !known || contentType == "" {
		return Miscellaneous
	}
	for _, r := range c.rules {
		if r.Match(contentType) {
			return r.Category
		}
	}
	return Miscellaneous
}
