package config

import (
	"fmt"
	"strings"

	"github.com/dendrascience/sortdir/classify"
	"github.com/dendrascience/sortdir/internal/logging"
	"github.com/dendrascience/sortdir/sorter"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := sorter.ParseConflictPolicy(c.Sort.OnConflict); err != nil {
		return fmt.Errorf("sort.on_conflict: %w", err)
	}
	if _, err := classify.NewLookup(c.Classify.Lookup); err != nil {
		return fmt.Errorf("classify.lookup: %w", err)
	}
	if err := c.validateFolders(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFolders() error {
	seen := make(map[string]classify.Category)
	for _, cat := range classify.Categories {
		name := c.Names()[cat]
		if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("folders.%s: %q is not a plain directory name", strings.ToLower(cat.String()), name)
		}
		if other, ok := seen[name]; ok {
			return fmt.Errorf("folders.%s: %q is already used by folders.%s", strings.ToLower(cat.String()), name, strings.ToLower(other.String()))
		}
		seen[name] = cat
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
