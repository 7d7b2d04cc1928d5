package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.Sort.OnConflict = strings.ToLower(strings.TrimSpace(c.Sort.OnConflict))
	if c.Sort.OnConflict == "" {
		c.Sort.OnConflict = defaultOnConflict
	}
	c.Classify.Lookup = strings.ToLower(strings.TrimSpace(c.Classify.Lookup))
	if c.Classify.Lookup == "" {
		c.Classify.Lookup = defaultLookup
	}
	c.normalizeFolders()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.BackupDir) == "" {
		c.Paths.BackupDir = defaultBackupDir
	}
	if strings.TrimSpace(c.Paths.LockDir) == "" {
		c.Paths.LockDir = defaultLockDir
	}
	var err error
	if c.Paths.BackupDir, err = expandPath(strings.TrimSpace(c.Paths.BackupDir)); err != nil {
		return fmt.Errorf("paths.backup_dir: %w", err)
	}
	if c.Paths.LockDir, err = expandPath(strings.TrimSpace(c.Paths.LockDir)); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeFolders() {
	defaults := Default().Folders
	fill := func(v *string, fallback string) {
		*v = strings.TrimSpace(*v)
		if *v == "" {
			*v = fallback
		}
	}
	fill(&c.Folders.Documents, defaults.Documents)
	fill(&c.Folders.Pictures, defaults.Pictures)
	fill(&c.Folders.Videos, defaults.Videos)
	fill(&c.Folders.Audio, defaults.Audio)
	fill(&c.Folders.Applications, defaults.Applications)
	fill(&c.Folders.Miscellaneous, defaults.Miscellaneous)
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
