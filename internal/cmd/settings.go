package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dendrascience/sortdir/internal/config"
	"github.com/dendrascience/sortdir/internal/logging"
)

func addSortFlags(cmd *cobra.Command) {
	cmd.Flags().String("on-conflict", "", "When a destination name is taken: rename, overwrite or fail")
	cmd.Flags().String("backup-dir", "", "Directory receiving the backup archive (default ~)")
	cmd.Flags().Bool("no-lock", false, "Do not take the per-directory run lock")
}

// flagString returns the flag value, or "" when the command does not define it.
func flagString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

// loadConfig reads the configuration file and applies command line overrides.
// It returns the resolved file path and whether the file existed.
func loadConfig(cmd *cobra.Command) (*config.Config, string, bool, error) {
	cfg, path, exists, err := config.Load(flagString(cmd, "config"))
	if err != nil {
		return nil, "", false, fmt.Errorf("load config: %w", err)
	}

	if v := flagString(cmd, "log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := flagString(cmd, "log-format"); v != "" {
		cfg.Logging.Format = v
	}
	if v := flagString(cmd, "log-file"); v != "" {
		cfg.Logging.File = v
	}
	if v := flagString(cmd, "on-conflict"); v != "" {
		cfg.Sort.OnConflict = v
	}
	if v := flagString(cmd, "backup-dir"); v != "" {
		cfg.Paths.BackupDir = v
	}
	if noLock, err := cmd.Flags().GetBool("no-lock"); err == nil && noLock {
		cfg.Sort.Lock = false
	}
	if err := cfg.Finalize(); err != nil {
		return nil, "", false, err
	}
	return cfg, path, exists, nil
}

// newLogger writes log records to the command's error stream and, when
// configured, the log file.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	}
	if cfg.Logging.File != "" {
		opts.OutputPaths = []string{cfg.Logging.File}
	}
	return logging.New(opts)
}
