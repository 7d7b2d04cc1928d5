package config

const (
	defaultConfigPath = "~/.config/sortdir/config.toml"
	defaultBackupDir  = "~"
	defaultLockDir    = "~/.local/state/sortdir"
	defaultOnConflict = "rename"
	defaultLookup     = "builtin"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BackupDir: defaultBackupDir,
			LockDir:   defaultLockDir,
		},
		Sort: Sort{
			OnConflict: defaultOnConflict,
			Lock:       true,
		},
		Classify: Classify{
			Lookup: defaultLookup,
		},
		Folders: Folders{
			Documents:     "Documents",
			Pictures:      "Pictures",
			Videos:        "Videos",
			Audio:         "Audio",
			Applications:  "Applications",
			Miscellaneous: "Miscellaneous",
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
