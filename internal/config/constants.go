package config

// Defaults for values left unset.
const (
	// DefaultTheme is used until the reader picks one in Settings
	DefaultTheme = "saffron"

	// DefaultFileStoreFile is created in the user config directory
	DefaultFileStoreFile = "prefs.json"

	// DefaultSQLiteFile is created in the user config directory
	DefaultSQLiteFile = "prefs.db"
)
