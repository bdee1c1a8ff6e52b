package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"gita-tui/internal/prefs"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type (
	Config struct {
		Assets Assets
		Store  Store
		UI     UI
		Log    Log
	}

	Assets struct {
		Dir    string `validate:"required"`
		Bundle string // zip with the four JSON files; preferred over Dir when present
		URL    string `validate:"omitempty,url"` // downloaded into Bundle when missing
	}
	Store struct {
		Backend string `validate:"oneof=file sqlite memory"`
		Path    string
	}
	UI struct {
		Theme string `validate:"required"`
	}
	Log struct {
		File string // empty discards log output
	}
)

// Load reads GITA_* environment variables and an optional config file from
// the user config directory (or configDir when set).
func Load(configDir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("gita")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("assets.dir", "./assets")
	v.SetDefault("assets.bundle", "")
	v.SetDefault("assets.url", "")
	v.SetDefault("store.backend", BackendFile)
	v.SetDefault("store.path", "")
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("log.file", "")

	v.SetConfigName("config")
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else if dir, err := prefs.DefaultPath(""); err == nil {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Assets: Assets{
			Dir:    v.GetString("assets.dir"),
			Bundle: v.GetString("assets.bundle"),
			URL:    v.GetString("assets.url"),
		},
		Store: Store{
			Backend: strings.ToLower(v.GetString("store.backend")),
			Path:    v.GetString("store.path"),
		},
		UI: UI{
			Theme: v.GetString("ui.theme"),
		},
		Log: Log{
			File: v.GetString("log.file"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Store.Path == "" && cfg.Store.Backend != BackendMemory {
		path, err := prefs.DefaultPath(defaultStoreFile(cfg.Store.Backend))
		if err != nil {
			return nil, fmt.Errorf("resolve store path: %w", err)
		}
		cfg.Store.Path = path
	}

	return cfg, nil
}

func defaultStoreFile(backend string) string {
	if backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultFileStoreFile
}
