// Package config resolves runtime settings: built-in defaults, then an
// optional TOML file, then LANES_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/sandeepkv93/lanes/internal/storage"
)

type Config struct {
	Store StoreConfig `toml:"store"`
	Log   LogConfig   `toml:"log"`
	UI    UIConfig    `toml:"ui"`
}

type StoreConfig struct {
	Backend storage.Backend `toml:"backend"`
	Path    string          `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
	// File is where the board writes logs; the terminal is never used.
	File string `toml:"file"`
}

type UIConfig struct {
	UndoToastSeconds int  `toml:"undo_toast_seconds"`
	Mouse            bool `toml:"mouse"`
}

func Default(paths Paths) Config {
	return Config{
		Store: StoreConfig{
			Backend: storage.BackendSQLite,
			Path:    paths.DBPath,
		},
		Log: LogConfig{
			Level: "info",
			File:  paths.LogPath,
		},
		UI: UIConfig{
			UndoToastSeconds: 5,
			Mouse:            true,
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	return cfg, nil
}

// FromEnv applies LANES_* overrides. Unparseable values are ignored.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("LANES_STORE_BACKEND")); v != "" {
		cfg.Store.Backend = storage.Backend(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv("LANES_DB_PATH")); v != "" {
		cfg.Store.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("LANES_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LANES_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	if v, ok := getEnvInt("LANES_UNDO_TOAST_SECONDS"); ok && v > 0 {
		cfg.UI.UndoToastSeconds = v
	}
	if v, ok := getEnvBool("LANES_MOUSE"); ok {
		cfg.UI.Mouse = v
	}
	return cfg
}

func (c Config) Validate() error {
	if !c.Store.Backend.IsValid() {
		return fmt.Errorf("invalid store.backend: %q", c.Store.Backend)
	}
	if c.Store.Backend != storage.BackendMemory && strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store.path is required")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}
	if c.UI.UndoToastSeconds <= 0 {
		return fmt.Errorf("ui.undo_toast_seconds must be > 0, got %d", c.UI.UndoToastSeconds)
	}
	return nil
}

func (c Config) UndoToast() time.Duration {
	return time.Duration(c.UI.UndoToastSeconds) * time.Second
}

// Resolve runs the whole chain and validates the result.
func Resolve(path string, paths Paths) (Config, error) {
	cfg, err := Load(path, Default(paths))
	if err != nil {
		return Config{}, err
	}
	cfg = FromEnv(cfg)
	cfg.AdjustStorePath(paths)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AdjustStorePath gives the JSON backend a .json file when the store path is
// still the default database path.
func (c *Config) AdjustStorePath(paths Paths) {
	if c.Store.Backend == storage.BackendJSON && c.Store.Path == paths.DBPath {
		c.Store.Path = strings.TrimSuffix(paths.DBPath, ".db") + ".json"
	}
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
