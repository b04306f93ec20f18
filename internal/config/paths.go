package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "lanes"

type Paths struct {
	ConfigPath string
	DataDir    string
	DBPath     string
	LogPath    string
}

// DefaultPaths puts the config under the user config dir and data under
// XDG_DATA_HOME, falling back to ~/.local/share.
func DefaultPaths() (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("user config dir: %w", err)
	}
	dataBase := strings.TrimSpace(os.Getenv("XDG_DATA_HOME"))
	if dataBase == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("user home dir: %w", err)
		}
		dataBase = filepath.Join(home, ".local", "share")
	}
	return PathsFor(configDir, dataBase)
}

func PathsFor(configBase, dataBase string) (Paths, error) {
	if configBase == "" || dataBase == "" {
		return Paths{}, fmt.Errorf("empty base dirs")
	}
	dataDir := filepath.Join(dataBase, appName)
	return Paths{
		ConfigPath: filepath.Join(configBase, appName, "config.toml"),
		DataDir:    dataDir,
		DBPath:     filepath.Join(dataDir, "lanes.db"),
		LogPath:    filepath.Join(dataDir, "lanes.log"),
	}, nil
}
