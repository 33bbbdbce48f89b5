package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const appDirName = "worklog"

type Config struct {
	DataDir       string
	LogPath       string
	DBPath        string
	ExportersPath string
	DefaultPeriod string
}

// fileConfig is the optional config.yaml stored in the data directory.
type fileConfig struct {
	DefaultPeriod string `yaml:"default_period"`
}

// New resolves the per-user data directory and reads the optional
// config.yaml inside it. An explicit override wins over the
// WORKLOG_DATA_DIR environment variable, which wins over the
// platform-standard user data location.
func New(override string) (Config, error) {
	dir := override
	if dir == "" {
		dir = os.Getenv("WORKLOG_DATA_DIR")
	}
	if dir == "" {
		base, err := userDataDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		dir = filepath.Join(base, appDirName)
	}

	cfg := Config{
		DataDir:       dir,
		LogPath:       filepath.Join(dir, "log.json"),
		DBPath:        filepath.Join(dir, "worklog.db"),
		ExportersPath: filepath.Join(dir, "exporters.yaml"),
		DefaultPeriod: "daily",
	}

	payload, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if fc.DefaultPeriod != "" {
		cfg.DefaultPeriod = fc.DefaultPeriod
	}
	return cfg, nil
}

func userDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return xdg, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
	return os.UserConfigDir()
}
