package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appName = "tbrush"

type Config struct {
	NotesDir  string `mapstructure:"notes_dir"`
	StateDir  string `mapstructure:"state_dir"`
	Extension string `mapstructure:"extension"`
	Opener    string `mapstructure:"opener"`
	LogFile   string `mapstructure:"log_file"`
}

// Load reads $XDG_CONFIG_HOME/tbrush/config.yaml if present, then TBRUSH_*
// environment variables, then any flags in fs that name a config key
// ("dir" is accepted for notes_dir).
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("notes_dir", defaultNotesDir())
	v.SetDefault("state_dir", defaultStateDir())
	v.SetDefault("extension", ".txt")
	v.SetDefault("opener", "")
	v.SetDefault("log_file", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(xdgConfig(), appName))

	v.SetEnvPrefix(appName)
	v.AutomaticEnv()

	if fs != nil {
		if f := fs.Lookup("dir"); f != nil {
			if err := v.BindPFlag("notes_dir", f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.NotesDir = expandHome(cfg.NotesDir)
	cfg.StateDir = expandHome(cfg.StateDir)
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.StateDir, appName+".log")
	}
	cfg.LogFile = expandHome(cfg.LogFile)

	return cfg, nil
}

func xdgConfig() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

func defaultNotesDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, appName, "notes")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName, "notes")
}

func defaultStateDir() string {
	if d := os.Getenv("XDG_STATE_HOME"); d != "" {
		return filepath.Join(d, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", appName)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
