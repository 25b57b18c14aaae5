// Package config loads brewalias settings from defaults, an optional YAML
// file and environment variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvAliasesDir = "BREWALIAS_DIR"
	EnvBinDir     = "BREWALIAS_BIN_DIR"
	EnvHost       = "BREWALIAS_HOST"
	EnvEditor     = "BREWALIAS_EDITOR"
)

const (
	appDirName         = "brewalias"
	configFileName     = "config.yaml"
	defaultAliasesDir  = ".brew-aliases"
	defaultHostCommand = "brew"
)

// Config holds every user-tunable setting.
type Config struct {
	AliasesDir   string   `yaml:"aliases_dir"`
	BinDir       string   `yaml:"bin_dir"`
	Host         string   `yaml:"host"`
	Editor       string   `yaml:"editor"`
	Reserved     []string `yaml:"reserved"`
	ReservedFile string   `yaml:"reserved_file"`
	HistoryFile  string   `yaml:"history_file"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		AliasesDir: filepath.Join(xdg.Home, defaultAliasesDir),
		BinDir:     xdg.BinHome,
		Host:       defaultHostCommand,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/brewalias/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName)
}

/*
Load builds the configuration. An empty path means DefaultPath, which may
be absent. An explicit path that does not exist is an error.
*/
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return Config{}, err
	}
	cfg.loadFromEnv()

	cfg.AliasesDir = expandHome(cfg.AliasesDir)
	cfg.BinDir = expandHome(cfg.BinDir)
	cfg.ReservedFile = expandHome(cfg.ReservedFile)
	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	if cfg.Host == "" {
		cfg.Host = defaultHostCommand
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadFromEnv() {
	overrides := map[string]*string{
		EnvAliasesDir: &c.AliasesDir,
		EnvBinDir:     &c.BinDir,
		EnvHost:       &c.Host,
		EnvEditor:     &c.Editor,
	}
	for key, field := range overrides {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			*field = value
		}
	}
}

// Validate reports settings that would make the store unusable.
func (c Config) Validate() error {
	if c.AliasesDir == "" {
		return fmt.Errorf("aliases_dir cannot be empty")
	}
	if c.BinDir == "" {
		return fmt.Errorf("bin_dir cannot be empty")
	}
	if strings.ContainsAny(c.Host, " \t/") {
		return fmt.Errorf("invalid host command %q", c.Host)
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(xdg.Home, rest)
	}
	return path
}
