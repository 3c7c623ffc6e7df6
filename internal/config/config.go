package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"hunterline/internal/storage"
)

const (
	EnvConfigPath   = "HUNTERLINE_CONFIG"
	DefaultFileName = ".hunterline.yaml"
	DefaultAddr     = "127.0.0.1:8080"
)

// Config is read from YAML; HUNTERLINE_* environment variables override it.
type Config struct {
	Store   StoreConfig  `yaml:"store" json:"store"`
	Catalog string       `yaml:"catalog" json:"catalog,omitempty" env:"HUNTERLINE_CATALOG"`
	Seed    *int64       `yaml:"seed" json:"seed,omitempty" env:"HUNTERLINE_SEED"`
	Log     LogConfig    `yaml:"log" json:"log"`
	Server  ServerConfig `yaml:"server" json:"server"`

	// dir is where the file was read from; relative paths resolve against it.
	dir string
}

type StoreConfig struct {
	Engine string `yaml:"engine" json:"engine" env:"HUNTERLINE_STORE_ENGINE"`
	Path   string `yaml:"path" json:"path" env:"HUNTERLINE_STORE_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level" env:"HUNTERLINE_LOG_LEVEL"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr" env:"HUNTERLINE_ADDR"`
}

func (c *Config) ApplyDefaults() error {
	c.Store.Engine = strings.ToLower(strings.TrimSpace(c.Store.Engine))
	if c.Store.Engine == "" {
		c.Store.Engine = storage.EngineSQLite
	}
	if c.Store.Path == "" {
		p, err := defaultStorePath(c.Store.Engine)
		if err != nil {
			return err
		}
		c.Store.Path = p
	} else {
		c.Store.Path = c.resolve(c.Store.Path)
	}
	if c.Catalog != "" {
		c.Catalog = c.resolve(c.Catalog)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Store.Engine {
	case storage.EngineSQLite, storage.EngineJSON, storage.EngineMemory:
	default:
		return fmt.Errorf("store.engine: unknown engine %q", c.Store.Engine)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses log.level (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

func (c *Config) resolve(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	if filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

func defaultStorePath(engine string) (string, error) {
	switch engine {
	case storage.EngineJSON:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, ".hunterline.json"), nil
	case storage.EngineMemory:
		return "", nil
	default:
		return storage.ResolveDBPath()
	}
}

// ResolvePath picks the config file: the flag value, then $HUNTERLINE_CONFIG,
// then ~/.hunterline.yaml.
func ResolvePath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads the YAML file at path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		c.dir = filepath.Dir(path)
	}
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}
