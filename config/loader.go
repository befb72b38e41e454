package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PULSE_"

// FileSystem abstracts file reading so tests can inject fixtures.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// osFS is the real file system.
type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the operating system file system.
func DefaultFS() FileSystem {
	return osFS{}
}

// Loader reads configuration from a TOML file with environment overrides.
type Loader struct {
	fs   FileSystem
	path string
}

// NewLoader creates a loader for the given path.
func NewLoader(path string) *Loader {
	return &Loader{fs: DefaultFS(), path: path}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fs FileSystem, path string) *Loader {
	return &Loader{fs: fs, path: path}
}

// Load reads the configuration. A missing file yields the defaults;
// environment overrides apply either way. The result is validated.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	data, err := l.fs.ReadFile(l.path)
	switch {
	case os.IsNotExist(err):
		// No file: defaults plus environment.
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", l.path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", l.path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads the configuration at path using the default loader.
func Load(path string) (Config, error) {
	return NewLoader(path).Load()
}

// applyEnv overlays PULSE_* environment variables onto cfg.
// Empty values are treated as set.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvPrefix + "TICK_LENGTH"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %sTICK_LENGTH: %w", EnvPrefix, err)
		}
		cfg.TickLength = Duration(d)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MOUSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %sMOUSE: %w", EnvPrefix, err)
		}
		cfg.Mouse = b
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PASTE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %sPASTE: %w", EnvPrefix, err)
		}
		cfg.Paste = b
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}
