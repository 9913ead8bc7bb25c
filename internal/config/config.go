// Package config loads tinyc settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/you-not-fish/tinyc/internal/logging"
	"github.com/you-not-fish/tinyc/internal/syntax"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "TINYC_CONFIG"

// Config holds the complete tinyc configuration
type Config struct {
	Log       LogConfig      `toml:"log"`
	Parser    ParserConfig   `toml:"parser"`
	Output    OutputConfig   `toml:"output"`
	Functions map[string]int `toml:"functions"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig holds tree and diagnostic output settings
type OutputConfig struct {
	Format string `toml:"format"`
	Color  *bool  `toml:"color"`
}

// UseColor reports whether diagnostics should be styled.
func (o OutputConfig) UseColor() bool {
	return o.Color == nil || *o.Color
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Find returns the first existing config file in lookup order: explicit
// path, $TINYC_CONFIG, ./tinyc.toml, $HOME/.config/tinyc/config.toml.
// An explicit path is returned even if it does not exist so that Load can
// report it. Find returns "" when nothing is found.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}

	defaultPaths := []string{"./tinyc.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(home, ".config", "tinyc", "config.toml"))
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadDefault loads the file chosen by Find, or returns defaults if there is
// none.
func LoadDefault(explicit string) (*Config, error) {
	path := Find(explicit)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = syntax.DefaultMaxDepth
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Color == nil {
		on := true
		c.Output.Color = &on
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth: must be positive, got %d", c.Parser.MaxDepth)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	return nil
}

// Registry returns the built-in functions extended with the [functions]
// table.
func (c *Config) Registry() (*syntax.Registry, error) {
	r := syntax.NewRegistry()
	names := make([]string, 0, len(c.Functions))
	for name := range c.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Define(name, c.Functions[name]); err != nil {
			return nil, fmt.Errorf("functions: %w", err)
		}
	}
	return r, nil
}

// ParserOptions returns the parser options implied by c.
func (c *Config) ParserOptions() ([]syntax.Option, error) {
	r, err := c.Registry()
	if err != nil {
		return nil, err
	}
	return []syntax.Option{
		syntax.WithRegistry(r),
		syntax.WithMaxDepth(c.Parser.MaxDepth),
	}, nil
}
