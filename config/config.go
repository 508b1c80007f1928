// Package config loads engine settings from YAML
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gamearea/cache"
	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/parameter"
	"github.com/lixenwraith/gamearea/projection"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Area store kinds
const (
	StoreGenerate = "generate"
	StoreSnapshot = "snapshot"
	StoreSQLite   = "sqlite"
)

// Config is the root of gamearea.yaml
type Config struct {
	Cache      CacheConfig    `yaml:"cache"`
	Viewport   ViewportConfig `yaml:"viewport"`
	Projection string         `yaml:"projection"`
	Area       AreaConfig     `yaml:"area"`
}

// CacheConfig sizes the projection cache
type CacheConfig struct {
	Enabled         bool   `yaml:"enabled"`
	MaximumSize     int    `yaml:"maximum_size"`
	ExpiryDuration  int64  `yaml:"expiry_duration"`
	ExpiryUnit      string `yaml:"expiry_unit"`
	InitialCapacity int    `yaml:"initial_capacity"`
}

// ViewportConfig is the requested visible space; levels above the engine cap are clipped
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Levels int `yaml:"levels"`
}

// AreaConfig selects where game area content comes from
// Size and Seed apply to generated areas and to new SQLite stores
type AreaConfig struct {
	Store  string `yaml:"store"`
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Levels int    `yaml:"levels"`
	Seed   int64  `yaml:"seed"`
}

// Default returns engine defaults
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Enabled:         true,
			MaximumSize:     parameter.CacheMaximumSize,
			ExpiryDuration:  1,
			ExpiryUnit:      "m",
			InitialCapacity: parameter.CacheInitialCapacity,
		},
		Viewport: ViewportConfig{
			Width:  parameter.DefaultViewportWidth,
			Height: parameter.DefaultViewportHeight,
			Levels: parameter.MaxVisibleLevels,
		},
		Projection: projection.TopDown.String(),
		Area: AreaConfig{
			Store:  StoreGenerate,
			Width:  256,
			Height: 128,
			Levels: 12,
			Seed:   1,
		},
	}
}

// Load reads path over the defaults and validates the result
// Keys missing from the file keep their default values
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to defaults when path is empty or missing
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config %s not found, using defaults", path)
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg as YAML, creating parent directories
func Save(path string, cfg Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, raw, 0o644)
}

// Validate checks value ranges and names
func (c Config) Validate() error {
	if c.Cache.MaximumSize <= 0 {
		return fmt.Errorf("%w: cache.maximum_size %d must be positive", ErrInvalid, c.Cache.MaximumSize)
	}
	if c.Cache.ExpiryDuration < 0 {
		return fmt.Errorf("%w: cache.expiry_duration %d must not be negative", ErrInvalid, c.Cache.ExpiryDuration)
	}
	if c.Cache.InitialCapacity < 0 {
		return fmt.Errorf("%w: cache.initial_capacity %d must not be negative", ErrInvalid, c.Cache.InitialCapacity)
	}
	if _, err := c.Cache.Expiry(); err != nil {
		return err
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 || c.Viewport.Levels < 0 {
		return fmt.Errorf("%w: viewport %dx%dx%d must not be negative", ErrInvalid, c.Viewport.Width, c.Viewport.Height, c.Viewport.Levels)
	}
	if _, err := projection.ParseMode(c.Projection); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return c.Area.validate()
}

func (a AreaConfig) validate() error {
	switch a.Store {
	case StoreGenerate:
	case StoreSnapshot, StoreSQLite:
		if a.Path == "" {
			return fmt.Errorf("%w: area.path required for %s store", ErrInvalid, a.Store)
		}
	default:
		return fmt.Errorf("%w: unknown area.store %q", ErrInvalid, a.Store)
	}
	if a.Width < 0 || a.Height < 0 || a.Levels < 0 {
		return fmt.Errorf("%w: area size %dx%dx%d must not be negative", ErrInvalid, a.Width, a.Height, a.Levels)
	}
	return nil
}

// Mode returns the parsed projection mode
func (c Config) Mode() (projection.Mode, error) {
	return projection.ParseMode(c.Projection)
}

// Options converts the cache section into cache.Options
func (c CacheConfig) Options() (cache.Options, error) {
	expiry, err := c.Expiry()
	if err != nil {
		return cache.Options{}, err
	}
	return cache.Options{
		MaximumSize:     c.MaximumSize,
		Expiry:          expiry,
		InitialCapacity: c.InitialCapacity,
		Name:            "projection_cache",
	}, nil
}

// Size returns the requested visible space
func (v ViewportConfig) Size() core.Size3D {
	return core.Size3D{Width: v.Width, Height: v.Height, Levels: v.Levels}
}

// Size returns the area extent
func (a AreaConfig) Size() core.Size3D {
	return core.Size3D{Width: a.Width, Height: a.Height, Levels: a.Levels}
}
