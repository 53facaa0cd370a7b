// Package config loads cloudarch settings from a TOML file.
//
// Every key is optional; missing keys keep their defaults and command-line
// flags override whatever the file sets.
//
//	output_dir = "diagrams"
//	formats    = ["png", "svg"]
//	manifest   = true
//
//	[render]
//	rankdir       = "LR"
//	edge_color    = "darkgreen"
//	cluster_label = "AWS Cloud"
//	png_dpi       = 150
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cloudarch/pkg/errors"
)

const (
	appName  = "cloudarch"
	fileName = "config.toml"

	maxDPI = 1200
)

var rankDirs = []string{"TB", "LR", "BT", "RL"}

// Config is the decoded configuration file.
type Config struct {
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`
	Manifest  bool     `toml:"manifest"`
	Render    Render   `toml:"render"`
}

// Render holds diagram appearance settings.
type Render struct {
	RankDir      string `toml:"rankdir"`
	EdgeColor    string `toml:"edge_color"`
	ClusterLabel string `toml:"cluster_label"`
	PNGDPI       int    `toml:"png_dpi"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		OutputDir: ".",
		Formats:   []string{"png"},
		Render: Render{
			RankDir:      "TB",
			EdgeColor:    "darkgreen",
			ClusterLabel: "AWS Cloud",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/cloudarch/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path over [Default].
//
// An empty path loads [DefaultPath] if that file exists and otherwise
// returns the defaults. An explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		if _, err := os.Stat(p); err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file not found")
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Render.RankDir = strings.ToUpper(strings.TrimSpace(c.Render.RankDir))
	for i, f := range c.Formats {
		c.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	def := Default()
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if len(c.Formats) == 0 {
		c.Formats = def.Formats
	}
	if c.Render.RankDir == "" {
		c.Render.RankDir = def.Render.RankDir
	}
	if c.Render.EdgeColor == "" {
		c.Render.EdgeColor = def.Render.EdgeColor
	}
	if c.Render.ClusterLabel == "" {
		c.Render.ClusterLabel = def.Render.ClusterLabel
	}
}

// Validate checks render settings. Output formats are checked by the
// pipeline, which owns the list of renderers.
func (c Config) Validate() error {
	if !slices.Contains(rankDirs, c.Render.RankDir) {
		return errors.New(errors.ErrCodeInvalidConfig, "render.rankdir must be one of %s, got %q",
			strings.Join(rankDirs, ", "), c.Render.RankDir)
	}
	if c.Render.PNGDPI < 0 || c.Render.PNGDPI > maxDPI {
		return errors.New(errors.ErrCodeInvalidConfig, "render.png_dpi must be between 0 and %d, got %d",
			maxDPI, c.Render.PNGDPI)
	}
	if strings.ContainsAny(c.Render.EdgeColor, "\"\n") {
		return errors.New(errors.ErrCodeInvalidConfig, "render.edge_color contains invalid characters")
	}
	return nil
}
