// Package config resolves where the team table, weight tables and per-game
// stat tables live. Everything is resolved once at startup; the pipeline only
// ever sees absolute paths.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pable/go-fb-metrics/internal/category"
)

// CategoryConfig overrides one category's defaults. Empty fields keep them.
// File is relative to <data>/<game>/.
type CategoryConfig struct {
	Weights string `json:"weights,omitempty"`
	File    string `json:"file,omitempty"`
	Top     int    `json:"top,omitempty"`
}

// Config is the file layout of one run.
type Config struct {
	Root       string                    `json:"root,omitempty"`
	TeamStats  string                    `json:"team_stats,omitempty"`
	DataDir    string                    `json:"data_dir,omitempty"`
	Categories map[string]CategoryConfig `json:"categories,omitempty"`
}

// Default returns the layout produced by the FBref export scripts, rooted at root.
func Default(root string) Config {
	c := Config{
		Root:       root,
		TeamStats:  "team_stat.csv",
		DataDir:    "data",
		Categories: make(map[string]CategoryConfig),
	}
	for _, cat := range category.All() {
		c.Categories[cat.Name()] = CategoryConfig{
			Weights: cat.WeightsFile(),
			File:    cat.StatsFile(),
			Top:     cat.Top(),
		}
	}
	return c
}

// LoadFile overlays the JSON config at path onto c. Category keys may be any
// name Lookup accepts. A relative root is taken from the config file's own
// directory. A category file is a bare name looked up inside each game
// directory, so it may not be absolute.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var over Config
	if err := json.Unmarshal(data, &over); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if over.Root != "" {
		c.Root = under(filepath.Dir(path), over.Root)
	}
	if over.TeamStats != "" {
		c.TeamStats = over.TeamStats
	}
	if over.DataDir != "" {
		c.DataDir = over.DataDir
	}
	for name, cc := range over.Categories {
		cat, err := category.Lookup(name)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		cur := c.Categories[cat.Name()]
		if cc.Weights != "" {
			cur.Weights = cc.Weights
		}
		if filepath.IsAbs(cc.File) {
			return fmt.Errorf("config %s: %s file %q must be relative to the game directory", path, cat.Name(), cc.File)
		}
		if cc.File != "" {
			cur.File = cc.File
		}
		if cc.Top != 0 {
			cur.Top = cc.Top
		}
		c.Categories[cat.Name()] = cur
	}
	return nil
}

// Resolve makes every path absolute against Root.
func (c Config) Resolve() (Config, error) {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return c, fmt.Errorf("resolve root %q: %w", c.Root, err)
	}
	out := Config{
		Root:       root,
		TeamStats:  under(root, c.TeamStats),
		DataDir:    under(root, c.DataDir),
		Categories: make(map[string]CategoryConfig, len(c.Categories)),
	}
	for name, cc := range c.Categories {
		cc.Weights = under(root, cc.Weights)
		out.Categories[name] = cc
	}
	return out, nil
}

func under(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// For returns the settings of cat, falling back to its defaults.
func (c Config) For(cat category.Category) CategoryConfig {
	cc := c.Categories[cat.Name()]
	if cc.Weights == "" {
		cc.Weights = under(c.Root, cat.WeightsFile())
	}
	if cc.File == "" {
		cc.File = cat.StatsFile()
	}
	if cc.Top == 0 {
		cc.Top = cat.Top()
	}
	return cc
}

// GamePath is where game's table for cat lives: <data>/<game>/<file>.
func (c Config) GamePath(cat category.Category, game string) string {
	return filepath.Join(c.DataDir, game, c.For(cat).File)
}
