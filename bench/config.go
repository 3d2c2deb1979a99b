package bench

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the workload file FindAndLoad looks for.
const FileName = "castbench.toml"

// DefaultCount is the number of objects generated per workload.
const DefaultCount = 2_000_000

// Config represents a castbench.toml workload file.
type Config struct {
	Defaults  Defaults   `toml:"defaults"`
	Workloads []Workload `toml:"workload"`

	// Dir is the directory containing the castbench.toml file (set at load time).
	Dir string `toml:"-"`
}

// Defaults apply to every workload that does not override them.
type Defaults struct {
	Count int    `toml:"count"`
	Seed  uint64 `toml:"seed"`
}

// Workload describes one generated data set and the probes run over it.
//
// Objects are drawn uniformly from the kinds From through From+Width of
// the hierarchy, inclusive.
type Workload struct {
	Name      string `toml:"name"`
	Hierarchy string `toml:"hierarchy"`
	From      int    `toml:"from"`
	Width     int    `toml:"width"`
	Shuffle   bool   `toml:"shuffle"`
	Count     int    `toml:"count"`
}

// Parse decodes a workload file and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

// LoadFile parses the workload file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	return c, nil
}

// Load parses a castbench.toml file from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// FindAndLoad walks up from startDir to find a castbench.toml file,
// then loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// DefaultConfig returns the standard workload set: mostly successful,
// mostly failing and mixed casts over each hierarchy shape.
func DefaultConfig() *Config {
	c := &Config{
		Workloads: []Workload{
			{Name: "cross-all-successful", Hierarchy: "cross", From: 7},
			{Name: "cross-mostly-successful", Hierarchy: "cross", From: 6},
			{Name: "cross-mixed", Hierarchy: "cross", From: 5, Width: 2},
			{Name: "deep-mostly-successful", Hierarchy: "deep", From: 6},
			{Name: "deep-mostly-failing", Hierarchy: "deep", From: 1},
			{Name: "deep-mixed", Hierarchy: "deep", From: 0, Width: 7},
			{Name: "shallow-mostly-successful", Hierarchy: "shallow", From: 6},
			{Name: "shallow-mostly-failing", Hierarchy: "shallow", From: 1},
			{Name: "shallow-mixed", Hierarchy: "shallow", From: 0, Width: 7},
			{Name: "balanced-mixed", Hierarchy: "balanced", From: 0, Width: 7},
		},
	}
	c.applyDefaults()
	return c
}

// Validate checks every workload against the known hierarchies.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, w := range c.Workloads {
		if w.Name == "" {
			return fmt.Errorf("workload for %q has no name", w.Hierarchy)
		}
		if seen[w.Name] {
			return fmt.Errorf("duplicate workload %q", w.Name)
		}
		seen[w.Name] = true

		shape, err := ShapeByName(w.Hierarchy)
		if err != nil {
			return fmt.Errorf("workload %q: %w", w.Name, err)
		}
		if err := shape.checkRange(w.From, w.Width); err != nil {
			return fmt.Errorf("workload %q: %w", w.Name, err)
		}
		if w.Count <= 0 {
			return fmt.Errorf("workload %q: %w: %d", w.Name, ErrInvalidCount, w.Count)
		}
	}
	return nil
}

// Workload returns the named workload.
func (c *Config) Workload(name string) (Workload, bool) {
	for _, w := range c.Workloads {
		if w.Name == name {
			return w, true
		}
	}
	return Workload{}, false
}

func (c *Config) applyDefaults() {
	if c.Defaults.Count == 0 {
		c.Defaults.Count = DefaultCount
	}
	for i := range c.Workloads {
		if c.Workloads[i].Count == 0 {
			c.Workloads[i].Count = c.Defaults.Count
		}
	}
}
