package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bugra/fakedatagen/pkg/ferrors"
	"github.com/bugra/fakedatagen/pkg/prune"
)

// Config is the resolved set of values a run needs, flattened from
// spec.md §6's three file sections. The CLI-only settings (seed, markov
// switch, cache selection) are not part of Config; internal/cli keeps them.
type Config struct {
	// Output
	Output            string
	PickRate          float64
	TsvRecursion      int
	GraphvizRecursion int
	Samples           int

	// Model
	Behaviors []string
	Pruner    string

	// Generation
	Graphs    int
	GraphSize int
	Seeds     int
}

// Default returns the built-in defaults from spec.md §6's flag table.
func Default() Config {
	return Config{
		Output:            "./generatedData",
		PickRate:          1.0,
		TsvRecursion:      3,
		GraphvizRecursion: 1,
		Samples:           500,
		Pruner:            "bigDelta",
		Graphs:            1,
		GraphSize:         50,
		Seeds:             4,
	}
}

// fileConfig mirrors the TOML file's section layout one-to-one onto
// spec.md §6.2's key names.
type fileConfig struct {
	Output struct {
		File              string  `toml:"File"`
		PickRate          float64 `toml:"PickRate"`
		TsvRecursion      int     `toml:"TsvRecursion"`
		GraphvizRecursion int     `toml:"GraphvizRecursion"`
		Samples           int     `toml:"Samples"`
	} `toml:"Output"`
	Model struct {
		Behaviors []string `toml:"Behaviors"`
		Pruner    string   `toml:"Pruner"`
	} `toml:"Model"`
	Generation struct {
		Graphs    int `toml:"Graphs"`
		GraphSize int `toml:"GraphSize"`
		Seeds     int `toml:"Seeds"`
	} `toml:"Generation"`
}

// LoadFile reads path (if non-empty) and layers its values over the
// defaults. An empty path returns the defaults unchanged.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, ferrors.Wrap(ferrors.ErrCodeConfig, err, "config: parse %s", path)
	}
	cfg.applyFile(fc)
	return cfg, nil
}

// applyFile overlays any fields fc set onto c. Zero values in fc are treated
// as "not set in the file" and leave the existing default or earlier-layer
// value untouched.
func (c *Config) applyFile(fc fileConfig) {
	if fc.Output.File != "" {
		c.Output = fc.Output.File
	}
	if fc.Output.PickRate != 0 {
		c.PickRate = fc.Output.PickRate
	}
	if fc.Output.TsvRecursion != 0 {
		c.TsvRecursion = fc.Output.TsvRecursion
	}
	if fc.Output.GraphvizRecursion != 0 {
		c.GraphvizRecursion = fc.Output.GraphvizRecursion
	}
	if fc.Output.Samples != 0 {
		c.Samples = fc.Output.Samples
	}
	if len(fc.Model.Behaviors) > 0 {
		c.Behaviors = fc.Model.Behaviors
	}
	if fc.Model.Pruner != "" {
		c.Pruner = fc.Model.Pruner
	}
	if fc.Generation.Graphs != 0 {
		c.Graphs = fc.Generation.Graphs
	}
	if fc.Generation.GraphSize != 0 {
		c.GraphSize = fc.Generation.GraphSize
	}
	if fc.Generation.Seeds != 0 {
		c.Seeds = fc.Generation.Seeds
	}
}

// ResolvePruner looks up name in prune's registry case-insensitively, as
// spec.md §6.2 requires.
func ResolvePruner(name string) (prune.Pruner, error) {
	p, ok := prune.Registry()[strings.ToLower(name)]
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeConfig, "config: unknown pruner %q", name)
	}
	return p, nil
}

// Validate checks the constraints spec.md §7's "Configuration errors"
// category names: bad types are caught by TOML/pflag parsing itself, so this
// checks the remaining range and consistency rules.
func (c Config) Validate() error {
	if c.Graphs < 1 {
		return ferrors.New(ferrors.ErrCodeConfig, "config: graphs must be >= 1, got %d", c.Graphs)
	}
	if c.Seeds < 0 {
		return ferrors.New(ferrors.ErrCodeConfig, "config: seeds must be >= 0, got %d", c.Seeds)
	}
	if c.GraphSize < c.Seeds {
		return ferrors.New(ferrors.ErrCodeConfig, "config: graphSize (%d) must be >= seeds (%d)", c.GraphSize, c.Seeds)
	}
	if c.PickRate < 0 || c.PickRate > 1 {
		return ferrors.New(ferrors.ErrCodeConfig, "config: pickRate must be in [0,1], got %g", c.PickRate)
	}
	if c.Samples < 0 {
		return ferrors.New(ferrors.ErrCodeConfig, "config: samples must be >= 0, got %d", c.Samples)
	}
	if _, err := ResolvePruner(c.Pruner); err != nil {
		return err
	}
	return nil
}
