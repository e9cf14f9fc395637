package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bugra/fakedatagen/pkg/buildinfo"
	"github.com/bugra/fakedatagen/pkg/cache"
	"github.com/bugra/fakedatagen/pkg/config"
	"github.com/bugra/fakedatagen/pkg/markov"
	"github.com/bugra/fakedatagen/pkg/pipeline"
)

// flags holds every persistent flag's destination. A single struct keeps
// the wiring between pflag registration and config layering in one place.
type flags struct {
	configPath string

	graphs            int
	graphSize         int
	seeds             int
	graphvizRecursion int
	tsvRecursion      int
	pickRate          float64
	behaviors         []string
	pruner            string
	samples           int
	output            string

	verbose bool
	seed    int64
	hasSeed bool

	cacheDir      string
	cacheRedis    string
	noCache       bool
	prunerBakeoff bool

	markov           bool
	markovSourceLow  int
	markovSourceHigh int
	markovInMax      int
	markovIterations int
}

// Execute runs the fakedatagen CLI and returns an error if the run fails.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the fakedatagen CLI under ctx, so the caller's signal
// handling can cancel a run between graphs or between rows.
func ExecuteContext(ctx context.Context) error {
	var f flags

	root := &cobra.Command{
		Use:          "fakedatagen",
		Short:        "fakedatagen generates synthetic tabular datasets from a random DAG of operations",
		Long:         `fakedatagen builds a random DAG of arithmetic and stochastic operations, then emits a DOT description of the graph alongside clean and noisy TSV tables, one column per node.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if f.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &f)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	registerFlags(root, &f)
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}

func registerFlags(root *cobra.Command, f *flags) {
	fl := root.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "path to a TOML config file")
	fl.IntVarP(&f.graphs, "graphs", "g", 0, "number of graphs to weld together")
	fl.IntVarP(&f.graphSize, "graphSize", "n", 0, "number of points per graph")
	fl.IntVarP(&f.seeds, "seeds", "s", 0, "number of seed nodes per graph")
	fl.IntVarP(&f.graphvizRecursion, "graphvizRecursion", "r", 0, "name-expansion depth for DOT labels")
	fl.IntVarP(&f.tsvRecursion, "tsvRecursion", "t", 0, "name-expansion depth for TSV headers")
	fl.Float64VarP(&f.pickRate, "pickRate", "p", 0, "per-node probability of inclusion as a TSV column")
	fl.StringSliceVarP(&f.behaviors, "behaviors", "b", nil, "behavior search paths")
	fl.StringVarP(&f.pruner, "pruner", "x", "", "pruning strategy name")
	fl.IntVarP(&f.samples, "samples", "m", 0, "number of rows to generate")
	fl.StringVarP(&f.output, "output", "o", "", "output path stem")

	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	fl.Int64Var(&f.seed, "seed", 0, "deterministic random seed (omit for a non-reproducible run)")

	fl.StringVar(&f.cacheDir, "cache-dir", "", "run cache directory (file backend)")
	fl.StringVar(&f.cacheRedis, "cache-redis", "", "run cache Redis address")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable the run cache")
	fl.BoolVar(&f.prunerBakeoff, "pruner-bakeoff", false, "write one <stem>.<pruner>.gv per registered pruner instead of a single run")

	fl.BoolVar(&f.markov, "markov", false, "sample the graph with the Markov DAG sampler instead of geometry+triangulate+prune")
	fl.IntVar(&f.markovSourceLow, "markov-source-low", 2, "minimum source count for the Markov sampler")
	fl.IntVar(&f.markovSourceHigh, "markov-source-high", 4, "maximum source count for the Markov sampler")
	fl.IntVar(&f.markovInMax, "markov-in-max", 3, "maximum in-degree for the Markov sampler")
	fl.IntVar(&f.markovIterations, "markov-iterations", 0, "edit iterations for the Markov sampler (0 means graphSize^2)")
}

// resolveConfig layers CLI flags over an optional config file over the
// built-in defaults (spec.md §6), then validates the result.
func resolveConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.LoadFile(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("graphs") {
		cfg.Graphs = f.graphs
	}
	if fl.Changed("graphSize") {
		cfg.GraphSize = f.graphSize
	}
	if fl.Changed("seeds") {
		cfg.Seeds = f.seeds
	}
	if fl.Changed("graphvizRecursion") {
		cfg.GraphvizRecursion = f.graphvizRecursion
	}
	if fl.Changed("tsvRecursion") {
		cfg.TsvRecursion = f.tsvRecursion
	}
	if fl.Changed("pickRate") {
		cfg.PickRate = f.pickRate
	}
	if fl.Changed("behaviors") {
		cfg.Behaviors = f.behaviors
	}
	if fl.Changed("pruner") {
		cfg.Pruner = f.pruner
	}
	if fl.Changed("samples") {
		cfg.Samples = f.samples
	}
	if fl.Changed("output") {
		cfg.Output = f.output
	}

	f.hasSeed = fl.Changed("seed")

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func resolveCache(f *flags) cache.Cache {
	switch {
	case f.noCache:
		return cache.NewNullCache()
	case f.cacheRedis != "":
		return cache.NewRedisCache(f.cacheRedis)
	case f.cacheDir != "":
		c, err := cache.NewFileCache(f.cacheDir)
		if err != nil {
			return cache.NewNullCache()
		}
		return c
	default:
		return cache.NewNullCache()
	}
}

func runGenerate(cmd *cobra.Command, f *flags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	rngSeed := f.seed
	if !f.hasSeed {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	if f.prunerBakeoff {
		return runBakeoff(ctx, cfg, rng, cfg.Output)
	}

	var markovCfg *markov.Config
	if f.markov {
		markovCfg = &markov.Config{
			GraphSize:  cfg.GraphSize,
			SourceLow:  f.markovSourceLow,
			SourceHigh: f.markovSourceHigh,
			InMax:      f.markovInMax,
			Iterations: f.markovIterations,
		}
	}

	runCache := resolveCache(f)
	defer runCache.Close()

	var cacheKey string
	useCache := f.hasSeed && !f.noCache
	if useCache {
		cacheKey, err = cache.ConfigKey(cacheable{Config: cfg, Seed: f.seed, Markov: markovCfg})
		if err == nil {
			if hit, ok, err := loadCached(ctx, runCache, cacheKey); err == nil && ok {
				printInfo("Using cached run for seed %d", f.seed)
				return writeArtifacts(cfg.Output, hit)
			}
		}
	}

	sp := newSpinnerWithContext(ctx, "generating graphs")
	sp.Start()
	prog := newProgress(logger)

	out, err := pipeline.Run(ctx, pipeline.Options{Config: cfg, Markov: markovCfg}, rng)
	if err != nil {
		sp.StopWithError("generation failed")
		return err
	}
	sp.StopWithSuccess(fmt.Sprintf("generated %d graph(s)", cfg.Graphs))
	prog.done("run complete")

	if useCache {
		_ = storeCached(ctx, runCache, cacheKey, out)
	}

	return writeArtifacts(cfg.Output, out)
}

// cacheable is the value hashed into a run cache key: the effective config,
// the seed driving it (only ever hashed when a seed was actually given), and
// the Markov sampler config when the --markov switch selects component D.
type cacheable struct {
	Config config.Config
	Seed   int64
	Markov *markov.Config
}

func runBakeoff(ctx context.Context, cfg config.Config, rng *rand.Rand, stem string) error {
	docs, err := pipeline.Bakeoff(ctx, cfg, rng)
	if err != nil {
		return err
	}
	for name, doc := range docs {
		path := fmt.Sprintf("%s.%s.gv", stem, name)
		if err := os.WriteFile(path, doc, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printSuccess("wrote %d pruner bakeoff documents", len(docs))
	return nil
}
