package pipeline

import (
	"bytes"
	"context"
	"math/rand"
	"time"

	"github.com/bugra/fakedatagen/pkg/behavior"
	"github.com/bugra/fakedatagen/pkg/config"
	"github.com/bugra/fakedatagen/pkg/dag"
	"github.com/bugra/fakedatagen/pkg/dot"
	"github.com/bugra/fakedatagen/pkg/ferrors"
	"github.com/bugra/fakedatagen/pkg/geometry"
	"github.com/bugra/fakedatagen/pkg/markov"
	"github.com/bugra/fakedatagen/pkg/model"
	"github.com/bugra/fakedatagen/pkg/observability"
	"github.com/bugra/fakedatagen/pkg/prune"
	"github.com/bugra/fakedatagen/pkg/tabular"
	"github.com/bugra/fakedatagen/pkg/triangulate"
)

// Point-distribution parameters original_source/src/fake_data_generator.py
// hardcodes at its call site rather than exposing on the CLI; spec.md §6's
// flag table doesn't name them either, so they stay fixed constants here
// too instead of becoming new flags.
const (
	seedRingRadius = 1.0
	radiusStep     = 0.5
	lumpage        = 2
	bonusIdentity  = 3
)

func angularSpread(nSeeds int) float64 {
	if nSeeds == 0 {
		return 1.25
	}
	return 1.25 / float64(nSeeds)
}

// Options bounds one Run call.
type Options struct {
	Config config.Config

	// Markov, when non-nil, samples the graph directly (component D)
	// instead of running geometry -> triangulate -> prune (A -> B -> C).
	Markov *markov.Config
}

// Artifacts is everything a run produces, ready to be written to
// <stem>.gv, <stem>.txt and <stem>.noisy.txt.
type Artifacts struct {
	DOT   []byte
	Clean []byte
	Noisy []byte
}

// Run builds Config.Graphs welded DAGs, assembles a model over each, and
// renders the combined DOT and TSV artifacts. rng drives every random
// decision in the run, so two calls with the same rng seed and Config
// produce identical output (spec.md §5).
func Run(ctx context.Context, opts Options, rng *rand.Rand) (*Artifacts, error) {
	models := make([]*model.Model, 0, opts.Config.Graphs)

	for i := 0; i < opts.Config.Graphs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g, err := buildGraph(ctx, opts, rng)
		if err != nil {
			return nil, err
		}
		g = dag.Relabel(g)

		observability.Pipeline().OnAssembleStart(ctx, g.NodeCount())
		start := time.Now()
		m, err := model.Assemble(g, behavior.Registry(), bonusIdentity, rng)
		observability.Pipeline().OnAssembleComplete(ctx, time.Since(start), err)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	dotBytes, err := dot.Render(models, opts.Config.GraphvizRecursion)
	if err != nil {
		return nil, err
	}

	var clean, noisy bytes.Buffer
	tCfg := tabular.Config{
		Samples:   opts.Config.Samples,
		ColRate:   opts.Config.PickRate,
		Recursion: opts.Config.TsvRecursion,
	}

	observability.Pipeline().OnEvaluateStart(ctx, tCfg.Samples)
	start := time.Now()
	err = tabular.Write(ctx, &clean, &noisy, models, tCfg, rng)
	observability.Pipeline().OnEvaluateComplete(ctx, tCfg.Samples, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return &Artifacts{DOT: dotBytes, Clean: clean.Bytes(), Noisy: noisy.Bytes()}, nil
}

// Bakeoff runs every registered pruner over one shared point distribution
// and triangulation, returning one DOT document per pruner so they can be
// compared side by side — the Go form of original_source's
// candidate_test_pruners.py smoke test (spec.md's supplemented features,
// see SPEC_FULL.md).
func Bakeoff(ctx context.Context, cfg config.Config, rng *rand.Rand) (map[string][]byte, error) {
	points, err := distributePoints(ctx, cfg, rng)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(prune.Registry()))
	for name, pruner := range prune.Registry() {
		base, err := triangulate.Build(points, cfg.Seeds)
		if err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeGeometry, err, "pipeline: triangulate for bakeoff pruner %s", name)
		}
		pruned := dag.Relabel(pruner.Prune(base, rng))

		m, err := model.Assemble(pruned, behavior.Registry(), bonusIdentity, rng)
		if err != nil {
			return nil, err
		}
		doc, err := dot.Render([]*model.Model{m}, cfg.GraphvizRecursion)
		if err != nil {
			return nil, err
		}
		out[name] = doc
	}
	return out, nil
}

func buildGraph(ctx context.Context, opts Options, rng *rand.Rand) (*dag.Graph, error) {
	if opts.Markov != nil {
		observability.Pipeline().OnGraphStart(ctx, "markov")
		start := time.Now()
		g := markov.Sample(*opts.Markov, rng)
		observability.Pipeline().OnGraphComplete(ctx, "markov", g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
		return g, nil
	}

	points, err := distributePoints(ctx, opts.Config, rng)
	if err != nil {
		return nil, err
	}

	observability.Pipeline().OnGraphStart(ctx, "triangulate")
	start := time.Now()

	g, err := triangulate.Build(points, opts.Config.Seeds)
	if err != nil {
		observability.Pipeline().OnGraphComplete(ctx, "triangulate", 0, 0, time.Since(start), err)
		return nil, ferrors.Wrap(ferrors.ErrCodeGeometry, err, "pipeline: triangulate")
	}

	pruner, err := config.ResolvePruner(opts.Config.Pruner)
	if err != nil {
		return nil, err
	}
	g = pruner.Prune(g, rng)

	observability.Pipeline().OnGraphComplete(ctx, "triangulate", g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
	return g, nil
}

func distributePoints(ctx context.Context, cfg config.Config, rng *rand.Rand) ([]geometry.Point, error) {
	geomCfg := geometry.Config{
		NPoints: cfg.GraphSize,
		NSeeds:  cfg.Seeds,
		R0:      seedRingRadius,
		Delta:   radiusStep,
		Spread:  angularSpread(cfg.Seeds),
		Lumpage: lumpage,
	}

	observability.Pipeline().OnDistributeStart(ctx, geomCfg.NPoints)
	start := time.Now()
	points, err := geometry.Distribute(geomCfg, rng)
	observability.Pipeline().OnDistributeComplete(ctx, len(points), time.Since(start), err)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeGeometry, err, "pipeline: distribute points")
	}
	return points, nil
}
