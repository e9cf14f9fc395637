package model

import (
	"math/rand"

	"github.com/bugra/fakedatagen/pkg/behavior"
	"github.com/bugra/fakedatagen/pkg/dag"
	"github.com/bugra/fakedatagen/pkg/dag/transform"
	"github.com/bugra/fakedatagen/pkg/ferrors"
)

// nonNoiseCandidate pairs a non-noise factory with the arity range its
// probed instance reported, so Assemble can filter the catalogue by a
// node's in-degree without re-instantiating every factory per node.
type nonNoiseCandidate struct {
	min, max int
	factory  behavior.Factory
}

// Assemble binds a behavior.Factory from catalogue to every node of g,
// walking g in topological order so a node's parents always exist before
// it does. bonusIdentity fresh identity-behavior instances are added to
// the noise pool, biasing columns toward noise-free output (spec.md
// §4.6).
func Assemble(g *dag.Graph, catalogue []behavior.Factory, bonusIdentity int, rng *rand.Rand) (*Model, error) {
	nonNoise, noise := categorize(catalogue, bonusIdentity)

	order := transform.TopologicalOrder(g)
	byID := make(map[string]*Node, len(order))

	model := &Model{}

	for _, id := range order {
		parentIDs := g.Parents(id)
		inputs := make([]*Node, len(parentIDs))
		for i, pid := range parentIDs {
			inputs[i] = byID[pid]
		}

		arity := len(parentIDs)
		candidates := filterByArity(nonNoise, arity)
		if len(candidates) == 0 {
			return nil, ferrors.New(ferrors.ErrCodeAssembly, "model: no behavior of arity %d for node %s", arity, id)
		}

		boundBehavior := candidates[rng.Intn(len(candidates))](rng)
		boundNoise := noise[rng.Intn(len(noise))](rng)

		node := &Node{
			ID:       id,
			Inputs:   inputs,
			Behavior: boundBehavior,
			Noise:    boundNoise,
			cache:    make(map[any]float64),
		}

		byID[id] = node
		model.Nodes = append(model.Nodes, node)
		if arity == 0 {
			model.Sources = append(model.Sources, node)
		}
	}

	return model, nil
}

// categorize probes every factory once with a disposable, non-shared rand
// source purely to read its static (Name/MinArity/MaxArity/IsNoise)
// metadata — this never touches the run's shared rng, so probing has no
// effect on pipeline determinism. The instances minted here are discarded;
// real node bindings always mint a fresh instance from the shared rng.
func categorize(catalogue []behavior.Factory, bonusIdentity int) ([]nonNoiseCandidate, []behavior.Factory) {
	probe := rand.New(rand.NewSource(0))

	var nonNoise []nonNoiseCandidate
	var noise []behavior.Factory

	for _, f := range catalogue {
		b := f(probe)
		if b.IsNoise() {
			noise = append(noise, f)
			continue
		}
		nonNoise = append(nonNoise, nonNoiseCandidate{min: b.MinArity(), max: b.MaxArity(), factory: f})
	}

	for i := 0; i < bonusIdentity; i++ {
		noise = append(noise, behavior.NewIdentity)
	}

	return nonNoise, noise
}

func filterByArity(candidates []nonNoiseCandidate, arity int) []behavior.Factory {
	var out []behavior.Factory
	for _, c := range candidates {
		if arity < c.min {
			continue
		}
		if c.max != behavior.Unbounded && arity > c.max {
			continue
		}
		out = append(out, c.factory)
	}
	return out
}
