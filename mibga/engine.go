package mibga

import (
	"math"
	"math/rand"
	"time"

	"github.com/arkforge/mibga/diversity"
	"github.com/arkforge/mibga/graph"
	"github.com/arkforge/mibga/pathsolution"
	"github.com/arkforge/mibga/randomwalk"
)

// Run searches g for K diverse near-shortest simple walks from s to t.
//
// It first probes g's own shortest-path distance; if s cannot reach t, Run
// returns ErrUnreachableTarget immediately without attempting the genetic
// search. Otherwise it seeds an initial population of valid random walks,
// partitions them into islands, and repeats migrate/mate/select generations
// until cfg.Timeout elapses, finally handing every valid path discovered
// along the way to diversity.FindKMDNSP.
func Run(g graph.GraphService, s, t graph.Node, k int, epsilon float64, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	shortestLen := g.ShortestPathLength(s, t)
	logf("Shortest Path Length: %v", shortestLen)
	if isUnreachable(shortestLen) {
		logf("Target unreachable.")
		return Result{ShortestPathLength: shortestLen}, ErrUnreachableTarget
	}

	masterRNG := rngFromSeed(cfg.Seed)
	registry := newPopulationRegistry()

	initial, err := initializePopulation(g, s, t, cfg, masterRNG, registry, logf)
	if err != nil {
		return Result{ShortestPathLength: shortestLen}, err
	}

	islands := formIslands(initial, cfg, masterRNG)
	logf("Formed %d islands.", len(islands))

	deadline := time.Now().Add(cfg.Timeout)
	generation := 0

	for time.Now().Before(deadline) {
		migrate(islands, masterRNG)

		offspringByIsland := make([][]*pathsolution.PathSolution, len(islands))
		for i, isl := range islands {
			islandRNG := deriveRNG(masterRNG, uint64(i))
			offspring := isl.GenerateOffspring(cfg.MutationProb, islandRNG, g)

			valid := make([]*pathsolution.PathSolution, 0, len(offspring))
			for _, child := range offspring {
				_ = child.Evaluate(g)
				if child.IsValid() {
					registry.add(child)
					valid = append(valid, child)
				}
			}
			offspringByIsland[i] = valid
		}

		islands = selectAvgIslandFit(islands, offspringByIsland, cfg, masterRNG)

		generation++
		if generation%10 == 0 {
			logf("Gen %d | Unique Paths: %d | Islands: %d", generation, registry.size(), len(islands))
		}
	}

	logf("Analyzing K-Most Diverse...")
	finalPaths, err := diversity.FindKMDNSP(registry.all(), k, shortestLen, epsilon, g)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Paths:              toPathResults(finalPaths),
		Generations:        generation,
		IslandCount:        len(islands),
		ShortestPathLength: shortestLen,
		UniquePathCount:    registry.size(),
	}, nil
}

func isUnreachable(length float64) bool {
	return math.IsInf(length, 1)
}

func toPathResults(paths []*pathsolution.PathSolution) []PathResult {
	out := make([]PathResult, len(paths))
	for i, p := range paths {
		nodes := make([]int64, len(p.Nodes))
		for j, n := range p.Nodes {
			nodes[j] = int64(n)
		}
		out[i] = PathResult{Nodes: nodes, Length: p.Length, Fitness: p.Fitness}
	}

	return out
}

// initializePopulation repeatedly draws random S→T walks until cfg.PopSize
// distinct valid paths are registered or cfg.walkBudget() is exhausted.
func initializePopulation(g graph.GraphService, s, t graph.Node, cfg Config, rng *rand.Rand, registry *populationRegistry, logf func(string, ...any)) ([]*pathsolution.PathSolution, error) {
	logf("Initializing population (%d)...", cfg.PopSize)

	maxAttempts := cfg.walkBudget()
	population := make([]*pathsolution.PathSolution, 0, cfg.PopSize)

	for attempts := 0; len(population) < cfg.PopSize && attempts < maxAttempts; attempts++ {
		p, err := randomwalk.CreateRandomPath(s, t, g, rng)
		if err != nil {
			continue
		}

		_ = p.Evaluate(g)
		if !p.IsValid() {
			continue
		}

		if registry.add(p) {
			population = append(population, p)
		}
	}

	if len(population) == 0 {
		logf("[CRITICAL] Could not create any valid path. Start/Target might be disconnected or too far for random walk.")
		return nil, ErrEmptyInitialPopulation
	}

	return population, nil
}
