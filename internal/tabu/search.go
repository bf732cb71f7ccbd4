/*
Copyright 2026 The CourseMatch Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tabu

import (
	"context"
	"math"
	"math/rand"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/coursematch/coursematch/internal/logging"
	"github.com/coursematch/coursematch/internal/market"
	"github.com/coursematch/coursematch/pkg/config"
	"github.com/coursematch/coursematch/pkg/core"
)

// Result is the outcome of a tabu search run.
type Result struct {
	// Allocation is the best allocation found. Search leaves it as the raw
	// demand-side allocation, which may oversubscribe items; Solve replaces
	// it with the committed, seat-respecting assignment.
	Allocation core.Allocation

	// Prices is the price vector that produced the allocation.
	Prices core.Prices

	// ClearingError is the L2 market clearing error at those prices. Zero
	// means the market cleared.
	ClearingError float64

	// Iterations is the number of search iterations executed.
	Iterations int
}

// Search runs the tabu price search: draw initial prices uniformly in
// [1, 1+beta], then repeatedly move to the non-tabu neighbor minimizing the
// market clearing error, keeping the best allocation seen. It stops when
// the market clears, the neighborhood is empty, the iteration cap is
// reached, or ctx is cancelled; on cancellation the best result so far is
// returned together with the context error.
func Search(
	ctx context.Context,
	inst core.CapacitatedInstance,
	budgets core.Budgets,
	spec config.SearchSpec,
	log logr.Logger,
) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	log = log.WithValues("run", uuid.NewString())

	prices := make(core.Prices, len(inst.Items()))
	for _, item := range inst.Items() {
		prices[item] = 1 + rng.Float64()*spec.Beta
	}
	log.Info("starting tabu search",
		"students", len(inst.Agents()), "items", len(inst.Items()),
		"beta", spec.Beta, "deltas", spec.Deltas, "maxIterations", spec.MaxIterations)

	alloc, z, clearing := market.MinErrorAllocation(inst, prices,
		inducedAllocations(prices, inst, budgets, spec.Parallel))
	best := &Result{Allocation: alloc, Prices: prices.Clone(), ClearingError: clearing}

	var history History
	iterations := 0
	for clearing > 0 && iterations < spec.MaxIterations {
		if err := ctx.Err(); err != nil {
			best.Iterations = iterations
			return best, err
		}
		iterations++
		log.V(logging.DEBUG).Info("iteration",
			"iteration", iterations, "clearingError", clearing, "excessDemand", z)

		history = append(history, EquivalentPrices(inst, budgets, alloc))
		neighbors := GradientNeighbors(prices, spec.Deltas, z, history)
		neighbors = append(neighbors,
			PriceAdjustmentNeighbors(inst, history, prices, z, budgets, alloc, spec.Parallel)...)
		if len(neighbors) == 0 {
			log.Info("neighborhood exhausted", "iteration", iterations)
			break
		}

		alloc, z, clearing, prices = minErrorPrices(inst, neighbors, budgets, spec.Parallel)
		if clearing < best.ClearingError {
			best = &Result{
				Allocation:    alloc,
				Prices:        prices.Clone(),
				ClearingError: clearing,
				Iterations:    iterations,
			}
		}
	}

	best.Iterations = iterations
	log.Info("search finished",
		"iterations", iterations, "clearingError", best.ClearingError, "prices", best.Prices)
	return best, nil
}

// Solve runs Search and commits the best allocation through an
// AllocationBuilder, so the returned Result.Allocation respects item seat
// capacities: students are processed in Agents() order and items with no
// seats left are skipped.
func Solve(
	ctx context.Context,
	inst core.CapacitatedInstance,
	budgets core.Budgets,
	spec config.SearchSpec,
	log logr.Logger,
) (*Result, error) {
	result, err := Search(ctx, inst, budgets, spec, log)
	if err != nil {
		return result, err
	}

	builder := core.NewAllocationBuilder(inst, log)
	for _, student := range inst.Agents() {
		if err := builder.GiveBundle(student, result.Allocation[student]); err != nil {
			return result, err
		}
	}
	result.Allocation = builder.Allocation()
	return result, nil
}

// minErrorPrices evaluates every neighbor and returns the allocation,
// excess demand, clearing error, and price vector of the best one.
func minErrorPrices(
	inst core.CapacitatedInstance,
	neighbors []core.Prices,
	budgets core.Budgets,
	parallel bool,
) (core.Allocation, map[string]float64, float64, core.Prices) {
	minError := math.Inf(1)
	var bestAlloc core.Allocation
	var bestZ map[string]float64
	var bestPrices core.Prices
	for _, neighbor := range neighbors {
		alloc, z, clearing := market.MinErrorAllocation(inst, neighbor,
			inducedAllocations(neighbor, inst, budgets, parallel))
		if clearing < minError {
			minError = clearing
			bestAlloc = alloc
			bestZ = z
			bestPrices = neighbor
		}
	}
	return bestAlloc, bestZ, minError, bestPrices
}
