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

package demand

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coursematch/coursematch/pkg/core"
)

// BestBundles returns every budget-feasible bundle of size 1..capacity that
// maximizes the student's valuation, ties included. Candidates are
// enumerated by increasing size and, within a size, in generation order, so
// the returned tie list has a deterministic order. If no bundle is
// affordable (capacity zero included), the result is the single-element
// list holding the empty bundle.
//
// Tie detection uses exact floating-point equality. A bundle whose total
// price equals the budget exactly is feasible.
func BestBundles(inst core.Instance, student string, prices core.Prices, budget float64) []core.Bundle {
	items := inst.Items()
	capacity := inst.AgentCapacity(student)

	var best []core.Bundle
	maxValue := math.Inf(-1)
	EachCandidate(items, capacity, func(bundle core.Bundle) {
		if prices.BundleCost(bundle) > budget {
			return
		}
		value := inst.AgentBundleValue(student, bundle)
		switch {
		case value > maxValue:
			maxValue = value
			best = append(best[:0], bundle.Clone())
		case value == maxValue:
			best = append(best, bundle.Clone())
		}
	})

	if len(best) == 0 {
		best = []core.Bundle{{}}
	}
	return best
}

// bestBundleSets runs the stage-1 search for every student, in Agents()
// order. Stage 2 consumes the full collection, so this completes for all
// students before any assembly starts.
func bestBundleSets(inst core.Instance, prices core.Prices, budgets core.Budgets) [][]core.Bundle {
	agents := inst.Agents()
	sets := make([][]core.Bundle, len(agents))
	for i, student := range agents {
		sets[i] = BestBundles(inst, student, prices, budgets.Of(student))
	}
	return sets
}

// bestBundleSetsParallel fans the stage-1 search out across students, one
// goroutine per student, bounded by GOMAXPROCS. Each result lands in its
// student's slot, so the output is identical to bestBundleSets.
func bestBundleSetsParallel(inst core.Instance, prices core.Prices, budgets core.Budgets) [][]core.Bundle {
	agents := inst.Agents()
	sets := make([][]core.Bundle, len(agents))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, student := range agents {
		i, student := i, student
		g.Go(func() error {
			sets[i] = BestBundles(inst, student, prices, budgets.Of(student))
			return nil
		})
	}
	// The workers are pure computations and never return an error.
	_ = g.Wait()
	return sets
}
