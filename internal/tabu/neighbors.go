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
	"math"

	"github.com/coursematch/coursematch/pkg/core"
	"github.com/coursematch/coursematch/pkg/demand"
)

const (
	// maxAdjustmentNeighbors caps the individual price-adjustment
	// neighborhood per iteration.
	maxAdjustmentNeighbors = 35

	// priceStepTries is how many upward price steps are probed per
	// oversubscribed item.
	priceStepTries = 10
)

// priceStep is the upward step applied to an oversubscribed item's price.
var priceStep = math.Sqrt(0.5)

// GradientNeighbors returns the price vectors p + delta*z for each step
// size, clamped at zero per item, excluding vectors already recorded as
// tabu. Items absent from z are left unchanged.
func GradientNeighbors(prices core.Prices, deltas []float64, z map[string]float64, history History) []core.Prices {
	var neighbors []core.Prices
	for _, delta := range deltas {
		updated := make(core.Prices, len(prices))
		for item, price := range prices {
			updated[item] = math.Max(0, price+delta*z[item])
		}
		if !history.Contains(updated) {
			neighbors = append(neighbors, updated)
		}
	}
	return neighbors
}

// PriceAdjustmentNeighbors returns per-item price adjustments. For an
// oversubscribed item the price is walked upward in fixed steps, keeping
// each non-tabu vector whose induced demand moves exactly one student off
// that item. For an undersubscribed item the price is dropped to zero.
// The neighborhood is capped at maxAdjustmentNeighbors.
func PriceAdjustmentNeighbors(
	inst core.Instance,
	history History,
	prices core.Prices,
	z map[string]float64,
	budgets core.Budgets,
	alloc core.Allocation,
	parallel bool,
) []core.Prices {
	var neighbors []core.Prices
	for _, item := range inst.Items() {
		if len(neighbors) >= maxAdjustmentNeighbors {
			break
		}
		excess := z[item]
		if excess == 0 {
			continue
		}

		if excess > 0 {
			updated := prices.Clone()
			for try := 0; try < priceStepTries; try++ {
				updated[item] += priceStep
				if history.Contains(updated) {
					continue
				}
				for _, induced := range inducedAllocations(updated, inst, budgets, parallel) {
					if differsInOneStudent(alloc, induced, item) {
						neighbors = append(neighbors, updated.Clone())
					}
				}
			}
			continue
		}

		updated := prices.Clone()
		updated[item] = 0
		if !history.Contains(updated) {
			neighbors = append(neighbors, updated)
		}
	}
	return neighbors
}

// differsInOneStudent reports whether the two allocations differ for
// exactly one student, and that student held the item before and does not
// hold it after.
func differsInOneStudent(original, updated core.Allocation, item string) bool {
	diffs := 0
	var changed string
	for student, bundle := range original {
		after, ok := updated[student]
		if !ok || bundle.Equal(after) {
			continue
		}
		changed = student
		diffs++
		if diffs > 1 {
			return false
		}
	}
	return diffs == 1 &&
		original[changed].Contains(item) &&
		!updated[changed].Contains(item)
}

// inducedAllocations evaluates the demand core at the given prices.
func inducedAllocations(prices core.Prices, inst core.Instance, budgets core.Budgets, parallel bool) []core.Allocation {
	if parallel {
		return demand.FeasibleAllocationsParallel(prices, inst, budgets)
	}
	return demand.FeasibleAllocations(prices, inst, budgets)
}
