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

import "github.com/coursematch/coursematch/pkg/core"

// FeasibleAllocations returns every allocation that assigns each student
// one of their best bundles and satisfies every student's budget. The
// result order follows the Cartesian product traversal: students in
// Agents() order, bundles in their stage-1 tie-list order, last student
// varying fastest.
//
// Prices and budgets are fixed inputs; no price or budget search happens
// here, and no shared-inventory (item capacity) constraint is enforced.
func FeasibleAllocations(prices core.Prices, inst core.Instance, budgets core.Budgets) []core.Allocation {
	return feasibleProduct(inst, prices, budgets, bestBundleSets(inst, prices, budgets))
}

// FeasibleAllocationsParallel is FeasibleAllocations with the per-student
// stage-1 search fanned out across goroutines. Output is identical,
// including order.
func FeasibleAllocationsParallel(prices core.Prices, inst core.Instance, budgets core.Budgets) []core.Allocation {
	return feasibleProduct(inst, prices, budgets, bestBundleSetsParallel(inst, prices, budgets))
}

// feasibleProduct assembles allocations from the per-student best-bundle
// sets. Every (student, bundle) pair is re-checked against the student's
// budget even though stage 1 already guarantees feasibility: the filter
// makes the budget-safety invariant explicit and rejects partial
// allocations instead of returning inconsistent results.
func feasibleProduct(inst core.Instance, prices core.Prices, budgets core.Budgets, sets [][]core.Bundle) []core.Allocation {
	agents := inst.Agents()
	var result []core.Allocation
	product(sets, func(tuple []core.Bundle) {
		candidate := make(core.Allocation, len(agents))
		for i, student := range agents {
			bundle := tuple[i]
			if prices.BundleCost(bundle) <= budgets.Of(student) {
				candidate[student] = bundle
			}
		}
		if len(candidate) == len(agents) {
			result = append(result, candidate)
		}
	})
	return result
}
