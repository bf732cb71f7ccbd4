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
	"sort"

	"github.com/coursematch/coursematch/pkg/core"
	"github.com/coursematch/coursematch/pkg/demand"
)

// BudgetConstraint is a linear predicate over a price vector: the total
// price of Items compared against Budget. With Exceeds unset the constraint
// requires affordability (cost <= Budget); with Exceeds set it requires the
// opposite strict inequality.
type BudgetConstraint struct {
	Items   core.Bundle
	Budget  float64
	Exceeds bool
}

// Satisfied reports whether the price vector meets the constraint.
func (c BudgetConstraint) Satisfied(prices core.Prices) bool {
	cost := prices.BundleCost(c.Items)
	if c.Exceeds {
		return cost > c.Budget
	}
	return cost <= c.Budget
}

// EquivalentPrices returns the constraint set characterizing every price
// vector under which the given allocation would be chosen again: each
// student's granted bundle stays affordable, and every competing bundle the
// student values at least as much stays unaffordable. Bundles of the same
// size enumerated after the granted one are not constrained, as they can
// never displace it in the tie order.
func EquivalentPrices(inst core.Instance, budgets core.Budgets, alloc core.Allocation) []BudgetConstraint {
	var constraints []BudgetConstraint

	for _, student := range inst.Agents() {
		constraints = append(constraints, BudgetConstraint{
			Items:  alloc[student],
			Budget: budgets.Of(student),
		})
	}

	items := inst.Items()
	for _, student := range inst.Agents() {
		granted := alloc[student]
		grantedValue := inst.AgentBundleValue(student, granted)
		grantedSorted := sortedCopy(granted)
		budget := budgets.Of(student)
		pastGranted := false

		demand.EachCandidate(items, inst.AgentCapacity(student), func(candidate core.Bundle) {
			if sameItems(candidate, grantedSorted) {
				pastGranted = true
				return
			}
			if pastGranted && len(candidate) == len(granted) {
				return
			}
			if inst.AgentBundleValue(student, candidate) >= grantedValue {
				constraints = append(constraints, BudgetConstraint{
					Items:   candidate.Clone(),
					Budget:  budget,
					Exceeds: true,
				})
			}
		})
	}

	return constraints
}

// History holds the constraint sets of previously visited price regions.
type History []([]BudgetConstraint)

// Contains reports whether the price vector satisfies every constraint of
// any recorded region, i.e. whether it is tabu.
func (h History) Contains(prices core.Prices) bool {
	for _, set := range h {
		tabu := true
		for _, c := range set {
			if !c.Satisfied(prices) {
				tabu = false
				break
			}
		}
		if tabu {
			return true
		}
	}
	return false
}

func sortedCopy(b core.Bundle) core.Bundle {
	out := b.Clone()
	sort.Strings(out)
	return out
}

// sameItems reports whether the candidate holds exactly the items of the
// sorted reference bundle, ignoring order.
func sameItems(candidate core.Bundle, sortedRef core.Bundle) bool {
	if len(candidate) != len(sortedRef) {
		return false
	}
	return sortedCopy(candidate).Equal(sortedRef)
}
