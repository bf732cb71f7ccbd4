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

package market

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/coursematch/coursematch/pkg/core"
)

// ExcessDemand returns, for every item, the number of students holding it
// in the allocation minus the item's seat capacity.
func ExcessDemand(inst core.CapacitatedInstance, alloc core.Allocation) map[string]float64 {
	z := make(map[string]float64, len(inst.Items()))
	for _, item := range inst.Items() {
		demand := 0
		for _, bundle := range alloc {
			if bundle.Contains(item) {
				demand++
			}
		}
		z[item] = float64(demand - inst.ItemCapacity(item))
	}
	return z
}

// ClippedExcessDemand is ExcessDemand with negative entries clamped to zero
// for items priced at zero: undersubscription of a free item does not count
// against market clearing.
func ClippedExcessDemand(inst core.CapacitatedInstance, prices core.Prices, alloc core.Allocation) map[string]float64 {
	z := ExcessDemand(inst, alloc)
	for item, excess := range z {
		if prices[item] == 0 && excess < 0 {
			z[item] = 0
		}
	}
	return z
}

// ClearingError returns the L2 norm of the excess demand vector. Zero means
// the market clears. Values enter the norm in sorted key order so repeated
// calls round identically.
func ClearingError(z map[string]float64) float64 {
	keys := make([]string, 0, len(z))
	for item := range z {
		keys = append(keys, item)
	}
	sort.Strings(keys)
	values := make([]float64, 0, len(keys))
	for _, item := range keys {
		values = append(values, z[item])
	}
	return floats.Norm(values, 2)
}

// MinErrorAllocation returns, among the candidate allocations, the one with
// the smallest clipped clearing error at the given prices, together with
// its excess demand vector and error. Candidates are scanned in order and
// the first minimum wins. A nil allocation is returned when the candidate
// list is empty.
func MinErrorAllocation(
	inst core.CapacitatedInstance,
	prices core.Prices,
	allocs []core.Allocation,
) (core.Allocation, map[string]float64, float64) {
	minError := math.Inf(1)
	var bestAlloc core.Allocation
	var bestZ map[string]float64
	for _, alloc := range allocs {
		z := ClippedExcessDemand(inst, prices, alloc)
		if err := ClearingError(z); err < minError {
			minError = err
			bestZ = z
			bestAlloc = alloc
		}
	}
	return bestAlloc, bestZ, minError
}
