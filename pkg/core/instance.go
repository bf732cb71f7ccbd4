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

package core

import (
	"fmt"
	"sort"
)

// Instance is the read-only view of a course-allocation problem consumed by
// the best-bundle search. Implementations must be deterministic: repeated
// calls with the same arguments return the same results, and the slices
// returned by Agents and Items keep a fixed order for the lifetime of the
// instance.
type Instance interface {
	// Agents returns the student identifiers in their fixed order.
	Agents() []string

	// Items returns the item identifiers in their fixed order.
	Items() []string

	// AgentCapacity returns the maximum bundle size the student may receive.
	AgentCapacity(student string) int

	// AgentBundleValue returns the student's valuation of the bundle. It
	// must be defined for every bundle up to the student's capacity.
	AgentBundleValue(student string, bundle Bundle) float64
}

// CapacitatedInstance extends Instance with per-item seat capacities. The
// best-bundle search never consults item capacities; the market layer and
// the allocation builder do.
type CapacitatedInstance interface {
	Instance

	// ItemCapacity returns the number of seats available for the item.
	ItemCapacity(item string) int
}

// ValuationInstance is a CapacitatedInstance with additive valuations: the
// value of a bundle for a student is the sum of the student's per-item
// values. Items a student did not value contribute zero.
type ValuationInstance struct {
	agents          []string
	items           []string
	valuations      map[string]map[string]float64
	agentCapacities map[string]int
	itemCapacities  map[string]int
}

// NewValuationInstance builds an instance from per-student per-item values.
// Agent and item orderings are the sorted key orders, fixed at construction.
// Every student must have a capacity entry; items missing from
// itemCapacities default to a single seat. A nil itemCapacities map gives
// every item a single seat.
func NewValuationInstance(
	valuations map[string]map[string]float64,
	agentCapacities map[string]int,
	itemCapacities map[string]int,
) (*ValuationInstance, error) {
	if len(valuations) == 0 {
		return nil, fmt.Errorf("instance must have at least one student")
	}

	agents := make([]string, 0, len(valuations))
	itemSet := make(map[string]struct{})
	for student, values := range valuations {
		agents = append(agents, student)
		for item := range values {
			itemSet[item] = struct{}{}
		}
	}
	for item := range itemCapacities {
		itemSet[item] = struct{}{}
	}
	sort.Strings(agents)

	items := make([]string, 0, len(itemSet))
	for item := range itemSet {
		items = append(items, item)
	}
	sort.Strings(items)

	capacities := make(map[string]int, len(agents))
	for _, student := range agents {
		capacity, ok := agentCapacities[student]
		if !ok {
			return nil, fmt.Errorf("no capacity for student %q", student)
		}
		capacities[student] = capacity
	}

	seats := make(map[string]int, len(items))
	for _, item := range items {
		if count, ok := itemCapacities[item]; ok {
			seats[item] = count
		} else {
			seats[item] = 1
		}
	}

	return &ValuationInstance{
		agents:          agents,
		items:           items,
		valuations:      valuations,
		agentCapacities: capacities,
		itemCapacities:  seats,
	}, nil
}

// Agents returns the student identifiers in sorted order. The returned
// slice is shared and must not be modified.
func (v *ValuationInstance) Agents() []string { return v.agents }

// Items returns the item identifiers in sorted order. The returned slice is
// shared and must not be modified.
func (v *ValuationInstance) Items() []string { return v.items }

// AgentCapacity returns the maximum bundle size for the student, or zero
// for an unknown student.
func (v *ValuationInstance) AgentCapacity(student string) int {
	return v.agentCapacities[student]
}

// AgentBundleValue returns the sum of the student's per-item values over
// the bundle.
func (v *ValuationInstance) AgentBundleValue(student string, bundle Bundle) float64 {
	values := v.valuations[student]
	total := 0.0
	for _, item := range bundle {
		total += values[item]
	}
	return total
}

// ItemCapacity returns the number of seats for the item.
func (v *ValuationInstance) ItemCapacity(item string) int {
	return v.itemCapacities[item]
}

// AgentMaximumValue returns the value of the student's most valuable
// feasible bundle, ignoring prices: the sum of their top-capacity item
// values.
func (v *ValuationInstance) AgentMaximumValue(student string) float64 {
	values := make([]float64, 0, len(v.items))
	for _, item := range v.items {
		values = append(values, v.valuations[student][item])
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	capacity := v.agentCapacities[student]
	if capacity > len(values) {
		capacity = len(values)
	}
	total := 0.0
	for i := 0; i < capacity; i++ {
		total += values[i]
	}
	return total
}
