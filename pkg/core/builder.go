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

	"github.com/go-logr/logr"
)

// AllocationBuilder incrementally grants items to students while tracking
// remaining item seats and remaining student capacities. It is the sink
// through which a search commits its final allocation: grants that would
// exceed a capacity are rejected rather than recorded.
type AllocationBuilder struct {
	remainingSeats map[string]int
	remainingSlots map[string]int
	bundles        Allocation
	log            logr.Logger
}

// NewAllocationBuilder returns a builder with all seats and slots available.
func NewAllocationBuilder(inst CapacitatedInstance, log logr.Logger) *AllocationBuilder {
	seats := make(map[string]int, len(inst.Items()))
	for _, item := range inst.Items() {
		seats[item] = inst.ItemCapacity(item)
	}
	slots := make(map[string]int, len(inst.Agents()))
	bundles := make(Allocation, len(inst.Agents()))
	for _, student := range inst.Agents() {
		slots[student] = inst.AgentCapacity(student)
		bundles[student] = Bundle{}
	}
	return &AllocationBuilder{
		remainingSeats: seats,
		remainingSlots: slots,
		bundles:        bundles,
		log:            log,
	}
}

// RemainingItemCapacity returns the seats still available for the item.
func (b *AllocationBuilder) RemainingItemCapacity(item string) int {
	return b.remainingSeats[item]
}

// RemainingAgentCapacity returns the bundle slots still open for the student.
func (b *AllocationBuilder) RemainingAgentCapacity(student string) int {
	return b.remainingSlots[student]
}

// Give grants one seat of the item to the student. It fails when the item
// has no seats left, the student is at capacity, or the student already
// holds the item.
func (b *AllocationBuilder) Give(student, item string) error {
	if b.remainingSeats[item] <= 0 {
		return fmt.Errorf("item %q has no remaining seats", item)
	}
	if b.remainingSlots[student] <= 0 {
		return fmt.Errorf("student %q is at capacity", student)
	}
	if b.bundles[student].Contains(item) {
		return fmt.Errorf("student %q already holds item %q", student, item)
	}
	b.remainingSeats[item]--
	b.remainingSlots[student]--
	b.bundles[student] = append(b.bundles[student], item)
	b.log.V(1).Info("granted item", "student", student, "item", item,
		"remainingSeats", b.remainingSeats[item])
	return nil
}

// GiveBundle grants to the student every item of the bundle that still has
// seats, skipping exhausted items. Skips are logged, not errors: a search
// result may oversubscribe an item, and the students processed later simply
// lose that seat.
func (b *AllocationBuilder) GiveBundle(student string, bundle Bundle) error {
	for _, item := range bundle {
		if b.remainingSeats[item] <= 0 {
			b.log.V(1).Info("skipping exhausted item", "student", student, "item", item)
			continue
		}
		if err := b.Give(student, item); err != nil {
			return fmt.Errorf("granting bundle to %q: %w", student, err)
		}
	}
	return nil
}

// Allocation returns the bundles granted so far, one entry per student. The
// returned map is shared with the builder; callers must not modify it.
func (b *AllocationBuilder) Allocation() Allocation {
	return b.bundles
}
