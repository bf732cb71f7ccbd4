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

import "fmt"

// Bundle is an ordered sequence of distinct item identifiers assigned to a
// single student. The empty bundle is valid and represents "receives
// nothing".
type Bundle []string

// Contains reports whether the bundle holds the given item.
func (b Bundle) Contains(item string) bool {
	for _, it := range b {
		if it == item {
			return true
		}
	}
	return false
}

// Equal reports whether two bundles hold the same items in the same order.
func (b Bundle) Equal(other Bundle) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the bundle.
func (b Bundle) Clone() Bundle {
	if b == nil {
		return nil
	}
	return append(Bundle{}, b...)
}

// Prices maps each item to its non-negative price.
type Prices map[string]float64

// BundleCost returns the total price of a bundle. A missing item price is
// malformed input and panics; the caller owns recovery (there is no safe
// default to substitute).
func (p Prices) BundleCost(b Bundle) float64 {
	total := 0.0
	for _, item := range b {
		price, ok := p[item]
		if !ok {
			panic(fmt.Sprintf("core: no price for item %q", item))
		}
		total += price
	}
	return total
}

// Clone returns an independent copy of the price vector.
func (p Prices) Clone() Prices {
	out := make(Prices, len(p))
	for item, price := range p {
		out[item] = price
	}
	return out
}

// Budgets maps each student to their non-negative budget.
type Budgets map[string]float64

// Of returns the budget of the given student. A missing budget is malformed
// input and panics, matching the fail-fast policy of BundleCost.
func (b Budgets) Of(student string) float64 {
	budget, ok := b[student]
	if !ok {
		panic(fmt.Sprintf("core: no budget for student %q", student))
	}
	return budget
}

// Allocation maps every student to the single bundle they receive.
// Allocations are built fresh, validated, and never mutated afterward.
type Allocation map[string]Bundle

// Equal reports whether two allocations assign the same bundle to the same
// set of students.
func (a Allocation) Equal(other Allocation) bool {
	if len(a) != len(other) {
		return false
	}
	for student, bundle := range a {
		ob, ok := other[student]
		if !ok || !bundle.Equal(ob) {
			return false
		}
	}
	return true
}
