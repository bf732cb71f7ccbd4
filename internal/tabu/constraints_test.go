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
	"testing"

	"github.com/coursematch/coursematch/pkg/core"
)

// threeStudentInstance is the shared search fixture: three students, three
// items, everyone takes two.
func threeStudentInstance(t *testing.T) *core.ValuationInstance {
	t.Helper()
	inst, err := core.NewValuationInstance(
		map[string]map[string]float64{
			"Alice": {"x": 3, "y": 4, "z": 2},
			"Bob":   {"x": 4, "y": 3, "z": 2},
			"Eve":   {"x": 2, "y": 4, "z": 3},
		},
		map[string]int{"Alice": 2, "Bob": 2, "Eve": 2},
		map[string]int{"x": 1, "y": 2, "z": 2},
	)
	if err != nil {
		t.Fatalf("NewValuationInstance() error = %v", err)
	}
	return inst
}

func TestBudgetConstraintSatisfied(t *testing.T) {
	prices := core.Prices{"x": 2, "y": 3}
	tests := []struct {
		name       string
		constraint BudgetConstraint
		want       bool
	}{
		{
			name:       "Affordable bundle satisfies an affordability constraint",
			constraint: BudgetConstraint{Items: core.Bundle{"x", "y"}, Budget: 5},
			want:       true,
		},
		{
			name:       "Cost above budget violates an affordability constraint",
			constraint: BudgetConstraint{Items: core.Bundle{"x", "y"}, Budget: 4},
			want:       false,
		},
		{
			name:       "Exceeds requires strictly more than the budget",
			constraint: BudgetConstraint{Items: core.Bundle{"x", "y"}, Budget: 5, Exceeds: true},
			want:       false,
		},
		{
			name:       "Exceeds holds when the cost is above the budget",
			constraint: BudgetConstraint{Items: core.Bundle{"x", "y"}, Budget: 4, Exceeds: true},
			want:       true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.constraint.Satisfied(prices); got != tt.want {
				t.Errorf("Satisfied() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEquivalentPrices_AffordabilityOnly(t *testing.T) {
	inst := threeStudentInstance(t)
	budgets := core.Budgets{"Alice": 5, "Bob": 4, "Eve": 3}
	alloc := core.Allocation{
		"Alice": core.Bundle{"x", "y"},
		"Bob":   core.Bundle{"x", "y"},
		"Eve":   core.Bundle{"y", "z"},
	}

	constraints := EquivalentPrices(inst, budgets, alloc)

	// Every granted bundle is each student's unique favorite, so only the
	// three affordability constraints remain.
	if len(constraints) != 3 {
		t.Fatalf("EquivalentPrices() returned %d constraints, want 3: %v",
			len(constraints), constraints)
	}
	for _, c := range constraints {
		if c.Exceeds {
			t.Errorf("unexpected exceeds constraint %v", c)
		}
	}

	inRegion := core.Prices{"x": 1, "y": 2, "z": 1}
	for _, c := range constraints {
		if !c.Satisfied(inRegion) {
			t.Errorf("constraint %v not satisfied by the prices that induced the allocation", c)
		}
	}

	outOfRegion := core.Prices{"x": 5, "y": 5, "z": 5}
	satisfied := 0
	for _, c := range constraints {
		if c.Satisfied(outOfRegion) {
			satisfied++
		}
	}
	if satisfied == len(constraints) {
		t.Errorf("prices %v should leave the region, but satisfy every constraint", outOfRegion)
	}
}

func TestEquivalentPrices_ConstrainsEarlierCompetitors(t *testing.T) {
	inst, err := core.NewValuationInstance(
		map[string]map[string]float64{"s": {"x": 5, "y": 5}},
		map[string]int{"s": 1},
		nil,
	)
	if err != nil {
		t.Fatalf("NewValuationInstance() error = %v", err)
	}
	budgets := core.Budgets{"s": 1}

	// With y granted, the equally valued x enumerates first and must stay
	// unaffordable for y to be chosen again.
	constraints := EquivalentPrices(inst, budgets, core.Allocation{"s": core.Bundle{"y"}})
	want := []BudgetConstraint{
		{Items: core.Bundle{"y"}, Budget: 1},
		{Items: core.Bundle{"x"}, Budget: 1, Exceeds: true},
	}
	if len(constraints) != len(want) {
		t.Fatalf("EquivalentPrices() = %v, want %v", constraints, want)
	}
	for i := range want {
		if !constraints[i].Items.Equal(want[i].Items) ||
			constraints[i].Budget != want[i].Budget ||
			constraints[i].Exceeds != want[i].Exceeds {
			t.Errorf("constraint %d = %v, want %v", i, constraints[i], want[i])
		}
	}

	// With x granted, y sits after x at the same size and is never
	// constrained.
	constraints = EquivalentPrices(inst, budgets, core.Allocation{"s": core.Bundle{"x"}})
	if len(constraints) != 1 || constraints[0].Exceeds {
		t.Errorf("EquivalentPrices() = %v, want only the affordability constraint on x", constraints)
	}
}

func TestHistoryContains(t *testing.T) {
	history := History{
		{
			{Items: core.Bundle{"x"}, Budget: 2},
			{Items: core.Bundle{"y"}, Budget: 3, Exceeds: true},
		},
	}

	if !history.Contains(core.Prices{"x": 1, "y": 4}) {
		t.Error("prices satisfying every constraint of a region should be tabu")
	}
	if history.Contains(core.Prices{"x": 3, "y": 4}) {
		t.Error("prices violating a constraint should not be tabu")
	}
	if history.Contains(core.Prices{"x": 1, "y": 2}) {
		t.Error("prices violating the exceeds constraint should not be tabu")
	}
	if (History{}).Contains(core.Prices{"x": 1}) {
		t.Error("an empty history has no tabu prices")
	}
}
