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

package market_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/coursematch/coursematch/internal/market"
	"github.com/coursematch/coursematch/pkg/core"
)

var _ = Describe("Excess demand", func() {
	var inst *core.ValuationInstance

	BeforeEach(func() {
		var err error
		inst, err = core.NewValuationInstance(
			map[string]map[string]float64{
				"Alice": {"x": 3, "y": 4, "z": 2},
				"Bob":   {"x": 4, "y": 3, "z": 2},
				"Eve":   {"x": 2, "y": 4, "z": 3},
			},
			map[string]int{"Alice": 2, "Bob": 2, "Eve": 2},
			map[string]int{"x": 1, "y": 2, "z": 2},
		)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("ExcessDemand", func() {
		It("subtracts seat capacity from demand per item", func() {
			alloc := core.Allocation{
				"Alice": core.Bundle{"x", "y"},
				"Bob":   core.Bundle{"x", "y"},
				"Eve":   core.Bundle{"y", "z"},
			}
			z := market.ExcessDemand(inst, alloc)
			Expect(z).To(Equal(map[string]float64{"x": 1, "y": 1, "z": -1}))
		})

		It("counts undemanded items as fully undersubscribed", func() {
			alloc := core.Allocation{
				"Alice": core.Bundle{},
				"Bob":   core.Bundle{},
				"Eve":   core.Bundle{},
			}
			z := market.ExcessDemand(inst, alloc)
			Expect(z).To(Equal(map[string]float64{"x": -1, "y": -2, "z": -2}))
		})
	})

	Describe("ClippedExcessDemand", func() {
		It("clamps undersubscription only at zero-priced items", func() {
			alloc := core.Allocation{
				"Alice": core.Bundle{"y"},
				"Bob":   core.Bundle{"y"},
				"Eve":   core.Bundle{},
			}
			prices := core.Prices{"x": 1, "y": 2, "z": 0}
			z := market.ClippedExcessDemand(inst, prices, alloc)
			Expect(z).To(Equal(map[string]float64{"x": -1, "y": 0, "z": 0}))
		})

		It("keeps oversubscription even at zero-priced items", func() {
			alloc := core.Allocation{
				"Alice": core.Bundle{"x"},
				"Bob":   core.Bundle{"x"},
				"Eve":   core.Bundle{"x"},
			}
			prices := core.Prices{"x": 0, "y": 0, "z": 0}
			z := market.ClippedExcessDemand(inst, prices, alloc)
			Expect(z["x"]).To(BeNumerically("==", 2))
		})
	})

	Describe("ClearingError", func() {
		It("is the L2 norm of the excess vector", func() {
			Expect(market.ClearingError(map[string]float64{"a": 3, "b": 4})).
				To(BeNumerically("==", 5))
		})

		It("is zero for a cleared market", func() {
			Expect(market.ClearingError(map[string]float64{"a": 0, "b": 0})).To(BeZero())
			Expect(market.ClearingError(nil)).To(BeZero())
		})
	})

	Describe("MinErrorAllocation", func() {
		prices := core.Prices{"x": 1, "y": 2, "z": 1}

		It("picks the allocation with the smallest clipped error", func() {
			worse := core.Allocation{
				"Alice": core.Bundle{"x", "y"},
				"Bob":   core.Bundle{"x", "y"},
				"Eve":   core.Bundle{"y", "z"},
			}
			better := core.Allocation{
				"Alice": core.Bundle{"x", "y"},
				"Bob":   core.Bundle{"x", "z"},
				"Eve":   core.Bundle{"y", "z"},
			}
			alloc, z, clearing := market.MinErrorAllocation(inst, prices,
				[]core.Allocation{worse, better})
			Expect(alloc.Equal(better)).To(BeTrue(), "got %v", alloc)
			Expect(z).To(Equal(map[string]float64{"x": 1, "y": 0, "z": 0}))
			Expect(clearing).To(BeNumerically("==", 1))
		})

		It("keeps the first allocation on ties", func() {
			first := core.Allocation{
				"Alice": core.Bundle{"x", "y"},
				"Bob":   core.Bundle{"x", "z"},
				"Eve":   core.Bundle{"y", "z"},
			}
			second := core.Allocation{
				"Alice": core.Bundle{"x", "z"},
				"Bob":   core.Bundle{"x", "y"},
				"Eve":   core.Bundle{"y", "z"},
			}
			alloc, _, _ := market.MinErrorAllocation(inst, prices,
				[]core.Allocation{first, second})
			Expect(alloc.Equal(first)).To(BeTrue(), "got %v", alloc)
		})

		It("returns no allocation for an empty candidate list", func() {
			alloc, z, clearing := market.MinErrorAllocation(inst, prices, nil)
			Expect(alloc).To(BeNil())
			Expect(z).To(BeNil())
			Expect(math.IsInf(clearing, 1)).To(BeTrue())
		})
	})
})
