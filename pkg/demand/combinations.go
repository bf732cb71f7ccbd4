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

// EachCandidate visits every candidate bundle of size 1..capacity drawn
// from items, by increasing size and in generation order within a size.
// This is the enumeration order that fixes the tie-list order of
// BestBundles. The bundle passed to visit is reused between calls; visit
// must copy it to retain it.
func EachCandidate(items []string, capacity int, visit func(core.Bundle)) {
	for r := 1; r <= capacity; r++ {
		combinations(items, r, func(candidate []string) {
			visit(core.Bundle(candidate))
		})
	}
}

// combinations calls visit with every size-r subset of items, in
// lexicographic index order over the items slice. The slice passed to visit
// is reused between calls; visit must copy it to retain it. r values
// outside 1..len(items) yield no subsets.
func combinations(items []string, r int, visit func([]string)) {
	n := len(items)
	if r <= 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]string, r)
	for {
		for i, j := range idx {
			buf[i] = items[j]
		}
		visit(buf)

		// Advance the rightmost index that has room to move.
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// product calls visit with one tuple at a time from the Cartesian product
// of the bundle lists, varying the last position fastest. The tuple slice
// is reused between calls; the bundles themselves are not copied. An empty
// list anywhere makes the product empty; a product of zero lists yields a
// single empty tuple.
func product(lists [][]core.Bundle, visit func([]core.Bundle)) {
	for _, list := range lists {
		if len(list) == 0 {
			return
		}
	}
	idx := make([]int, len(lists))
	tuple := make([]core.Bundle, len(lists))
	for {
		for i, list := range lists {
			tuple[i] = list[idx[i]]
		}
		visit(tuple)

		i := len(lists) - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < len(lists[i]) {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			return
		}
	}
}
