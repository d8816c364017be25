// Copyright 2014 pendo.io
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexcompare

import (
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Comparator binds a fixed list of selectors once so the same lexicographic
// ordering can be applied to many pairs of records. A Comparator never
// changes after it is built and may be shared between goroutines as long
// as its selectors' functions may.
type Comparator[T any] struct {
	selectors []Selector[T]
}

// New returns a Comparator ordering records by first, then by each of rest
// in turn.
func New[T any](first Selector[T], rest ...Selector[T]) *Comparator[T] {
	selectors := make([]Selector[T], 0, len(rest)+1)
	selectors = append(selectors, first)
	selectors = append(selectors, rest...)

	return &Comparator[T]{selectors: selectors}
}

// Less returns true if a sorts strictly before b.
func (c *Comparator[T]) Less(a, b T) bool {
	return Compare(a, b, c.selectors...) == Less
}

// Compare orders a against b.
func (c *Comparator[T]) Compare(a, b T) Ordering {
	return Compare(a, b, c.selectors...)
}

// Cmp is Compare as a plain int, for APIs following the cmp.Compare
// convention.
func (c *Comparator[T]) Cmp(a, b T) int {
	return int(Compare(a, b, c.selectors...))
}

// Equivalent returns true if neither record sorts before the other.
func (c *Comparator[T]) Equivalent(a, b T) bool {
	return Compare(a, b, c.selectors...) == Equivalent
}

// Selectors returns a copy of the selectors in priority order.
func (c *Comparator[T]) Selectors() []Selector[T] {
	return append([]Selector[T](nil), c.selectors...)
}

// Then returns a new Comparator which falls back to more when c finds two
// records Equivalent. c itself is unchanged.
func (c *Comparator[T]) Then(more ...Selector[T]) *Comparator[T] {
	selectors := make([]Selector[T], 0, len(c.selectors)+len(more))
	selectors = append(selectors, c.selectors...)
	selectors = append(selectors, more...)

	return &Comparator[T]{selectors: selectors}
}

// Reverse returns a Comparator giving the opposite order; every level is
// reversed, so Equivalent records stay Equivalent.
func (c *Comparator[T]) Reverse() *Comparator[T] {
	selectors := make([]Selector[T], len(c.selectors))
	for i, sel := range c.selectors {
		selectors[i] = Desc(sel)
	}

	return &Comparator[T]{selectors: selectors}
}

func (c *Comparator[T]) String() string {
	names := make([]string, len(c.selectors))
	for i, sel := range c.selectors {
		names[i] = sel.String()
	}

	return "lexcompare.Comparator[" + strings.Join(names, ", ") + "]"
}

type recordList[T any] struct {
	data    []T
	compare *Comparator[T]
}

func (a recordList[T]) Len() int           { return len(a.data) }
func (a recordList[T]) Swap(i, j int)      { a.data[i], a.data[j] = a.data[j], a.data[i] }
func (a recordList[T]) Less(i, j int) bool { return a.compare.Less(a.data[i], a.data[j]) }

// Sort sorts data in place. The sort is not guaranteed to be stable.
func (c *Comparator[T]) Sort(data []T) {
	sort.Sort(recordList[T]{data, c})
}

// SortStable sorts data in place, keeping Equivalent records in their
// original order.
func (c *Comparator[T]) SortStable(data []T) {
	sort.Stable(recordList[T]{data, c})
}

// IsSorted reports whether data is in ascending order.
func (c *Comparator[T]) IsSorted(data []T) bool {
	return slices.IsSortedFunc(data, c.Cmp)
}

// BinarySearch looks for target in sorted, which must be in ascending
// order. It returns the position of the first record not less than target
// and whether that record is Equivalent to target.
func (c *Comparator[T]) BinarySearch(sorted []T, target T) (int, bool) {
	return slices.BinarySearchFunc(sorted, target, c.Cmp)
}

// Min returns the first of the smallest records in data, or false if data
// is empty.
func (c *Comparator[T]) Min(data []T) (smallest T, ok bool) {
	if len(data) == 0 {
		return smallest, false
	}

	smallest = data[0]
	for _, item := range data[1:] {
		if c.Less(item, smallest) {
			smallest = item
		}
	}

	return smallest, true
}

// Max returns the first of the largest records in data, or false if data
// is empty.
func (c *Comparator[T]) Max(data []T) (largest T, ok bool) {
	if len(data) == 0 {
		return largest, false
	}

	largest = data[0]
	for _, item := range data[1:] {
		if c.Less(largest, item) {
			largest = item
		}
	}

	return largest, true
}
