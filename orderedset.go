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
	"github.com/google/btree"
)

// The degree of the btree backing an OrderedSet.
const orderedSetBtreeDegree = 32

// OrderedSet keeps records sorted by a Comparator. Records which are
// Equivalent under the comparator are the same element, so inserting one
// replaces the other. Given n elements it supports O(log n) insertion,
// removal and lookup, and O(m + log n) iteration over m elements in a
// range. An OrderedSet is not safe for concurrent mutation.
type OrderedSet[T any] struct {
	t       *btree.BTreeG[T]
	compare *Comparator[T]
}

func NewOrderedSet[T any](cmp *Comparator[T]) *OrderedSet[T] {
	return &OrderedSet[T]{
		t:       btree.NewG[T](orderedSetBtreeDegree, cmp.Less),
		compare: cmp,
	}
}

// Comparator returns the ordering of the set.
func (s *OrderedSet[T]) Comparator() *Comparator[T] { return s.compare }

// Insert adds v, returning the Equivalent element it replaced if there was
// one.
func (s *OrderedSet[T]) Insert(v T) (replaced T, ok bool) {
	return s.t.ReplaceOrInsert(v)
}

// Delete removes the element Equivalent to v and returns it.
func (s *OrderedSet[T]) Delete(v T) (T, bool) {
	return s.t.Delete(v)
}

// Get returns the stored element Equivalent to v.
func (s *OrderedSet[T]) Get(v T) (T, bool) {
	return s.t.Get(v)
}

func (s *OrderedSet[T]) Has(v T) bool {
	return s.t.Has(v)
}

func (s *OrderedSet[T]) Min() (T, bool) {
	return s.t.Min()
}

func (s *OrderedSet[T]) Max() (T, bool) {
	return s.t.Max()
}

func (s *OrderedSet[T]) Len() int {
	return s.t.Len()
}

// Ascend calls fn for every element in order until fn returns false.
func (s *OrderedSet[T]) Ascend(fn func(v T) bool) {
	s.t.Ascend(fn)
}

// Descend calls fn for every element in reverse order until fn returns
// false.
func (s *OrderedSet[T]) Descend(fn func(v T) bool) {
	s.t.Descend(fn)
}

// AscendRange calls fn for every element in [from, to) until fn returns
// false.
func (s *OrderedSet[T]) AscendRange(from, to T, fn func(v T) bool) {
	s.t.AscendRange(from, to, fn)
}

// Items returns the elements in order.
func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, s.t.Len())
	s.t.Ascend(func(v T) bool {
		items = append(items, v)
		return true
	})

	return items
}

// Clear removes every element.
func (s *OrderedSet[T]) Clear() {
	s.t.Clear(false /* addNodesToFreelist */)
}
