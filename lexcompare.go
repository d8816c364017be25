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

// Package lexcompare builds lexicographic less-than comparisons over several
// attributes of a record. The attributes are listed in priority order as
// selectors (fields, accessor methods, transforms or custom predicates) and
// the first selector on which two records differ decides their order.
//
//	less := lexcompare.LessThan(a, b,
//		lexcompare.Field("surname", func(p Person) string { return p.Surname }),
//		lexcompare.Field("age", func(p Person) int { return p.Age }),
//	)
//
// Comparisons are pure; any panic raised by a selector's function reaches
// the caller untouched.
package lexcompare

// Compare orders lhs against rhs by walking selectors left to right and
// returning the first ordering which is not Equivalent. Later selectors are
// never evaluated once an earlier one has decided. Records which tie on
// every selector are Equivalent.
func Compare[T any](lhs, rhs T, selectors ...Selector[T]) Ordering {
	for _, sel := range selectors {
		if o := sel.step(lhs, rhs); o != Equivalent {
			return o
		}
	}

	return Equivalent
}

// LessThan returns true if lhs sorts strictly before rhs under the
// lexicographic ordering given by first followed by rest.
func LessThan[T any](lhs, rhs T, first Selector[T], rest ...Selector[T]) bool {
	if o := first.step(lhs, rhs); o != Equivalent {
		return o == Less
	}

	return Compare(lhs, rhs, rest...) == Less
}
