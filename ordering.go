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

import "fmt"

// Ordering is the outcome of comparing two records on one or more
// selectors. The values line up with the int convention of cmp.Compare.
type Ordering int

const (
	Less       = Ordering(-1)
	Equivalent = Ordering(0)
	Greater    = Ordering(1)
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equivalent:
		return "equivalent"
	case Greater:
		return "greater"
	}

	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering {
	return -o
}

// orderOf probes less in both directions, which is all a strict weak
// ordering allows us to learn about two values.
func orderOf[K any](a, b K, less func(a, b K) bool) Ordering {
	if less(a, b) {
		return Less
	} else if less(b, a) {
		return Greater
	}

	return Equivalent
}
