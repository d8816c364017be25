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

// Iterator yields records one at a time. Next returns false once the source
// is exhausted; an error ends iteration.
type Iterator[T any] interface {
	Next() (T, bool, error)
}

// SliceIterator walks an in-memory slice.
type SliceIterator[T any] struct {
	data      []T
	nextIndex int
}

func NewSliceIterator[T any](data []T) *SliceIterator[T] {
	return &SliceIterator[T]{data: data}
}

func (si *SliceIterator[T]) Next() (T, bool, error) {
	if si.nextIndex >= len(si.data) {
		var zero T
		return zero, false, nil
	}

	si.nextIndex++
	return si.data[si.nextIndex-1], true, nil
}

// IteratorFunc adapts a function to an Iterator.
type IteratorFunc[T any] func() (T, bool, error)

func (f IteratorFunc[T]) Next() (T, bool, error) { return f() }
