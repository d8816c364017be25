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
	"container/heap"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type mergeItem[T any] struct {
	iterator Iterator[T]
	datum    T
	source   int
}

type mergeHeap[T any] struct {
	items   []mergeItem[T]
	compare *Comparator[T]
}

func (a *mergeHeap[T]) Len() int { return len(a.items) }

// Less breaks ties on the source number so equivalent records leave the
// merge in the order their sources were added.
func (a *mergeHeap[T]) Less(i, j int) bool {
	switch a.compare.Compare(a.items[i].datum, a.items[j].datum) {
	case Less:
		return true
	case Greater:
		return false
	}

	return a.items[i].source < a.items[j].source
}

func (a *mergeHeap[T]) Swap(i, j int)      { a.items[i], a.items[j] = a.items[j], a.items[i] }
func (a *mergeHeap[T]) Push(x interface{}) { a.items = append(a.items, x.(mergeItem[T])) }
func (a *mergeHeap[T]) Pop() interface{} {
	x := a.items[len(a.items)-1]
	a.items = a.items[0 : len(a.items)-1]
	return x
}

type mergerOptions struct {
	logger zerolog.Logger
}

// MergerOption configures a Merger.
type MergerOption func(*mergerOptions)

// WithLogger sends the merger's debug events to logger.
func WithLogger(logger zerolog.Logger) MergerOption {
	return func(o *mergerOptions) {
		o.logger = logger
	}
}

// Merger combines several sources, each already sorted by the same
// Comparator, into one sorted stream. Records which are Equivalent come out
// in the order their sources were added, so a merge of stably sorted runs
// is itself stable.
type Merger[T any] struct {
	heap    mergeHeap[T]
	sources int
	pending *mergeItem[T]
	log     zerolog.Logger
}

func NewMerger[T any](cmp *Comparator[T], opts ...MergerOption) *Merger[T] {
	options := mergerOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&options)
	}

	return &Merger[T]{
		heap: mergeHeap[T]{compare: cmp},
		log:  options.logger,
	}
}

// AddSource reads the first record of it and adds it to the merge. Sources
// may be added after Next has been called, but only records not less than
// the last one returned keep the output sorted.
func (m *Merger[T]) AddSource(it Iterator[T]) error {
	source := m.sources
	m.sources++

	return m.push(mergeItem[T]{iterator: it, source: source})
}

// push advances item's iterator and puts the result back on the heap.
func (m *Merger[T]) push(item mergeItem[T]) error {
	datum, exists, err := item.iterator.Next()
	if err != nil {
		m.log.Debug().Err(err).Int("source", item.source).Msg("merge source failed")
		return errors.Wrapf(err, "reading merge source %d", item.source)
	} else if !exists {
		m.log.Debug().Int("source", item.source).Msg("merge source exhausted")
		return nil
	}

	item.datum = datum
	heap.Push(&m.heap, item)

	return nil
}

// Len returns the number of sources not yet known to be exhausted.
func (m *Merger[T]) Len() int {
	n := m.heap.Len()
	if m.pending != nil {
		n++
	}

	return n
}

// Next returns the smallest remaining record. The source it came from is
// only read again on the following call, so a failing source never costs a
// record which was already read.
func (m *Merger[T]) Next() (T, bool, error) {
	if m.pending != nil {
		item := *m.pending
		m.pending = nil
		if err := m.push(item); err != nil {
			var zero T
			return zero, false, err
		}
	}

	if m.heap.Len() == 0 {
		var zero T
		return zero, false, nil
	}

	item := heap.Pop(&m.heap).(mergeItem[T])
	m.pending = &item

	return item.datum, true, nil
}

// All drains the merger.
func (m *Merger[T]) All() ([]T, error) {
	var out []T
	for {
		datum, exists, err := m.Next()
		if err != nil {
			return out, err
		} else if !exists {
			return out, nil
		}

		out = append(out, datum)
	}
}

// MergeSorted merges slices which are each sorted by cmp.
func MergeSorted[T any](cmp *Comparator[T], sources ...[]T) []T {
	// slice sources never fail, so the errors below cannot happen
	total := 0
	m := NewMerger(cmp)
	for _, source := range sources {
		total += len(source)
		if err := m.AddSource(NewSliceIterator(source)); err != nil {
			panic(err)
		}
	}

	out := make([]T, 0, total)
	for {
		datum, exists, err := m.Next()
		if err != nil {
			panic(err)
		} else if !exists {
			return out
		}

		out = append(out, datum)
	}
}
