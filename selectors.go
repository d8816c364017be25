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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Kind identifies how a Selector obtains its ordering.
type Kind int

const (
	KindField Kind = iota
	KindAccessor
	KindTransform
	KindPredicate
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindAccessor:
		return "accessor"
	case KindTransform:
		return "transform"
	case KindPredicate:
		return "predicate"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Selector describes one priority level of a lexicographic comparison. The
// set of selectors is closed; use Field, Accessor, Transform, Pred, FieldWith
// and Desc to build them.
type Selector[T any] interface {
	Kind() Kind
	String() string

	// step orders lhs against rhs on this level alone
	step(lhs, rhs T) Ordering
}

// extractSelector covers the three kinds which pull a value with a native
// < operator out of each record and compare the two values.
type extractSelector[T any, K constraints.Ordered] struct {
	kind Kind
	name string
	get  func(T) K
}

func (s extractSelector[T, K]) Kind() Kind { return s.kind }

func (s extractSelector[T, K]) String() string {
	if s.name == "" {
		return s.kind.String()
	}

	return fmt.Sprintf("%s(%s)", s.kind, s.name)
}

func (s extractSelector[T, K]) step(lhs, rhs T) Ordering {
	a, b := s.get(lhs), s.get(rhs)
	if a < b {
		return Less
	} else if b < a {
		return Greater
	}

	return Equivalent
}

// Field orders records by a stored field, read by get. The name is only used
// when describing the selector.
//
//	lexcompare.Field("surname", func(p Person) string { return p.Surname })
func Field[T any, K constraints.Ordered](name string, get func(T) K) Selector[T] {
	if get == nil {
		panic("lexcompare: Field requires a getter")
	}

	return extractSelector[T, K]{kind: KindField, name: name, get: get}
}

// Accessor orders records by the result of a read-only method, normally
// passed as a method expression.
//
//	lexcompare.Accessor("FullName", Person.FullName)
func Accessor[T any, K constraints.Ordered](name string, method func(T) K) Selector[T] {
	if method == nil {
		panic("lexcompare: Accessor requires a method")
	}

	return extractSelector[T, K]{kind: KindAccessor, name: name, get: method}
}

// Transform orders records by a value derived from the whole record.
func Transform[T any, K constraints.Ordered](fn func(T) K) Selector[T] {
	if fn == nil {
		panic("lexcompare: Transform requires a function")
	}

	return extractSelector[T, K]{kind: KindTransform, get: fn}
}

// handlerSelector is a field whose type has no < operator; a KeyHandler
// supplies the ordering instead.
type handlerSelector[T, K any] struct {
	name    string
	get     func(T) K
	handler KeyHandler[K]
}

func (s handlerSelector[T, K]) Kind() Kind { return KindField }

func (s handlerSelector[T, K]) String() string {
	return fmt.Sprintf("%s(%s)", KindField, s.name)
}

func (s handlerSelector[T, K]) step(lhs, rhs T) Ordering {
	return orderOf(s.get(lhs), s.get(rhs), s.handler.Less)
}

// FieldWith orders records by a field whose type is ordered by handler,
// such as time.Time or []byte.
func FieldWith[T, K any](name string, get func(T) K, handler KeyHandler[K]) Selector[T] {
	if get == nil || handler == nil {
		panic("lexcompare: FieldWith requires a getter and a key handler")
	}

	return handlerSelector[T, K]{name: name, get: get, handler: handler}
}

type predSelector[T any] struct {
	less func(lhs, rhs T) bool
}

func (s predSelector[T]) Kind() Kind { return KindPredicate }

func (s predSelector[T]) String() string { return KindPredicate.String() }

func (s predSelector[T]) step(lhs, rhs T) Ordering {
	return orderOf(lhs, rhs, s.less)
}

// Pred wraps a custom less function over whole records. Use it only when the
// ordering cannot be expressed as a comparison of one extracted value. The
// function is probed in both directions, so it must itself be a strict weak
// ordering.
func Pred[T any](less func(lhs, rhs T) bool) Selector[T] {
	if less == nil {
		panic("lexcompare: Pred requires a less function")
	}

	return predSelector[T]{less: less}
}

type descSelector[T any] struct {
	inner Selector[T]
}

func (s descSelector[T]) Kind() Kind { return s.inner.Kind() }

func (s descSelector[T]) String() string {
	return fmt.Sprintf("desc(%s)", s.inner)
}

func (s descSelector[T]) step(lhs, rhs T) Ordering {
	return s.inner.step(lhs, rhs).Reverse()
}

// Desc reverses the direction of a single selector, leaving the other
// levels of a comparison ascending. Desc(Desc(s)) is s.
func Desc[T any](sel Selector[T]) Selector[T] {
	if d, ok := sel.(descSelector[T]); ok {
		return d.inner
	}

	return descSelector[T]{inner: sel}
}
