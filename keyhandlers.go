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
	"bytes"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// KeyHandler supplies the ordering for an attribute type which FieldWith
// compares. Less must be a strict weak ordering.
type KeyHandler[K any] interface {
	// Less returns a < b
	Less(a, b K) bool
}

// KeyHandlerFunc adapts a plain less function to a KeyHandler.
type KeyHandlerFunc[K any] func(a, b K) bool

func (f KeyHandlerFunc[K]) Less(a, b K) bool { return f(a, b) }

// OrderedKeyHandler orders any type with a native < operator.
type OrderedKeyHandler[K constraints.Ordered] struct{}

func (OrderedKeyHandler[K]) Less(a, b K) bool { return a < b }

// StringKeyHandler provides a KeyHandler for string keys
type StringKeyHandler struct{}

func (s StringKeyHandler) Less(a, b string) bool { return a < b }

// FoldedStringKeyHandler orders strings ignoring case.
type FoldedStringKeyHandler struct{}

func (s FoldedStringKeyHandler) Less(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// Int64KeyHandler provides a KeyHandler for int64 keys
type Int64KeyHandler struct{}

func (i Int64KeyHandler) Less(a, b int64) bool { return a < b }

// BytesKeyHandler orders byte slices lexicographically; nil and empty
// slices are equivalent.
type BytesKeyHandler struct{}

func (h BytesKeyHandler) Less(a, b []byte) bool { return bytes.Compare(a, b) < 0 }

// TimeKeyHandler orders instants; times in different locations which
// describe the same instant are equivalent.
type TimeKeyHandler struct{}

func (h TimeKeyHandler) Less(a, b time.Time) bool { return a.Before(b) }

// BoolKeyHandler puts false before true.
type BoolKeyHandler struct{}

func (h BoolKeyHandler) Less(a, b bool) bool { return !a && b }
