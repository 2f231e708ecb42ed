// Copyright Slicelab Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package wrap

import (
	"fmt"

	"github.com/slicelab/go-staticslicing/pkg/array"
	"github.com/slicelab/go-staticslicing/pkg/index"
)

// Wrapper gives a dynamically-sized contiguous container the same checked
// indexing surface that fixed-capacity arrays enjoy, except that violations
// surface at the moment of access rather than at compile time.  Any container
// whose underlying type is a slice can be wrapped: a borrowed slice, a slice
// of an array, or a named slice type.  The wrapper borrows the container, it
// never copies it; writes made through the wrapper are therefore visible to
// anyone else holding the same storage.
type Wrapper[S ~[]E, E any] struct {
	data S
}

// New wraps the given container.  The concrete container type is retained, so
// it can be recovered unchanged via Data.
func New[S ~[]E, E any](data S) Wrapper[S, E] {
	return Wrapper[S, E]{data}
}

// NewArray wraps any container implementing the contiguous array abstraction,
// borrowing its raw storage.  Reads and writes made through the wrapper are
// therefore reads and writes of the container itself.
func NewArray[T any](arr array.Array[T]) Wrapper[[]T, T] {
	return New(arr.RawSlice())
}

// Data returns the wrapped container exactly as it was supplied, ensuring
// wrapping hides none of the container's own functionality.
func (p Wrapper[S, E]) Data() S {
	return p.data
}

// Len returns the current length of the wrapped container.
func (p Wrapper[S, E]) Len() uint {
	return uint(len(p.data))
}

// Get returns the element selected by the given index.  If the index lies
// outside the wrapped container, this panics with a diagnostic identifying
// both the requested index and the actual length.
func (p Wrapper[S, E]) Get(ix index.Single) E {
	return *p.Ref(ix)
}

// Ref returns a pointer to the element selected by the given index, through
// which the element can be both read and overwritten.  Out-of-bounds indices
// cause a panic, exactly as for Get.
func (p Wrapper[S, E]) Ref(ix index.Single) *E {
	if err := ix.Check(p.Len()); err != nil {
		panic(err)
	}
	//
	return &p.data[ix]
}

// Set overwrites the element selected by the given index, panicking if the
// index lies outside the wrapped container.
func (p Wrapper[S, E]) Set(ix index.Single, item E) {
	*p.Ref(ix) = item
}

// Sub returns a view of exactly ix.Length contiguous elements beginning at
// ix.Start.  The view aliases the wrapped storage (no copy) and its capacity
// is clipped, so it cannot be grown over neighbouring elements.  A range
// which does not fit the current length causes a panic identifying the
// requested range and the actual length.
func (p Wrapper[S, E]) Sub(ix index.Range) []E {
	if err := ix.Check(p.Len()); err != nil {
		panic(err)
	}
	//
	end := ix.End()
	//
	return p.data[ix.Start:end:end]
}

// SetSub overwrites the ix.Length contiguous elements beginning at ix.Start
// with the given items, whose count must match the range exactly.  Bounds are
// checked as for Sub.
func (p Wrapper[S, E]) SetSub(ix index.Range, items []E) {
	if uint(len(items)) != ix.Length {
		panic(fmt.Errorf("range %s requires exactly %d items (got %d)", ix, ix.Length, len(items)))
	}
	//
	copy(p.Sub(ix), items)
}
