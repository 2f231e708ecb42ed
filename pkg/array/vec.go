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
package array

// Vec is a growable implementation of MutArray which is backed by a single
// underlying Go slice.
type Vec[T any] struct {
	items []T
}

// NewVec constructs a new vec from an underlying Go slice.
func NewVec[T any](items []T) Vec[T] {
	return Vec[T]{items}
}

// Add a given element to this vec, returning the index of the new item.
func (p *Vec[T]) Add(item T) uint {
	index := p.Len()
	p.items = append(p.items, item)

	return index
}

// Clone the given vec.
func (p *Vec[T]) Clone() MutArray[T] {
	arr := p.Copy()
	return &arr
}

// Copy creates a copy of this vec which, in particular, clones the underlying
// slice itself.  Thus, modifications to the copy do not affect the original.
func (p *Vec[T]) Copy() Vec[T] {
	nitems := make([]T, len(p.items))
	copy(nitems, p.items)

	return Vec[T]{nitems}
}

// Find the first element matching a given predicate, returning its index.
// Otherwise, returns false when no such element exists.
func (p *Vec[T]) Find(predicate Predicate[T]) (uint, bool) {
	for i, item := range p.items {
		if predicate(item) {
			return uint(i), true
		}
	}
	//
	return 0, false
}

// Get the ith element of this vec.
func (p *Vec[T]) Get(index uint) T {
	return p.items[index]
}

// Has determines whether an element exists for which the given predicate holds.
func (p *Vec[T]) Has(predicate Predicate[T]) bool {
	_, r := p.Find(predicate)
	return r
}

// Len returns the number of items in this vec.
func (p *Vec[T]) Len() uint {
	return uint(len(p.items))
}

// RawSlice exposes the contiguous storage underlying this vec.
func (p *Vec[T]) RawSlice() []T {
	return p.items
}

// Set the element at the given index, overwriting the original value.
func (p *Vec[T]) Set(index uint, item T) {
	p.items[index] = item
}

// Swap two elements in this vec.
func (p *Vec[T]) Swap(l uint, r uint) {
	lth := p.items[l]
	p.items[l] = p.items[r]
	p.items[r] = lth
}
