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

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Array provides a generic interface to a randomly-addressable sequence of
// elements backed by one contiguous region of storage.
type Array[T any] interface {
	// Returns the number of elements in this array.
	Len() uint
	// Get returns the element at the given index in this array.
	Get(uint) T
	// RawSlice exposes the contiguous storage underlying this array.  This is
	// what allows any implementation to be dropped into a checked wrapper.
	RawSlice() []T
}

// MutArray provides a generic interface to an array of elements which
// additionally supports in-place mutation.
type MutArray[T any] interface {
	Array[T]
	// Clone makes a clone of this array producing an otherwise identical copy.
	Clone() MutArray[T]
	// Set the element at the given index in this array, overwriting the
	// original value.
	Set(uint, T)
}
