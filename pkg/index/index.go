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
package index

import "fmt"

// Single selects exactly one element of a container.  A Single is a pure
// value: two singles with the same position are interchangeable, and a single
// carries nothing beyond its position.
type Single uint

// Check determines whether this index selects a valid element of a container
// holding n elements.
func (p Single) Check(n uint) error {
	return CheckIndex(n, uint(p))
}

// String returns a human-readable rendering of this index.
func (p Single) String() string {
	return fmt.Sprintf("[%d]", uint(p))
}

// Range selects a contiguous run of elements, denoting the half-open interval
// [Start, Start+Length).  Like Single, a Range is a pure value whose identity
// is entirely determined by its two positions.
type Range struct {
	// First element selected by this range.
	Start uint
	// Number of elements selected by this range.
	Length uint
}

// NewRange constructs the range covering [start, start+length).
func NewRange(start uint, length uint) Range {
	return Range{start, length}
}

// End returns the first position beyond this range.  Only meaningful once
// Check has passed, since Start+Length can otherwise wrap around.
func (p Range) End() uint {
	return p.Start + p.Length
}

// Check determines whether this range fits entirely within a container
// holding n elements.
func (p Range) Check(n uint) error {
	return CheckRange(n, p.Start, p.Length)
}

// String returns a human-readable rendering of this range.
func (p Range) String() string {
	return fmt.Sprintf("[%d..+%d]", p.Start, p.Length)
}

// CheckIndex determines whether position index identifies an element of a
// container holding n elements.
func CheckIndex(n uint, index uint) error {
	if index < n {
		return nil
	}
	//
	return fmt.Errorf("index %d is out of bounds (length: %d)", index, n)
}

// CheckRange determines whether the interval [start, start+length) fits
// within a container holding n elements.  The empty range positioned exactly
// at the end (start == n, length == 0) is in bounds.  Observe that the
// subtraction below is guarded by the first test, hence the check itself can
// never underflow regardless of how large start is.
func CheckRange(n uint, start uint, length uint) error {
	if start > n {
		return fmt.Errorf("starting index %d is out of bounds (length: %d)", start, n)
	} else if n-start < length {
		return fmt.Errorf("not enough items after index %d (requested %d; length: %d)", start, length, n)
	}
	//
	return nil
}
