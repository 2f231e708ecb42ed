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

import (
	"math"
	"strings"
	"testing"
)

func Test_Index_01(t *testing.T) {
	checkValidIndex(t, 8, 0)
	checkValidIndex(t, 8, 4)
	checkValidIndex(t, 8, 7)
	checkValidIndex(t, 1, 0)
}

func Test_Index_02(t *testing.T) {
	checkInvalidIndex(t, 8, 8)
	checkInvalidIndex(t, 8, 100)
	checkInvalidIndex(t, 0, 0)
	checkInvalidIndex(t, 3, 3)
}

func Test_Index_03(t *testing.T) {
	// Diagnostics name both the index and the length.
	err := CheckIndex(3, 7)
	if err == nil {
		t.Fatal("expected failure")
	}
	//
	if !strings.Contains(err.Error(), "7") || !strings.Contains(err.Error(), "3") {
		t.Errorf("diagnostic missing index or length: %s", err)
	}
}

func Test_Index_04(t *testing.T) {
	// Tokens with equal positions are interchangeable.
	if Single(4) != Single(4) {
		t.Error("equal singles expected to compare equal")
	}
	//
	if NewRange(2, 3) != (Range{2, 3}) {
		t.Error("equal ranges expected to compare equal")
	}
	//
	if NewRange(2, 3) == NewRange(3, 2) {
		t.Error("distinct ranges expected to compare unequal")
	}
}

func Test_Range_01(t *testing.T) {
	checkValidRange(t, 8, 0, 8)
	checkValidRange(t, 8, 4, 4)
	checkValidRange(t, 8, 7, 1)
	checkValidRange(t, 8, 0, 0)
	checkValidRange(t, 12, 4, 8)
}

func Test_Range_02(t *testing.T) {
	// The empty range positioned exactly at the end is in bounds.
	checkValidRange(t, 8, 8, 0)
	checkValidRange(t, 0, 0, 0)
}

func Test_Range_03(t *testing.T) {
	checkInvalidRange(t, 8, 9, 0)
	checkInvalidRange(t, 8, 4, 5)
	checkInvalidRange(t, 8, 8, 1)
	checkInvalidRange(t, 3, 0, 5)
	checkInvalidRange(t, 5, 1, 5)
}

func Test_Range_04(t *testing.T) {
	// A huge start must fail cleanly, rather than wrapping around inside the
	// check itself.
	checkInvalidRange(t, 3, math.MaxUint, 1)
	checkInvalidRange(t, 3, math.MaxUint, 0)
	checkValidRange(t, 3, 0, 3)
}

func Test_Range_05(t *testing.T) {
	r := NewRange(4, 8)
	//
	if r.End() != 12 {
		t.Errorf("expected end 12, got %d", r.End())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkValidIndex(t *testing.T, n uint, index uint) {
	if err := CheckIndex(n, index); err != nil {
		t.Errorf("index %d unexpectedly invalid for length %d: %s", index, n, err)
	}
	//
	if err := Single(index).Check(n); err != nil {
		t.Errorf("single %d unexpectedly invalid for length %d: %s", index, n, err)
	}
}

func checkInvalidIndex(t *testing.T, n uint, index uint) {
	if CheckIndex(n, index) == nil {
		t.Errorf("index %d unexpectedly valid for length %d", index, n)
	}
	//
	if Single(index).Check(n) == nil {
		t.Errorf("single %d unexpectedly valid for length %d", index, n)
	}
}

func checkValidRange(t *testing.T, n uint, start uint, length uint) {
	if err := CheckRange(n, start, length); err != nil {
		t.Errorf("range [%d..+%d] unexpectedly invalid for length %d: %s", start, length, n, err)
	}
	//
	if err := NewRange(start, length).Check(n); err != nil {
		t.Errorf("range [%d..+%d] unexpectedly invalid for length %d: %s", start, length, n, err)
	}
}

func checkInvalidRange(t *testing.T, n uint, start uint, length uint) {
	if CheckRange(n, start, length) == nil {
		t.Errorf("range [%d..+%d] unexpectedly valid for length %d", start, length, n)
	}
	//
	if NewRange(start, length).Check(n) == nil {
		t.Errorf("range [%d..+%d] unexpectedly valid for length %d", start, length, n)
	}
}
