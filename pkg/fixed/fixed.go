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

// Package fixed provides indexing and sub-slicing of fixed-capacity arrays
// where bounds are established entirely at compile time.  Every accessor in
// this package takes a pointer to a Go array type and uses only constant
// index and slice expressions, so an access which would fall outside the
// array is rejected by the compiler rather than detected at run time.  No
// accessor allocates, branches or checks anything once the program builds.
//
// The accessors themselves live in accessors_gen.go, one per (capacity,
// position) pair, materialised by the generator under internal/generator.
// Capacities beyond the pre-generated grid can be produced with the
// staticslicing CLI from a manifest.
package fixed

//go:generate go run ../../internal/generator

// Copy duplicates src into dst.  A must be an array type whose elements carry
// no ownership semantics (plain values, not handles to shared state), in
// which case dst ends up holding an exact element-wise duplicate of src while
// src itself is left untouched.  Because destination and source share the one
// type parameter, arrays of differing capacity or element type are rejected
// by the compiler; there is no runtime failure path and no partial-copy
// outcome.
func Copy[A any](dst *A, src A) {
	*dst = src
}
