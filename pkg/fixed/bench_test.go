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
package fixed_test

import (
	"testing"

	"github.com/slicelab/go-staticslicing/pkg/fixed"
	"github.com/slicelab/go-staticslicing/pkg/index"
	"github.com/slicelab/go-staticslicing/pkg/wrap"
)

var (
	sinkByte uint8
	sinkView *[4]uint8
	sinkSub  []uint8
)

func Benchmark_SingleIndex_RuntimeChecked(b *testing.B) {
	data := [8]uint8{5, 5, 5, 5, 5, 5, 5, 5}
	wrapped := wrap.New(data[:])
	//
	for i := 0; i < b.N; i++ {
		sinkByte = wrapped.Get(index.Single(4))
	}
}

func Benchmark_SingleIndex_CompileChecked(b *testing.B) {
	data := [8]uint8{5, 5, 5, 5, 5, 5, 5, 5}
	//
	for i := 0; i < b.N; i++ {
		sinkByte = *fixed.At4Of8(&data)
	}
}

func Benchmark_RangeIndex_RuntimeChecked(b *testing.B) {
	data := [8]uint8{5, 5, 5, 5, 5, 5, 5, 5}
	wrapped := wrap.New(data[:])
	//
	for i := 0; i < b.N; i++ {
		sinkSub = wrapped.Sub(index.NewRange(4, 4))
	}
}

func Benchmark_RangeIndex_CompileChecked(b *testing.B) {
	data := [8]uint8{5, 5, 5, 5, 5, 5, 5, 5}
	//
	for i := 0; i < b.N; i++ {
		sinkView = fixed.Sub4x4Of8(&data)
	}
}
