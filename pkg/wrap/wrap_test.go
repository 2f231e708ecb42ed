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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slicelab/go-staticslicing/pkg/array"
	"github.com/slicelab/go-staticslicing/pkg/index"
)

func Test_Wrap_ReadSingle(t *testing.T) {
	x := New([]int{1, 2, 3})
	//
	require.Equal(t, 3, x.Get(index.Single(2)))
	require.Equal(t, uint(3), x.Len())
}

func Test_Wrap_WriteSingle(t *testing.T) {
	data := []int{1, 2, 3}
	x := New(data)
	//
	x.Set(index.Single(2), 5)
	// Writes are visible through the original container.
	require.Equal(t, []int{1, 2, 5}, data)
}

func Test_Wrap_WriteSingleRef(t *testing.T) {
	data := []int{1, 2, 3}
	x := New(data)
	//
	*x.Ref(index.Single(0)) = 7
	require.Equal(t, 7, data[0])
}

func Test_Wrap_ReadRange(t *testing.T) {
	x := New([]int{1, 2, 3})
	//
	require.Equal(t, []int{1, 2}, x.Sub(index.NewRange(0, 2)))
}

func Test_Wrap_ReadRange_Boundary(t *testing.T) {
	x := New([]int{1, 2, 3})
	// Full range yields the whole container.
	require.Equal(t, []int{1, 2, 3}, x.Sub(index.NewRange(0, 3)))
	// Empty range at the very end is in bounds.
	require.Empty(t, x.Sub(index.NewRange(3, 0)))
}

func Test_Wrap_WriteRange(t *testing.T) {
	data := []int{1, 2, 3}
	x := New(data)
	//
	x.SetSub(index.NewRange(0, 2), []int{3, 4})
	require.Equal(t, []int{3, 4, 3}, data)
}

func Test_Wrap_WriteRange_Middle(t *testing.T) {
	data := []int{1, 2, 3}
	x := New(data)
	//
	x.SetSub(index.NewRange(1, 2), []int{4, 5})
	require.Equal(t, []int{1, 4, 5}, x.Sub(index.NewRange(0, 3)))
}

func Test_Wrap_Idempotence(t *testing.T) {
	data := []int{1, 2, 3}
	x := New(data)
	// Same read twice.
	require.Equal(t, x.Get(index.Single(1)), x.Get(index.Single(1)))
	// Same write twice.
	x.Set(index.Single(1), 9)
	x.Set(index.Single(1), 9)
	require.Equal(t, []int{1, 9, 3}, data)
}

func Test_Wrap_Passthrough(t *testing.T) {
	type Buffer []byte
	//
	buf := Buffer{0xde, 0xad}
	x := New(buf)
	// The wrapped container comes back exactly as supplied, concrete type
	// included.
	require.Equal(t, buf, x.Data())
	require.IsType(t, Buffer{}, x.Data())
}

func Test_Wrap_Vec(t *testing.T) {
	vec := array.NewVec([]uint{10, 20, 30})
	vec.Add(40)
	//
	x := New(vec.RawSlice())
	require.Equal(t, uint(40), x.Get(index.Single(3)))
	// Writes through the wrapper land in the vec.
	x.Set(index.Single(0), 11)
	require.Equal(t, uint(11), vec.Get(0))
}

func Test_Wrap_Array(t *testing.T) {
	vec := array.NewVec([]uint{10, 20, 30})
	// Anything implementing the array abstraction can be wrapped directly.
	x := NewArray[uint](&vec)
	//
	require.Equal(t, uint(3), x.Len())
	require.Equal(t, uint(30), x.Get(index.Single(2)))
	// The wrapper borrows the container's storage.
	x.Set(index.Single(1), 21)
	require.Equal(t, uint(21), vec.Get(1))
}

func Test_Wrap_SubClipped(t *testing.T) {
	data := []int{1, 2, 3, 4}
	sub := New(data).Sub(index.NewRange(1, 2))
	// Appending to the view cannot overwrite neighbouring elements.
	sub = append(sub, 99)
	require.Equal(t, []int{1, 2, 3, 4}, data)
	require.Equal(t, []int{2, 3, 99}, sub)
}

func Test_Wrap_OutOfBounds_ReadSingle(t *testing.T) {
	x := New([]int{1, 2, 3})
	//
	require.Panics(t, func() { x.Get(index.Single(3)) })
}

func Test_Wrap_OutOfBounds_WriteSingle(t *testing.T) {
	x := New([]int{1, 2, 3})
	//
	require.Panics(t, func() { x.Set(index.Single(3), 1337) })
}

func Test_Wrap_OutOfBounds_ReadRange(t *testing.T) {
	x := New([]int{1, 2, 3})
	//
	require.Panics(t, func() { x.Sub(index.NewRange(0, 5)) })
}

func Test_Wrap_OutOfBounds_WriteRange(t *testing.T) {
	x := New([]int{1, 2, 3})
	//
	require.Panics(t, func() { x.SetSub(index.NewRange(0, 5), []int{2, 3, 4, 5, 6}) })
}

func Test_Wrap_OutOfBounds_Diagnostic(t *testing.T) {
	x := New([]int{1, 2, 3})
	// The panic names the requested range and the actual length.
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.ErrorContains(t, err, "after index 2")
		require.ErrorContains(t, err, "requested 4")
		require.ErrorContains(t, err, "length: 3")
	}()
	//
	x.Sub(index.NewRange(2, 4))
}

func Test_Wrap_MismatchedItems(t *testing.T) {
	x := New([]int{1, 2, 3})
	// Supplying the wrong number of items for a range is rejected outright.
	require.Panics(t, func() { x.SetSub(index.NewRange(0, 2), []int{1}) })
}
