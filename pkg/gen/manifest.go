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
package gen

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/slicelab/go-staticslicing/pkg/index"
)

// Manifest describes a set of accessor instantiations to materialise.  Since
// accessors are checked while they are produced, a manifest requesting an
// access which cannot fit its declared capacity fails generation outright,
// making the violation a build failure rather than something discovered when
// the program runs.
type Manifest struct {
	// Name of the package into which accessors are generated.
	Package string `yaml:"package"`
	// Capacities for which accessors are required.
	Capacities []Capacity `yaml:"capacities"`
}

// Capacity describes the accessor instantiations required for one array size.
type Capacity struct {
	// Size of the array type, in elements.
	Size uint `yaml:"size"`
	// AllIndexes requests a single-element accessor for every position.
	AllIndexes bool `yaml:"all_indexes"`
	// Indexes requests single-element accessors for specific positions.
	Indexes []uint `yaml:"indexes"`
	// AllRanges requests a sub-array accessor for every non-empty range.
	AllRanges bool `yaml:"all_ranges"`
	// Ranges requests sub-array accessors for specific ranges.
	Ranges []RangeSpec `yaml:"ranges"`
}

// RangeSpec identifies one (start, length) sub-array instantiation.
type RangeSpec struct {
	Start  uint `yaml:"start"`
	Length uint `yaml:"length"`
}

// End returns the first position beyond this range.
func (p RangeSpec) End() uint {
	return p.Start + p.Length
}

// ParseManifest parses a YAML manifest, without yet validating the
// instantiations it requests.
func ParseManifest(bytes []byte) (Manifest, error) {
	var manifest Manifest
	//
	if err := yaml.Unmarshal(bytes, &manifest); err != nil {
		return manifest, fmt.Errorf("malformed manifest: %w", err)
	} else if manifest.Package == "" {
		return manifest, fmt.Errorf("manifest does not name a package")
	}
	//
	return manifest, nil
}

// Expand resolves every requested instantiation into an explicit plan,
// checking each against the validity predicate for its declared capacity.
// The first violating instantiation aborts expansion with a diagnostic naming
// the capacity and the offending index or range.
func (p Manifest) Expand() ([]Capacity, error) {
	var (
		plan  []Capacity
		sizes = make(map[uint]bool)
	)
	//
	for _, c := range p.Capacities {
		// A capacity declared twice would materialise its per-capacity
		// functions twice over, hence reject it here rather than emit source
		// which cannot compile.
		if sizes[c.Size] {
			return nil, fmt.Errorf("capacity %d declared more than once", c.Size)
		}
		//
		sizes[c.Size] = true
		//
		expanded, err := c.expand()
		if err != nil {
			return nil, err
		}
		//
		plan = append(plan, expanded)
	}
	//
	return plan, nil
}

func (p Capacity) expand() (Capacity, error) {
	var (
		expanded = Capacity{Size: p.Size}
		indexes  = make(map[uint]bool)
		ranges   = make(map[RangeSpec]bool)
	)
	//
	if p.AllIndexes {
		for i := uint(0); i < p.Size; i++ {
			indexes[i] = true
			expanded.Indexes = append(expanded.Indexes, i)
		}
	}
	// Requesting the same instantiation twice (explicitly, or by overlap with
	// all_indexes/all_ranges) is harmless, so collapse duplicates rather than
	// emitting the same function twice.
	for _, ix := range p.Indexes {
		if err := index.CheckIndex(p.Size, ix); err != nil {
			return expanded, fmt.Errorf("capacity %d: %w", p.Size, err)
		} else if !indexes[ix] {
			indexes[ix] = true
			expanded.Indexes = append(expanded.Indexes, ix)
		}
	}
	//
	if p.AllRanges {
		for s := uint(0); s < p.Size; s++ {
			for l := uint(1); l <= p.Size-s; l++ {
				ranges[RangeSpec{s, l}] = true
				expanded.Ranges = append(expanded.Ranges, RangeSpec{s, l})
			}
		}
	}
	//
	for _, r := range p.Ranges {
		if err := index.CheckRange(p.Size, r.Start, r.Length); err != nil {
			return expanded, fmt.Errorf("capacity %d: %w", p.Size, err)
		} else if !ranges[r] {
			ranges[r] = true
			expanded.Ranges = append(expanded.Ranges, r)
		}
	}
	//
	return expanded, nil
}
