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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/slicelab/go-staticslicing/pkg/gen"
)

// maxCapacity bounds the pre-generated accessor grid.  Larger capacities are
// expected to be generated on demand from a project-specific manifest.
const maxCapacity = 8

// Materialise the standard accessor grid into the package from which this
// generator is invoked (via go:generate in pkg/fixed).
func main() {
	manifest := gen.Manifest{Package: "fixed"}

	for n := uint(1); n <= maxCapacity; n++ {
		manifest.Capacities = append(manifest.Capacities, gen.Capacity{
			Size:       n,
			AllIndexes: true,
			AllRanges:  true,
		})
	}

	if err := gen.Generate(manifest, "accessors_gen.go"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// run gofmt on the generated output
	runCmd("gofmt", "-w", "accessors_gen.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
