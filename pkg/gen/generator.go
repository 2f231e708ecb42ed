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
	"embed"
	"os"
	"path/filepath"

	"github.com/consensys/bavard"
)

//go:embed templates/accessors.go.tmpl
var templates embed.FS

const copyrightHolder = "Slicelab Software Inc."

// TemplateData is the shape handed to the accessor template.
type TemplateData struct {
	Capacities []Capacity
}

// Generate expands the given manifest and materialises one accessor function
// per instantiation into the given output file.  Expansion failure (an
// instantiation violating its capacity's validity predicate) aborts before
// anything is written.
func Generate(manifest Manifest, outFile string) error {
	plan, err := manifest.Expand()
	if err != nil {
		return err
	}
	// Bavard resolves templates on disk, so stage the embedded one into a
	// scratch directory first.
	tmpDir, err := os.MkdirTemp("", "staticslicing-gen")
	if err != nil {
		return err
	}
	//
	defer os.RemoveAll(tmpDir)
	//
	bytes, err := templates.ReadFile("templates/accessors.go.tmpl")
	if err != nil {
		return err
	}
	//
	if err := os.WriteFile(filepath.Join(tmpDir, "accessors.go.tmpl"), bytes, 0600); err != nil {
		return err
	}
	//
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-staticslicing")
	//
	return bgen.Generate(TemplateData{plan}, manifest.Package, tmpDir,
		bavard.Entry{
			File:      outFile,
			Templates: []string{"accessors.go.tmpl"},
		},
	)
}
