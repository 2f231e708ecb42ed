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
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/slicelab/go-staticslicing/pkg/gen"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] manifest_file",
	Short: "generate accessor functions from a manifest.",
	Long: `Generate one accessor function per instantiation requested by the given
manifest.  Every instantiation is checked against its declared capacity before
anything is written; a violating manifest fails generation outright.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		output := GetString(cmd, "output")
		// Parse manifest
		manifest := readManifestFile(args[0])
		//
		log.Debugf("generating accessors for package %s (%d capacities)",
			manifest.Package, len(manifest.Capacities))
		// Generate accessor source
		if err := gen.Generate(manifest, output); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		//
		log.Infof("wrote %s", output)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "accessors_gen.go", "output file for generated accessors")
}
