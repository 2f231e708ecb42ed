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
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] manifest_file",
	Short: "check a manifest without generating anything.",
	Long: `Check that every instantiation requested by the given manifest satisfies the
validity predicate for its declared capacity, reporting what would be
generated.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Parse manifest
		manifest := readManifestFile(args[0])
		// Expand (and hence validate) all instantiations
		plan, err := manifest.Expand()
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		//
		for _, c := range plan {
			fmt.Printf("capacity %d: %d element accessor(s), %d range accessor(s)\n",
				c.Size, len(c.Indexes), len(c.Ranges))
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
