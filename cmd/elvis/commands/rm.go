// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/elvis/cmd/elvis/opts"
	"github.com/walteh/elvis/pkg/planner"
)

// NewRmCmd creates a new rm command
func NewRmCmd(o *opts.RootOpts) *cobra.Command {
	var recursive, force bool

	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Remove files and directories",
		Long: `Rm removes files. Directories need --recursive unless they are empty.
With --force missing paths are ignored and unreadable paths are removed on a
best-effort basis.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, planner.NewRm(args, recursive, force, o.Env()))
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove directories and their contents")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "ignore missing paths")

	return cmd
}
