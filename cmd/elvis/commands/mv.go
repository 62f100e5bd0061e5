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

// NewMvCmd creates a new mv command
func NewMvCmd(o *opts.RootOpts) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "mv <source>... <target>",
		Short: "Move or rename files and directories",
		Long: `Mv moves sources to target. With several sources the target must be an
existing directory. Directories are moved by recreating their tree at the
destination, moving every file into it and removing the emptied source.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, target := args[:len(args)-1], args[len(args)-1]
			return run(cmd, o, planner.NewMv(sources, target, force, o.Env()))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "do not prompt before overwriting")

	return cmd
}
