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

// NewTouchCmd creates a new touch command
func NewTouchCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "touch <path>...",
		Short: "Create empty files",
		Long: `Touch creates every path that does not exist yet as an empty file.
Existing paths are reported and left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, planner.NewTouch(args, o.Env()))
		},
	}

	return cmd
}
