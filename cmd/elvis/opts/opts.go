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

package opts

import (
	"io"

	"github.com/walteh/elvis/pkg/config"
	"github.com/walteh/elvis/pkg/executor"
	"github.com/walteh/elvis/pkg/fsys"
	"github.com/walteh/elvis/pkg/planner"
	"github.com/walteh/elvis/pkg/printer"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Flags
	ConfigFile  string
	Debug       bool
	NoColor     bool
	SummaryOnly bool
	MaxEntries  int
	AssumeYes   bool

	// Resolved before a command runs
	Config *config.Config
	Cwd    string

	// Collaborators, replaceable in tests
	Out       io.Writer
	FS        fsys.FS
	Confirmer executor.Confirmer
}

// Env returns the planning environment for the current invocation
func (o *RootOpts) Env() planner.Env {
	env := planner.DefaultEnv(o.Cwd)
	if o.FS != nil {
		env.FS = o.FS
	}
	if o.Config != nil {
		env.Policy = planner.Policy{
			LargeOperationThreshold: o.Config.LargeOperationThreshold,
			Protected:               o.Config.Protected,
		}
	}
	return env
}

// PrinterOptions returns how the plan preview is rendered
func (o *RootOpts) PrinterOptions() printer.Options {
	po := printer.DefaultOptions(o.Cwd)
	po.SummaryOnly = o.SummaryOnly
	po.UseColor = !o.NoColor
	if o.MaxEntries > 0 {
		po.MaxEntries = o.MaxEntries
	}
	return po
}

// ExecutorOptions returns how the plan is applied
func (o *RootOpts) ExecutorOptions() executor.Options {
	revalidate := true
	if o.Config != nil {
		revalidate = o.Config.Revalidate
	}
	return executor.Options{
		AssumeYes:  o.AssumeYes,
		Confirmer:  o.Confirmer,
		Revalidate: revalidate,
	}
}
