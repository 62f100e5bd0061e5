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

package plan

import (
	"time"

	"github.com/walteh/elvis/pkg/action"
)

// 🏗️ Builder accumulates a plan. It is used once and then frozen with Build.
type Builder struct {
	p     *Plan
	built bool
}

// 🏭 NewBuilder starts a plan for the given command
func NewBuilder(cmd Command, args []string, workingDir string, now time.Time) *Builder {
	return &Builder{
		p: &Plan{
			metadata: Metadata{
				Command:    cmd,
				Args:       args,
				WorkingDir: workingDir,
				CreatedAt:  now,
			},
		},
	}
}

// Append adds an action after every action appended so far
func (b *Builder) Append(a action.Action) {
	b.p.actions = append(b.p.actions, a)
}

// Warn records a warning
func (b *Builder) Warn(kind WarningKind, message string, paths ...string) {
	b.p.warnings = append(b.p.warnings, Warning{Kind: kind, Paths: paths, Message: message})
}

// Fail records a blocking error
func (b *Builder) Fail(kind ErrorKind, path, message string) {
	b.p.errors = append(b.p.errors, Error{Kind: kind, Path: path, Message: message})
}

// Summary gives planners access to the action counters
func (b *Builder) Summary() *Summary {
	return &b.p.summary
}

// Actions returns the actions appended so far
func (b *Builder) Actions() []action.Action {
	return b.p.actions
}

// Build freezes the plan. Later calls to the builder panic.
func (b *Builder) Build() *Plan {
	if b.built {
		panic("plan: Build called twice")
	}
	b.built = true
	b.p.summary.Warnings = len(b.p.warnings)
	b.p.summary.Errors = len(b.p.errors)
	p := b.p
	b.p = nil
	return p
}
