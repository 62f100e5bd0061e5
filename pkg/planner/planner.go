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

package planner

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/walteh/elvis/pkg/fsys"
	"github.com/walteh/elvis/pkg/plan"
)

// 🎯 Planner turns command intent plus the current filesystem state into a
// plan. Planners only probe the filesystem and never fail: problems are
// recorded as plan errors.
//
// Implemented by *Touch, *Mv and *Rm only.
type Planner interface {
	Plan(ctx context.Context) *plan.Plan

	planner()
}

var (
	_ Planner = (*Touch)(nil)
	_ Planner = (*Mv)(nil)
	_ Planner = (*Rm)(nil)
)

// 🔧 Env carries everything a planner would otherwise read from the process
type Env struct {
	// Cwd is the working directory relative paths are resolved against
	Cwd string
	// Now is the clock used for plan metadata
	Now func() time.Time
	// FS is probed for existence, kind and directory contents
	FS fsys.FS
	// Policy adds warnings after planning
	Policy Policy
}

// DefaultEnv returns an Env using the real filesystem and clock
func DefaultEnv(cwd string) Env {
	return Env{
		Cwd:    cwd,
		Now:    time.Now,
		FS:     fsys.OS(),
		Policy: DefaultPolicy(),
	}
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Time{}
	}
	return e.Now()
}

func (e Env) fs() fsys.FS {
	if e.FS == nil {
		return fsys.OS()
	}
	return e.FS
}

// resolve makes path absolute against the working directory
func (e Env) resolve(path string) string {
	if filepath.IsAbs(path) || e.Cwd == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(e.Cwd, path)
}

func (e Env) resolveAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = e.resolve(p)
	}
	return out
}

// finish runs the policy pass and freezes the plan
func (e Env) finish(ctx context.Context, b *plan.Builder) *plan.Plan {
	e.Policy.apply(ctx, b)
	return b.Build()
}

// isWithin reports whether path is root or lies below it
func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
