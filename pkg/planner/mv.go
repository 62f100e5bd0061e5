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
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/fsys"
	"github.com/walteh/elvis/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// 🚚 Mv plans moving one or more sources to a target
type Mv struct {
	Sources []string
	Target  string
	// Force is accepted for command-line parity; it does not change planning
	Force bool
	Env   Env
}

// NewMv creates a move planner
func NewMv(sources []string, target string, force bool, env Env) *Mv {
	return &Mv{Sources: sources, Target: target, Force: force, Env: env}
}

func (*Mv) planner() {}

// Plan relocates every source. Directory sources are mirrored at the
// destination (directories created parents first, files moved) and the
// emptied source tree is then removed deepest-first.
func (m *Mv) Plan(ctx context.Context) *plan.Plan {
	args := append(append([]string{}, m.Sources...), m.Target)
	b := plan.NewBuilder(plan.CommandMv, args, m.Env.Cwd, m.Env.now())
	probe := m.Env.fs()

	target := m.Env.resolve(m.Target)
	targetExists, err := fsys.Exists(probe, target)
	if err != nil {
		b.Fail(plan.ErrorPermissionDenied, target, "cannot read target")
		return m.Env.finish(ctx, b)
	}
	targetIsDir := targetExists && fsys.IsDir(probe, target)

	if len(m.Sources) > 1 {
		switch {
		case !targetExists:
			b.Fail(plan.ErrorNotFound, target, "target does not exist")
			return m.Env.finish(ctx, b)
		case !targetIsDir:
			b.Fail(plan.ErrorInvalidPath, target, "target must be a directory when moving multiple sources")
			return m.Env.finish(ctx, b)
		}
	}

	for _, src := range m.Env.resolveAll(m.Sources) {
		info, err := probe.Lstat(src)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				b.Fail(plan.ErrorNotFound, src, "source does not exist")
			} else {
				b.Fail(plan.ErrorPermissionDenied, src, "cannot read source")
			}
			continue
		}

		if info.IsDir() {
			dest := target
			if targetIsDir {
				dest = filepath.Join(target, filepath.Base(src))
			}
			m.planDir(ctx, b, src, dest)
			continue
		}

		dest := target
		if len(m.Sources) > 1 || targetIsDir {
			dest = filepath.Join(target, filepath.Base(src))
		}
		m.planFile(b, src, dest)
	}

	return m.Env.finish(ctx, b)
}

func (m *Mv) planFile(b *plan.Builder, src, dest string) {
	if src == dest {
		b.Fail(plan.ErrorInvalidPath, src, "source and destination are the same")
		return
	}
	b.Append(action.Move{From: src, To: dest, Overwrite: m.overwrites(b, dest)})
	b.Summary().FilesMoved++
}

// overwrites records an overwrite warning when dest already exists
func (m *Mv) overwrites(b *plan.Builder, dest string) bool {
	exists, _ := fsys.Exists(m.Env.fs(), dest)
	if exists {
		b.Warn(plan.WarningOverwrite, "destination will be overwritten", dest)
	}
	return exists
}

func (m *Mv) planDir(ctx context.Context, b *plan.Builder, src, destRoot string) {
	logger := zerolog.Ctx(ctx)
	probe := m.Env.fs()

	switch {
	case src == destRoot:
		b.Fail(plan.ErrorInvalidPath, src, "source and destination are the same")
		return
	case isWithin(src, destRoot):
		b.Fail(plan.ErrorInvalidPath, src, fmt.Sprintf("cannot move a directory into itself (%s)", destRoot))
		return
	}
	if exists, _ := fsys.Exists(probe, destRoot); exists && !fsys.IsDir(probe, destRoot) {
		b.Fail(plan.ErrorInvalidPath, destRoot, "destination exists and is not a directory")
		return
	}

	// collect first so that a partially unreadable tree plans nothing
	var (
		entries    []fsys.Entry
		unreadable bool
	)
	err := fsys.WalkPreorder(probe, src, func(entry fsys.Entry, err error) {
		if err != nil {
			logger.Debug().Err(err).Str("path", entry.Path).Msg("cannot read directory")
			b.Fail(plan.ErrorPermissionDenied, entry.Path, "cannot read directory")
			unreadable = true
			return
		}
		entries = append(entries, entry)
	})
	if err != nil {
		b.Fail(plan.ErrorPermissionDenied, src, "cannot read source")
		return
	}
	if unreadable {
		return
	}

	var dirs []string
	for _, entry := range entries {
		dest := filepath.Join(destRoot, entry.Rel)

		if entry.Kind == action.Directory {
			b.Append(action.Create{Path: dest, Kind: action.Directory})
			if exists, _ := fsys.Exists(probe, dest); !exists {
				b.Summary().DirsCreated++
			}
			dirs = append(dirs, entry.Path)
			continue
		}

		b.Append(action.Move{From: entry.Path, To: dest, Overwrite: m.overwrites(b, dest)})
		b.Summary().FilesMoved++
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		b.Append(action.Delete{Path: dirs[i], Kind: action.Directory})
		b.Summary().DirsDeleted++
	}
}
