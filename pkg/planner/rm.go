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
	iofs "io/fs"

	"github.com/rs/zerolog"
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/fsys"
	"github.com/walteh/elvis/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// 🗑️ Rm plans the removal of files and directories
type Rm struct {
	Targets   []string
	Recursive bool
	// Force skips missing targets silently and turns unreadable targets into
	// best-effort deletes
	Force bool
	Env   Env
}

// NewRm creates a remove planner
func NewRm(targets []string, recursive, force bool, env Env) *Rm {
	return &Rm{Targets: targets, Recursive: recursive, Force: force, Env: env}
}

func (*Rm) planner() {}

// Plan deletes every target. Recursive deletes are flattened into one delete
// per object, contents before the directory holding them.
func (r *Rm) Plan(ctx context.Context) *plan.Plan {
	logger := zerolog.Ctx(ctx)
	b := plan.NewBuilder(plan.CommandRm, r.Targets, r.Env.Cwd, r.Env.now())
	probe := r.Env.fs()

	for _, target := range r.Env.resolveAll(r.Targets) {
		info, err := probe.Lstat(target)
		switch {
		case errors.Is(err, iofs.ErrNotExist):
			if !r.Force {
				b.Fail(plan.ErrorNotFound, target, "no such file or directory")
			}
			continue
		case err != nil:
			logger.Debug().Err(err).Str("path", target).Msg("cannot read metadata")
			if !r.Force {
				b.Fail(plan.ErrorPermissionDenied, target, "permission denied")
				continue
			}
			b.Warn(plan.WarningPermissionRisk, "cannot read metadata, attempting removal anyway", target)
			b.Append(action.Delete{Path: target, Kind: action.File})
			b.Summary().FilesDeleted++
			continue
		}

		if !info.IsDir() {
			b.Append(action.Delete{Path: target, Kind: fsys.KindOf(info.Mode())})
			b.Summary().FilesDeleted++
			continue
		}

		if r.Recursive {
			r.planTree(ctx, b, target)
		} else {
			r.planEmptyDir(ctx, b, target)
		}
	}

	return r.Env.finish(ctx, b)
}

func (r *Rm) planTree(ctx context.Context, b *plan.Builder, root string) {
	logger := zerolog.Ctx(ctx)
	b.Warn(plan.WarningRecursiveDelete, "recursive directory deletion", root)

	err := fsys.WalkPostorder(r.Env.fs(), root, func(entry fsys.Entry, err error) {
		if err != nil {
			logger.Debug().Err(err).Str("path", entry.Path).Msg("cannot read directory")
			if !r.Force {
				b.Fail(plan.ErrorPermissionDenied, entry.Path, "cannot read directory")
				return
			}
			b.Warn(plan.WarningPermissionRisk, "cannot read directory contents, attempting removal anyway", entry.Path)
		}

		b.Append(action.Delete{Path: entry.Path, Kind: entry.Kind})
		if entry.Kind == action.Directory {
			b.Summary().DirsDeleted++
		} else {
			b.Summary().FilesDeleted++
		}
	})
	if err != nil {
		b.Fail(plan.ErrorPermissionDenied, root, "cannot read directory")
	}
}

func (r *Rm) planEmptyDir(ctx context.Context, b *plan.Builder, dir string) {
	entries, err := r.Env.fs().ReadDir(dir)
	switch {
	case err != nil && !r.Force:
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", dir).Msg("cannot read directory")
		b.Fail(plan.ErrorPermissionDenied, dir, "cannot read directory")
		return
	case err == nil && len(entries) > 0:
		b.Fail(plan.ErrorUnsupported, dir, "is a directory (use --recursive)")
		return
	}

	b.Append(action.Delete{Path: dir, Kind: action.Directory})
	b.Summary().DirsDeleted++
}
