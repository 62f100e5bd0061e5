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

	"github.com/rs/zerolog"
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/fsys"
	"github.com/walteh/elvis/pkg/plan"
)

// 👆 Touch plans the creation of empty files
type Touch struct {
	Targets []string
	Env     Env
}

// NewTouch creates a touch planner
func NewTouch(targets []string, env Env) *Touch {
	return &Touch{Targets: targets, Env: env}
}

func (*Touch) planner() {}

// Plan creates a file for every missing target. Existing targets are left
// alone and reported with an overwrite warning.
func (t *Touch) Plan(ctx context.Context) *plan.Plan {
	logger := zerolog.Ctx(ctx)
	b := plan.NewBuilder(plan.CommandTouch, t.Targets, t.Env.Cwd, t.Env.now())
	probe := t.Env.fs()

	for _, target := range t.Env.resolveAll(t.Targets) {
		exists, err := fsys.Exists(probe, target)
		if err != nil {
			// unreadable paths are treated as existing; touch never blocks
			logger.Debug().Err(err).Str("path", target).Msg("probe failed")
			exists = true
		}
		if exists {
			b.Warn(plan.WarningOverwrite, "already exists", target)
			continue
		}

		b.Append(action.Create{Path: target, Kind: action.File})
		b.Summary().FilesCreated++
	}

	return t.Env.finish(ctx, b)
}
