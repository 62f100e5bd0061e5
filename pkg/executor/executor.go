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

// Package executor applies a plan to the filesystem.
//
// Execution is fail-closed and fail-fast: a plan carrying errors is never
// applied, and the first failing action stops the run. Actions that were
// already applied stay applied.
package executor

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/fsys"
	"github.com/walteh/elvis/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrPlanHasErrors is returned when asked to execute a plan with errors
	ErrPlanHasErrors = errors.Base("cannot execute a plan with errors")
	// ErrCancelled is returned when the operator declines confirmation
	ErrCancelled = errors.Base("cancelled by user")
	// ErrStalePlan is returned when the filesystem changed since planning
	ErrStalePlan = errors.Base("filesystem changed since the plan was made")
	// ErrUnsupported is returned for actions that cannot be applied
	ErrUnsupported = errors.Base("unsupported action")
)

// 🙋 Confirmer asks the operator whether a plan should be applied
type Confirmer interface {
	Confirm(ctx context.Context, p *plan.Plan) (bool, error)
}

// 📣 Reporter is told about every action after it was applied
type Reporter interface {
	Applied(ctx context.Context, a action.Action)
}

// 🔧 Options controls execution
type Options struct {
	// AssumeYes skips the confirmation gate
	AssumeYes bool
	// Confirmer is asked once per execution unless AssumeYes is set. A nil
	// Confirmer declines.
	Confirmer Confirmer
	// Revalidate checks the plan against the filesystem before the first mutation
	Revalidate bool
	// Reporter is optional
	Reporter Reporter
}

// 🏃 Executor applies plans
type Executor struct {
	fs   fsys.FS
	opts Options
}

// 🏭 New creates an executor mutating fs
func New(fs fsys.FS, opts Options) *Executor {
	if fs == nil {
		fs = fsys.OS()
	}
	return &Executor{fs: fs, opts: opts}
}

// Execute validates p, asks for confirmation and applies its actions in order
func (e *Executor) Execute(ctx context.Context, p *plan.Plan) error {
	logger := zerolog.Ctx(ctx)

	if err := validate(p); err != nil {
		return err
	}

	if !e.opts.AssumeYes {
		if err := e.confirm(ctx, p); err != nil {
			return err
		}
	}

	if e.opts.Revalidate {
		if err := e.revalidate(p); err != nil {
			return err
		}
	}

	actions := p.Actions()
	for i, a := range actions {
		if err := e.apply(ctx, a); err != nil {
			return errors.Errorf("applying action %d/%d (%s): %w", i+1, len(actions), a, err)
		}
		logger.Debug().Str("action", a.String()).Int("index", i).Msg("applied")
		if e.opts.Reporter != nil {
			e.opts.Reporter.Applied(ctx, a)
		}
	}

	return nil
}

func validate(p *plan.Plan) error {
	if p == nil {
		return errors.Errorf("nil plan")
	}
	if p.HasErrors() {
		return errors.Errorf("%w (%d errors)", ErrPlanHasErrors, len(p.Errors()))
	}
	return nil
}

func (e *Executor) confirm(ctx context.Context, p *plan.Plan) error {
	if e.opts.Confirmer == nil {
		return ErrCancelled
	}
	ok, err := e.opts.Confirmer.Confirm(ctx, p)
	if err != nil {
		return errors.Errorf("asking for confirmation: %w", err)
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}
