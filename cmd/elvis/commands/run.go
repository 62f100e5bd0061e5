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
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/elvis/cmd/elvis/opts"
	"github.com/walteh/elvis/pkg/executor"
	"github.com/walteh/elvis/pkg/log"
	"github.com/walteh/elvis/pkg/plan"
	"github.com/walteh/elvis/pkg/planner"
	"github.com/walteh/elvis/pkg/printer"
	"gitlab.com/tozd/go/errors"
)

// run plans, previews and, once confirmed, applies a command
func run(cmd *cobra.Command, o *opts.RootOpts, p planner.Planner) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	pl := p.Plan(ctx)
	logger.Debug().
		Str("command", string(pl.Metadata().Command)).
		Int("actions", pl.Len()).
		Int("warnings", pl.Summary().Warnings).
		Int("errors", pl.Summary().Errors).
		Msg("plan ready")

	printer.Print(o.Out, pl, o.PrinterOptions())

	ctx = log.NewContext(ctx, log.New(o.Out, *logger))

	if !pl.HasErrors() && pl.Len() == 0 {
		log.FromContext(ctx).Info("nothing to do")
		return nil
	}

	execOpts := o.ExecutorOptions()
	execOpts.Reporter = log.FromContext(ctx)

	err := executor.New(o.FS, execOpts).Execute(ctx, pl)
	return report(ctx, pl, err)
}

// report tells the operator how execution ended and maps the result to the
// error returned from the command
func report(ctx context.Context, pl *plan.Plan, err error) error {
	reporter := log.FromContext(ctx)
	applied := reporter.AppliedCount()

	switch {
	case err == nil:
		reporter.Successf("applied %d actions", applied)
		return nil
	case errors.Is(err, executor.ErrPlanHasErrors):
		return errors.Errorf("plan has %d errors, nothing was changed", pl.Summary().Errors)
	case errors.Is(err, executor.ErrCancelled):
		reporter.Warningf("cancelled, %d actions not applied", pl.Len())
		return err
	case errors.Is(err, executor.ErrStalePlan):
		reporter.Warning("filesystem changed after planning, nothing was changed")
		return err
	default:
		reporter.Error(fmt.Sprintf("stopped after %d of %d actions", applied, pl.Len()))
		return err
	}
}
