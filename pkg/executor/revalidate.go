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

package executor

import (
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/fsys"
	"github.com/walteh/elvis/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// revalidate compares the plan with the filesystem as it is now. Only the
// preconditions that hold before any action runs are checked: paths a plan
// reads must still exist and paths it creates without overwriting must still
// be absent.
func (e *Executor) revalidate(p *plan.Plan) error {
	for _, a := range p.Actions() {
		var (
			mustExist  string
			mustAbsent string
		)
		switch a := a.(type) {
		case action.Create:
			if a.Kind == action.File {
				mustAbsent = a.Path
			}
		case action.Move:
			mustExist = a.From
			if !a.Overwrite {
				mustAbsent = a.To
			}
		case action.Delete:
			mustExist = a.Path
		}

		if mustExist != "" {
			// unreadable paths were accepted at planning time under force
			if ok, err := fsys.Exists(e.fs, mustExist); err == nil && !ok {
				return errors.Errorf("%w: %s no longer exists", ErrStalePlan, mustExist)
			}
		}
		if mustAbsent != "" {
			if ok, _ := fsys.Exists(e.fs, mustAbsent); ok {
				return errors.Errorf("%w: %s now exists", ErrStalePlan, mustAbsent)
			}
		}
	}
	return nil
}
