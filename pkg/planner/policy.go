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
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/elvis/pkg/plan"
)

// DefaultLargeOperationThreshold is the action count above which a plan is
// flagged as a large operation
const DefaultLargeOperationThreshold = 1000

// 🛡️ Policy adds warnings to a finished plan. It never adds errors.
type Policy struct {
	// LargeOperationThreshold flags plans with more actions than this; 0 disables
	LargeOperationThreshold int
	// Protected holds doublestar patterns matched against absolute action
	// paths, slash-separated and without the leading slash
	Protected []string
}

// DefaultPolicy flags plans over DefaultLargeOperationThreshold actions and
// anything inside a git directory
func DefaultPolicy() Policy {
	return Policy{
		LargeOperationThreshold: DefaultLargeOperationThreshold,
		Protected:               []string{"**/.git", "**/.git/**"},
	}
}

func (p Policy) apply(ctx context.Context, b *plan.Builder) {
	actions := b.Actions()

	if p.LargeOperationThreshold > 0 && len(actions) > p.LargeOperationThreshold {
		b.Warn(plan.WarningLargeOperation,
			fmt.Sprintf("plan contains %d actions (threshold %d)", len(actions), p.LargeOperationThreshold))
	}

	if len(p.Protected) == 0 {
		return
	}

	seen := make(map[string]bool)
	for _, a := range actions {
		for _, path := range a.Paths() {
			if seen[path] {
				continue
			}
			seen[path] = true
			if pattern, ok := p.match(ctx, path); ok {
				b.Warn(plan.WarningPermissionRisk,
					fmt.Sprintf("%s touches a protected path (%s)", a.Verb(), pattern), path)
			}
		}
	}
}

// match returns the first protected pattern matching path
func (p Policy) match(ctx context.Context, path string) (string, bool) {
	name := strings.TrimPrefix(filepath.ToSlash(path), "/")
	for _, pattern := range p.Protected {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("pattern", pattern).Msg("skipping invalid protected pattern")
			continue
		}
		if ok {
			return pattern, true
		}
	}
	return "", false
}
