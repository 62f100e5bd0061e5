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

// Package confirm asks the operator whether a plan should be applied.
package confirm

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/elvis/pkg/executor"
	"github.com/walteh/elvis/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

var (
	_ executor.Confirmer = (*Prompt)(nil)
	_ executor.Confirmer = Static(false)
)

// 🙋 Prompt asks on the terminal using pterm's interactive confirm
type Prompt struct {
	// Text is the question shown; empty uses a default mentioning the action count
	Text string
	// Default is the answer selected when the operator just presses enter
	Default bool
}

// 🏭 NewPrompt creates a prompt defaulting to "no"
func NewPrompt() *Prompt {
	return &Prompt{}
}

// Confirm shows the prompt and waits for an answer
func (c *Prompt) Confirm(ctx context.Context, p *plan.Plan) (bool, error) {
	text := c.Text
	if text == "" {
		text = fmt.Sprintf("Apply %d actions?", p.Len())
	}

	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(c.Default).
		Show(text)
	if err != nil {
		return false, errors.Errorf("reading confirmation: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Bool("confirmed", ok).Msg("confirmation answered")
	return ok, nil
}

// Static answers every confirmation with the same decision
type Static bool

// Confirm returns the static decision
func (s Static) Confirm(context.Context, *plan.Plan) (bool, error) {
	return bool(s), nil
}
