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

// Package plan holds the result of planning a command: an ordered list of
// actions together with the warnings and errors found while planning.
package plan

import (
	"fmt"
	"slices"
	"time"

	"github.com/walteh/elvis/pkg/action"
)

// 🎯 Command identifies the command a plan was made for
type Command string

const (
	CommandTouch Command = "touch"
	CommandMv    Command = "mv"
	CommandRm    Command = "rm"
)

// 📋 Metadata describes the invocation that produced a plan
type Metadata struct {
	Command    Command
	Args       []string
	WorkingDir string
	CreatedAt  time.Time
}

// 📊 Summary holds counters over the plan contents
type Summary struct {
	FilesDeleted int
	DirsDeleted  int
	FilesCreated int
	DirsCreated  int
	FilesMoved   int
	Warnings     int
	Errors       int
}

// WarningKind classifies a non-blocking finding
type WarningKind int

const (
	WarningOverwrite WarningKind = iota
	WarningRecursiveDelete
	WarningLargeOperation
	WarningPermissionRisk
)

func (k WarningKind) String() string {
	switch k {
	case WarningOverwrite:
		return "overwrite"
	case WarningRecursiveDelete:
		return "recursive-delete"
	case WarningLargeOperation:
		return "large-operation"
	case WarningPermissionRisk:
		return "permission-risk"
	default:
		return "unknown"
	}
}

// ⚠️ Warning is informational and never blocks execution
type Warning struct {
	Kind    WarningKind
	Paths   []string
	Message string
}

// ErrorKind classifies a blocking finding
type ErrorKind int

const (
	ErrorNotFound ErrorKind = iota
	ErrorPermissionDenied
	ErrorInvalidPath
	ErrorUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorNotFound:
		return "not-found"
	case ErrorPermissionDenied:
		return "permission-denied"
	case ErrorInvalidPath:
		return "invalid-path"
	case ErrorUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// ❌ Error blocks execution of the plan it belongs to. Path is empty when the
// error is not tied to a single path.
type Error struct {
	Kind    ErrorKind
	Path    string
	Message string
}

func (e Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// 📦 Plan is the immutable outcome of planning one command
type Plan struct {
	metadata Metadata
	actions  []action.Action
	warnings []Warning
	errors   []Error
	summary  Summary
}

func (p *Plan) Metadata() Metadata { return p.metadata }

// Actions returns the actions in the order they must be applied
func (p *Plan) Actions() []action.Action { return slices.Clone(p.actions) }

func (p *Plan) Warnings() []Warning { return slices.Clone(p.warnings) }

func (p *Plan) Errors() []Error { return slices.Clone(p.errors) }

func (p *Plan) Summary() Summary { return p.summary }

// HasErrors reports whether the plan must not be executed
func (p *Plan) HasErrors() bool { return len(p.errors) > 0 }

// Len returns the number of actions
func (p *Plan) Len() int { return len(p.actions) }
