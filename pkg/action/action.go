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

// Package action defines the primitive filesystem mutations a plan is made of.
package action

import (
	"fmt"
)

// 📦 ObjectKind is the kind of filesystem object an action targets or creates
type ObjectKind int

const (
	File ObjectKind = iota
	Directory
	Symlink
)

// String returns a string representation of ObjectKind
func (k ObjectKind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// 🎯 Action is a single primitive filesystem mutation.
//
// The set of implementations is closed: Create, Move, Delete and Modify.
type Action interface {
	// Verb names the mutation ("create", "move", "delete", "modify")
	Verb() string
	// Paths returns every path the action references
	Paths() []string
	String() string

	isAction()
}

// ✨ Create brings a new object into existence
type Create struct {
	Path string
	Kind ObjectKind
}

// 🚚 Move renames or relocates an object. Overwrite records that the
// destination already existed when the plan was made.
type Move struct {
	From      string
	To        string
	Overwrite bool
}

// 🗑️ Delete removes a single object. Planners flatten recursive deletion into
// individual deletes, so Recursive is always false for planned actions.
type Delete struct {
	Path      string
	Kind      ObjectKind
	Recursive bool
}

// 📝 Modify is reserved for in-place mutations. It is not executable yet.
type Modify struct {
	Path        string
	Description string
}

var (
	_ Action = Create{}
	_ Action = Move{}
	_ Action = Delete{}
	_ Action = Modify{}
)

func (Create) isAction() {}
func (Move) isAction()   {}
func (Delete) isAction() {}
func (Modify) isAction() {}

func (Create) Verb() string { return "create" }
func (Move) Verb() string   { return "move" }
func (Delete) Verb() string { return "delete" }
func (Modify) Verb() string { return "modify" }

func (a Create) Paths() []string { return []string{a.Path} }
func (a Move) Paths() []string   { return []string{a.From, a.To} }
func (a Delete) Paths() []string { return []string{a.Path} }
func (a Modify) Paths() []string { return []string{a.Path} }

func (a Create) String() string {
	return fmt.Sprintf("create %s %s", a.Kind, a.Path)
}

func (a Move) String() string {
	if a.Overwrite {
		return fmt.Sprintf("move %s -> %s (overwrite)", a.From, a.To)
	}
	return fmt.Sprintf("move %s -> %s", a.From, a.To)
}

func (a Delete) String() string {
	if a.Recursive {
		return fmt.Sprintf("delete %s %s (recursive)", a.Kind, a.Path)
	}
	return fmt.Sprintf("delete %s %s", a.Kind, a.Path)
}

func (a Modify) String() string {
	return fmt.Sprintf("modify %s (%s)", a.Path, a.Description)
}
