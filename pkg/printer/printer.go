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

// Package printer renders a plan preview for the operator. It only reads the
// plan.
package printer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/plan"
)

// DefaultMaxEntries is the number of actions listed per group
const DefaultMaxEntries = 50

// 🎨 Options controls rendering
type Options struct {
	// SummaryOnly hides warnings and actions
	SummaryOnly bool
	// MaxEntries limits the actions listed per group; 0 means DefaultMaxEntries
	MaxEntries int
	// Cwd is stripped from displayed paths
	Cwd string
	// UseColor enables ANSI colors
	UseColor bool
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions(cwd string) Options {
	return Options{MaxEntries: DefaultMaxEntries, Cwd: cwd, UseColor: true}
}

// group order is fixed so output is stable
var groups = []string{"create", "modify", "move", "delete"}

type printer struct {
	w    io.Writer
	opts Options

	red, green, yellow, bold *color.Color
}

// 🖨️ Print writes errors, the summary and, unless SummaryOnly is set, the
// warnings and the actions grouped by verb
func Print(w io.Writer, p *plan.Plan, opts Options) {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	pr := &printer{
		w:      w,
		opts:   opts,
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{pr.red, pr.green, pr.yellow, pr.bold} {
		if opts.UseColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	pr.errors(p)
	pr.summary(p)
	if opts.SummaryOnly {
		return
	}
	pr.warnings(p)
	pr.actions(p)
}

func (pr *printer) errors(p *plan.Plan) {
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(pr.w, pr.red.Sprint("Errors"))
	for _, e := range errs {
		if e.Path == "" {
			fmt.Fprintf(pr.w, "  - %s\n", e.Message)
			continue
		}
		fmt.Fprintf(pr.w, "  %s - %s\n", pr.rel(e.Path), e.Message)
	}
	fmt.Fprintln(pr.w)
}

func (pr *printer) summary(p *plan.Plan) {
	s := p.Summary()
	fmt.Fprintln(pr.w, pr.bold.Sprint("Plan summary:"))
	if s.FilesDeleted > 0 || s.DirsDeleted > 0 {
		fmt.Fprintf(pr.w, "  Delete: %d files, %d directories\n", s.FilesDeleted, s.DirsDeleted)
	}
	if s.FilesCreated > 0 || s.DirsCreated > 0 {
		fmt.Fprintf(pr.w, "  Create: %d files, %d directories\n", s.FilesCreated, s.DirsCreated)
	}
	if s.FilesMoved > 0 {
		fmt.Fprintf(pr.w, "  Move: %d files\n", s.FilesMoved)
	}
	fmt.Fprintf(pr.w, "Warnings: %d\n", s.Warnings)
	fmt.Fprintf(pr.w, "Errors: %d\n", s.Errors)
	fmt.Fprintln(pr.w)
}

func (pr *printer) warnings(p *plan.Plan) {
	warns := p.Warnings()
	if len(warns) == 0 {
		return
	}
	fmt.Fprintln(pr.w, pr.yellow.Sprint("Warnings"))
	for _, w := range warns {
		if len(w.Paths) == 0 {
			fmt.Fprintf(pr.w, "  - %s\n", w.Message)
			continue
		}
		paths := make([]string, len(w.Paths))
		for i, path := range w.Paths {
			paths[i] = pr.rel(path)
		}
		fmt.Fprintf(pr.w, "  - %s: %s\n", strings.Join(paths, ", "), w.Message)
	}
	fmt.Fprintln(pr.w)
}

func (pr *printer) actions(p *plan.Plan) {
	byVerb := make(map[string][]action.Action)
	for _, a := range p.Actions() {
		byVerb[a.Verb()] = append(byVerb[a.Verb()], a)
	}

	for _, verb := range groups {
		list := byVerb[verb]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(pr.w, "%s:\n", strings.ToUpper(verb[:1])+verb[1:])

		limit := min(pr.opts.MaxEntries, len(list))
		for _, a := range list[:limit] {
			fmt.Fprintln(pr.w, pr.line(a))
		}
		if len(list) > limit {
			fmt.Fprintf(pr.w, "  ... (%d more)\n", len(list)-limit)
		}
		fmt.Fprintln(pr.w)
	}
}

func (pr *printer) line(a action.Action) string {
	switch a := a.(type) {
	case action.Create:
		return fmt.Sprintf("%s  %s%s", pr.green.Sprint("C"), pr.rel(a.Path), suffix(a.Kind))
	case action.Modify:
		return fmt.Sprintf("%s  %s (%s)", pr.yellow.Sprint("M"), pr.rel(a.Path), a.Description)
	case action.Move:
		line := fmt.Sprintf("%s  %s -> %s", pr.yellow.Sprint("M"), pr.rel(a.From), pr.rel(a.To))
		if a.Overwrite {
			line += pr.red.Sprint(" (overwrite)")
		}
		return line
	case action.Delete:
		return fmt.Sprintf("%s  %s%s", pr.red.Sprint("D"), pr.rel(a.Path), suffix(a.Kind))
	default:
		return a.String()
	}
}

func (pr *printer) rel(path string) string {
	if pr.opts.Cwd == "" {
		return path
	}
	rel, err := filepath.Rel(pr.opts.Cwd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func suffix(kind action.ObjectKind) string {
	if kind == action.Directory {
		return "/"
	}
	return ""
}
