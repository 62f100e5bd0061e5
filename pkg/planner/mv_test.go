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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/plan"
)

func TestMvFiles(t *testing.T) {
	tests := []struct {
		name    string
		setup   []string
		sources []string
		target  string
		want    func(dir string) []action.Action
		errors  []plan.ErrorKind
		warns   int
	}{
		{
			name:    "rename_to_missing_path",
			setup:   []string{"a.txt"},
			sources: []string{"a.txt"},
			target:  "b.txt",
			want: func(dir string) []action.Action {
				return []action.Action{action.Move{From: filepath.Join(dir, "a.txt"), To: filepath.Join(dir, "b.txt")}}
			},
		},
		{
			name:    "rename_over_existing_file",
			setup:   []string{"a.txt", "b.txt"},
			sources: []string{"a.txt"},
			target:  "b.txt",
			warns:   1,
			want: func(dir string) []action.Action {
				return []action.Action{action.Move{From: filepath.Join(dir, "a.txt"), To: filepath.Join(dir, "b.txt"), Overwrite: true}}
			},
		},
		{
			name:    "file_into_directory",
			setup:   []string{"a.txt", "b/"},
			sources: []string{"a.txt"},
			target:  "b",
			want: func(dir string) []action.Action {
				return []action.Action{action.Move{From: filepath.Join(dir, "a.txt"), To: filepath.Join(dir, "b", "a.txt")}}
			},
		},
		{
			name:    "several_files_into_directory",
			setup:   []string{"a.txt", "c.txt", "b/", "b/c.txt"},
			sources: []string{"a.txt", "c.txt"},
			target:  "b",
			warns:   1,
			want: func(dir string) []action.Action {
				return []action.Action{
					action.Move{From: filepath.Join(dir, "a.txt"), To: filepath.Join(dir, "b", "a.txt")},
					action.Move{From: filepath.Join(dir, "c.txt"), To: filepath.Join(dir, "b", "c.txt"), Overwrite: true},
				}
			},
		},
		{
			name:    "several_sources_missing_target",
			setup:   []string{"a.txt", "c.txt"},
			sources: []string{"a.txt", "c.txt"},
			target:  "nope",
			errors:  []plan.ErrorKind{plan.ErrorNotFound},
		},
		{
			name:    "several_sources_file_target",
			setup:   []string{"a.txt", "c.txt", "t.txt"},
			sources: []string{"a.txt", "c.txt"},
			target:  "t.txt",
			errors:  []plan.ErrorKind{plan.ErrorInvalidPath},
		},
		{
			name:    "missing_source_does_not_stop_others",
			setup:   []string{"a.txt", "b/"},
			sources: []string{"ghost.txt", "a.txt"},
			target:  "b",
			errors:  []plan.ErrorKind{plan.ErrorNotFound},
			want: func(dir string) []action.Action {
				return []action.Action{action.Move{From: filepath.Join(dir, "a.txt"), To: filepath.Join(dir, "b", "a.txt")}}
			},
		},
		{
			name:    "source_equals_destination",
			setup:   []string{"a.txt"},
			sources: []string{"a.txt"},
			target:  "a.txt",
			errors:  []plan.ErrorKind{plan.ErrorInvalidPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			layout(t, dir, tt.setup...)

			p := NewMv(tt.sources, tt.target, false, testEnv(dir)).Plan(context.Background())

			var kinds []plan.ErrorKind
			for _, e := range p.Errors() {
				kinds = append(kinds, e.Kind)
			}
			assert.Equal(t, tt.errors, kinds, "error kinds should match")
			assert.Len(t, warningsOf(p, plan.WarningOverwrite), tt.warns, "overwrite warnings should match")
			assertCountsConsistent(t, p)

			var want []action.Action
			if tt.want != nil {
				want = tt.want(dir)
			}
			if want == nil {
				assert.Empty(t, p.Actions(), "no actions expected")
			} else {
				assert.Equal(t, want, p.Actions(), "actions should match")
			}
			assert.Equal(t, len(want), p.Summary().FilesMoved, "moved count should match actions")
		})
	}
}

func TestMvDirectory(t *testing.T) {
	dir := t.TempDir()
	layout(t, dir, "src/a.txt", "src/empty/", "src/sub/b.txt", "src/sub/deep/c.txt")

	p := NewMv([]string{"src"}, "dst", false, testEnv(dir)).Plan(context.Background())
	require.False(t, p.HasErrors(), "plan should have no errors: %v", p.Errors())

	src := func(rel string) string { return filepath.Join(dir, "src", filepath.FromSlash(rel)) }
	dst := func(rel string) string { return filepath.Join(dir, "dst", filepath.FromSlash(rel)) }

	assert.Equal(t, []action.Action{
		action.Create{Path: dst("."), Kind: action.Directory},
		action.Move{From: src("a.txt"), To: dst("a.txt")},
		action.Create{Path: dst("empty"), Kind: action.Directory},
		action.Create{Path: dst("sub"), Kind: action.Directory},
		action.Move{From: src("sub/b.txt"), To: dst("sub/b.txt")},
		action.Create{Path: dst("sub/deep"), Kind: action.Directory},
		action.Move{From: src("sub/deep/c.txt"), To: dst("sub/deep/c.txt")},
		action.Delete{Path: src("sub/deep"), Kind: action.Directory},
		action.Delete{Path: src("sub"), Kind: action.Directory},
		action.Delete{Path: src("empty"), Kind: action.Directory},
		action.Delete{Path: src("."), Kind: action.Directory},
	}, p.Actions(), "directory move should create preorder and delete postorder")

	s := p.Summary()
	assert.Equal(t, 3, s.FilesMoved, "three files should move")
	assert.Equal(t, 4, s.DirsCreated, "four directories should be created")
	assert.Equal(t, 4, s.DirsDeleted, "every source directory including the root should be deleted")
}

func TestMvDirectoryOrdering(t *testing.T) {
	dir := t.TempDir()
	layout(t, dir, "src/x/y/z/f.txt", "src/x/g.txt", "src/h.txt", "out/")

	p := NewMv([]string{"src"}, "out", false, testEnv(dir)).Plan(context.Background())
	require.False(t, p.HasErrors(), "plan should have no errors")

	actions := p.Actions()
	srcRoot := filepath.Join(dir, "src")
	for i, a := range actions {
		c, ok := a.(action.Create)
		if !ok {
			continue
		}
		assert.True(t, strings.HasPrefix(c.Path, filepath.Join(dir, "out", "src")), "destination should be out/src")
		for j, other := range actions {
			if j > i {
				continue
			}
			if m, ok := other.(action.Move); ok && strings.HasPrefix(m.To, c.Path+string(filepath.Separator)) {
				t.Errorf("move %s at %d precedes creation of its directory %s at %d", m.To, j, c.Path, i)
			}
		}
	}

	var dirDeletes int
	for i, a := range actions {
		d, ok := a.(action.Delete)
		if !ok {
			continue
		}
		dirDeletes++
		for j, other := range actions {
			if j <= i {
				continue
			}
			for _, path := range other.Paths() {
				if strings.HasPrefix(path, d.Path+string(filepath.Separator)) && strings.HasPrefix(path, srcRoot) {
					t.Errorf("action %s at %d touches %s after it was deleted at %d", other, j, d.Path, i)
				}
			}
		}
	}
	assert.Equal(t, 4, dirDeletes, "src, x, y and z should be deleted")
}

func TestMvDirectoryIntoExistingTree(t *testing.T) {
	dir := t.TempDir()
	layout(t, dir, "src/a.txt", "dst/src/a.txt")

	p := NewMv([]string{"src"}, "dst", false, testEnv(dir)).Plan(context.Background())
	require.False(t, p.HasErrors(), "plan should have no errors")

	assert.Zero(t, p.Summary().DirsCreated, "existing destination directory should not be counted")
	assert.Equal(t, action.Create{Path: filepath.Join(dir, "dst", "src"), Kind: action.Directory}, p.Actions()[0],
		"directory create is still planned")
	assert.Contains(t, p.Actions(), action.Move{
		From:      filepath.Join(dir, "src", "a.txt"),
		To:        filepath.Join(dir, "dst", "src", "a.txt"),
		Overwrite: true,
	}, "existing file should be overwritten")
	assert.Len(t, warningsOf(p, plan.WarningOverwrite), 1, "one overwrite warning expected")
}

func TestMvDirectoryInvalid(t *testing.T) {
	tests := []struct {
		name   string
		setup  []string
		source string
		target string
	}{
		{name: "into_itself", setup: []string{"src/sub/"}, source: "src", target: filepath.Join("src", "sub")},
		{name: "onto_a_file", setup: []string{"src/a.txt", "dst"}, source: "src", target: "dst"},
		{name: "onto_a_file_inside_target", setup: []string{"src/a.txt", "dst/src"}, source: "src", target: "dst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			layout(t, dir, tt.setup...)

			p := NewMv([]string{tt.source}, tt.target, false, testEnv(dir)).Plan(context.Background())

			require.Len(t, p.Errors(), 1, "one error expected")
			assert.Equal(t, plan.ErrorInvalidPath, p.Errors()[0].Kind, "error should be invalid path")
			assert.Empty(t, p.Actions(), "nothing should be planned")
		})
	}
}
