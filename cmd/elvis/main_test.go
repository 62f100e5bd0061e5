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

package main

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/elvis/cmd/elvis/opts"
	"github.com/walteh/elvis/pkg/confirm"
	"github.com/walteh/elvis/pkg/executor"
	"github.com/walteh/elvis/pkg/fsys"
	"github.com/walteh/elvis/pkg/fsys/fsystest"
)

func runCLI(t *testing.T, dir string, answer bool, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	o := &opts.RootOpts{
		Cwd:       dir,
		Out:       &out,
		FS:        fsys.OS(),
		Confirmer: confirm.Static(answer),
	}
	cmd := newRootCmd(o, io.Discard)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestCLI(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string)
		args        []string
		answer      bool
		wantErr     bool
		errContains string
		wantOut     []string
		notOut      []string
		validate    func(t *testing.T, dir string)
	}{
		{
			name:   "touch",
			args:   []string{"touch", "a.txt"},
			answer: true,
			wantOut: []string{
				"Plan summary:",
				"  Create: 1 files, 0 directories",
				"C  a.txt",
				"applied 1 actions",
			},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "a.txt"))
			},
		},
		{
			name:        "declined",
			args:        []string{"touch", "a.txt"},
			answer:      false,
			wantErr:     true,
			errContains: executor.ErrCancelled.Error(),
			wantOut:     []string{"C  a.txt", "cancelled, 1 actions not applied"},
			validate: func(t *testing.T, dir string) {
				assert.NoFileExists(t, filepath.Join(dir, "a.txt"), "declined plans change nothing")
			},
		},
		{
			name:    "touch_existing_is_nothing_to_do",
			setup:   func(t *testing.T, dir string) { writeFile(t, filepath.Join(dir, "a.txt")) },
			args:    []string{"touch", "a.txt"},
			answer:  false,
			wantOut: []string{"a.txt: already exists", "nothing to do"},
			notOut:  []string{"applied"},
		},
		{
			name:   "assume_yes_flag",
			setup:  func(t *testing.T, dir string) { writeFile(t, filepath.Join(dir, "a.txt")) },
			args:   []string{"mv", "a.txt", "b.txt", "-y"},
			answer: false,
			wantOut: []string{
				"  Move: 1 files",
				"M  a.txt -> b.txt",
			},
			validate: func(t *testing.T, dir string) {
				assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
				assert.FileExists(t, filepath.Join(dir, "b.txt"))
			},
		},
		{
			name: "mv_into_directory",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "a.txt"))
				require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))
			},
			args:    []string{"mv", "a.txt", "b/"},
			answer:  true,
			wantOut: []string{"M  a.txt -> b/a.txt", "Warnings: 0"},
			validate: func(t *testing.T, dir string) {
				assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
				assert.FileExists(t, filepath.Join(dir, "b", "a.txt"))
			},
		},
		{
			name: "rm_with_errors_changes_nothing",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "a.txt"))
			},
			args:        []string{"rm", "a.txt", "ghost"},
			answer:      true,
			wantErr:     true,
			errContains: "plan has 1 errors, nothing was changed",
			wantOut: []string{
				"Errors",
				"  ghost - no such file or directory",
				"Errors: 1",
			},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "a.txt"))
			},
		},
		{
			name: "rm_recursive",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "tree", "a.txt"))
				writeFile(t, filepath.Join(dir, "tree", "sub", "b.txt"))
			},
			args:   []string{"rm", "-r", "tree"},
			answer: true,
			wantOut: []string{
				"  Delete: 2 files, 2 directories",
				"tree: recursive directory deletion",
				"D  tree/sub/b.txt",
				"D  tree/",
				"applied 4 actions",
			},
			validate: func(t *testing.T, dir string) {
				assert.NoDirExists(t, filepath.Join(dir, "tree"))
			},
		},
		{
			name: "rm_force_ignores_missing",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "a.txt"))
			},
			args:    []string{"rm", "-f", "a.txt", "ghost"},
			answer:  true,
			wantOut: []string{"Errors: 0", "applied 1 actions"},
			validate: func(t *testing.T, dir string) {
				assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
			},
		},
		{
			name:    "summary_only",
			args:    []string{"touch", "a.txt", "--summary-only"},
			answer:  true,
			wantOut: []string{"Plan summary:"},
			notOut:  []string{"C  a.txt"},
		},
		{
			name: "config_file_in_working_dir",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".elvis.yaml"), []byte("summary_only: true\nassume_yes: true\n"), 0o644))
			},
			args:    []string{"touch", "a.txt"},
			answer:  false,
			wantOut: []string{"Plan summary:", "applied 1 actions"},
			notOut:  []string{"C  a.txt"},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "a.txt"))
			},
		},
		{
			name: "flags_override_config",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".elvis.yaml"), []byte("summary_only: true\n"), 0o644))
			},
			args:    []string{"touch", "a.txt", "--summary-only=false"},
			answer:  true,
			wantOut: []string{"C  a.txt"},
		},
		{
			name:        "invalid_config",
			setup:       func(t *testing.T, dir string) { require.NoError(t, os.WriteFile(filepath.Join(dir, ".elvis.yaml"), []byte("colour: red\n"), 0o644)) },
			args:        []string{"touch", "a.txt"},
			wantErr:     true,
			errContains: "loading config",
		},
		{
			name:        "invalid_max_entries",
			args:        []string{"touch", "a.txt", "--max-entries", "0"},
			wantErr:     true,
			errContains: "--max-entries",
		},
		{
			name:    "missing_args",
			args:    []string{"mv", "a.txt"},
			wantErr: true,
		},
		{
			name:    "version",
			args:    []string{"version"},
			wantOut: []string{"elvis version info:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			out, err := runCLI(t, dir, tt.answer, tt.args...)

			if tt.wantErr {
				require.Error(t, err, "expected error")
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				}
			} else {
				require.NoError(t, err, "command should succeed, output:\n%s", out)
			}
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want, "output should contain %q", want)
			}
			for _, not := range tt.notOut {
				assert.NotContains(t, out, not, "output should not contain %q", not)
			}
			if tt.validate != nil {
				tt.validate(t, dir)
			}
		})
	}
}

func TestCLIReportsPartialExecution(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "b.txt")
	faulty := fsystest.NewFaulty(fsys.OS()).Fail(fsystest.OpCreateFile, second, fs.ErrPermission)

	var out bytes.Buffer
	o := &opts.RootOpts{Cwd: dir, Out: &out, FS: faulty, Confirmer: confirm.Static(true)}
	cmd := newRootCmd(o, io.Discard)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"touch", "a.txt", "b.txt", "c.txt", "--no-color"})

	err := cmd.ExecuteContext(context.Background())

	require.Error(t, err, "execution should fail")
	assert.ErrorIs(t, err, fs.ErrPermission, "cause should be kept")
	assert.Contains(t, out.String(), "stopped after 1 of 3 actions", "progress should be reported")
	assert.Equal(t, []string{"create " + filepath.Join(dir, "a.txt")}, faulty.Mutations(), "later actions never run")
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion()
	assert.Contains(t, out, "elvis version info:")
	assert.Contains(t, out, GetVersionInfo().GoVersion)
}
