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

// Package fsystest provides filesystem wrappers for tests.
package fsystest

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/walteh/elvis/pkg/fsys"
)

// Op names an fsys.FS method
type Op string

const (
	OpLstat      Op = "lstat"
	OpReadDir    Op = "readdir"
	OpCreateFile Op = "create"
	OpMkdir      Op = "mkdir"
	OpRename     Op = "rename"
	OpRemove     Op = "remove"
)

// Faulty wraps an FS and fails selected operations on selected paths. It
// also records every mutation that reaches the wrapped FS.
type Faulty struct {
	fsys.FS

	mu        sync.Mutex
	faults    map[Op]map[string]error
	mutations []string
}

// NewFaulty wraps base
func NewFaulty(base fsys.FS) *Faulty {
	return &Faulty{FS: base, faults: make(map[Op]map[string]error)}
}

// Fail makes op on path return err
func (f *Faulty) Fail(op Op, path string, err error) *Faulty {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.faults[op] == nil {
		f.faults[op] = make(map[string]error)
	}
	f.faults[op][filepath.Clean(path)] = err
	return f
}

// Mutations returns the mutating calls made so far, as "op path"
func (f *Faulty) Mutations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.mutations...)
}

func (f *Faulty) fault(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faults[op][filepath.Clean(path)]
}

func (f *Faulty) record(op Op, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, string(op)+" "+path)
}

func (f *Faulty) Lstat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *Faulty) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *Faulty) CreateFile(name string) error {
	if err := f.fault(OpCreateFile, name); err != nil {
		return err
	}
	f.record(OpCreateFile, name)
	return f.FS.CreateFile(name)
}

func (f *Faulty) Mkdir(name string) error {
	if err := f.fault(OpMkdir, name); err != nil {
		return err
	}
	f.record(OpMkdir, name)
	return f.FS.Mkdir(name)
}

func (f *Faulty) Rename(oldpath, newpath string) error {
	if err := f.fault(OpRename, oldpath); err != nil {
		return err
	}
	f.record(OpRename, oldpath+" -> "+newpath)
	return f.FS.Rename(oldpath, newpath)
}

func (f *Faulty) Remove(name string) error {
	if err := f.fault(OpRemove, name); err != nil {
		return err
	}
	f.record(OpRemove, name)
	return f.FS.Remove(name)
}
