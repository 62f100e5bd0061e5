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

// Package fsys provides the filesystem probes planners rely on and the
// mutations the executor applies.
package fsys

import (
	"io/fs"
	"os"

	"github.com/walteh/elvis/pkg/action"
	"gitlab.com/tozd/go/errors"
)

// 💾 FS is the set of filesystem primitives elvis needs
type FS interface {
	// Probes
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Mutations
	CreateFile(name string) error
	Mkdir(name string) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// osFS implements FS using the os package
type osFS struct{}

// 🏭 OS returns the real filesystem
func OS() FS {
	return osFS{}
}

func (osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// ReadDir returns entries sorted by filename
func (osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// CreateFile creates name, truncating it if it already exists
func (osFS) CreateFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	return f.Close()
}

func (osFS) Mkdir(name string) error {
	return os.Mkdir(name, 0o755)
}

func (osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove removes a file, a symlink or an empty directory
func (osFS) Remove(name string) error {
	return os.Remove(name)
}

// 🔍 Exists reports whether name exists without following symlinks. A
// non-nil error means existence could not be determined.
func Exists(fsys FS, name string) (bool, error) {
	_, err := fsys.Lstat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking existence of %s: %w", name, err)
}

// IsDir reports whether name exists and is a directory (symlinks are not followed)
func IsDir(fsys FS, name string) bool {
	info, err := fsys.Lstat(name)
	return err == nil && info.IsDir()
}

// KindOf maps a file mode to the object kind it describes
func KindOf(mode fs.FileMode) action.ObjectKind {
	switch {
	case mode.IsDir():
		return action.Directory
	case mode&fs.ModeSymlink != 0:
		return action.Symlink
	default:
		return action.File
	}
}
