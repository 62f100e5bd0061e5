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

package fsys

import (
	"path/filepath"

	"github.com/walteh/elvis/pkg/action"
)

// 📄 Entry is one object visited during a walk
type Entry struct {
	Path string
	// Rel is Path relative to the walk root ("." for the root itself)
	Rel  string
	Kind action.ObjectKind
}

// WalkFunc is called for every visited entry. err is non-nil when the entry
// is a directory whose contents could not be read; the walk then continues
// without descending into it.
type WalkFunc func(entry Entry, err error)

// 🌳 WalkPreorder visits root and everything below it, each directory before
// its contents. Symlinks are reported but never followed.
func WalkPreorder(fsys FS, root string, fn WalkFunc) error {
	info, err := fsys.Lstat(root)
	if err != nil {
		return err
	}
	walk(fsys, root, root, KindOf(info.Mode()), false, fn)
	return nil
}

// 🍂 WalkPostorder visits root and everything below it, each directory after
// its contents. Symlinks are reported but never followed.
func WalkPostorder(fsys FS, root string, fn WalkFunc) error {
	info, err := fsys.Lstat(root)
	if err != nil {
		return err
	}
	walk(fsys, root, root, KindOf(info.Mode()), true, fn)
	return nil
}

func walk(fsys FS, root, path string, kind action.ObjectKind, contentsFirst bool, fn WalkFunc) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	entry := Entry{Path: path, Rel: rel, Kind: kind}

	if kind != action.Directory {
		fn(entry, nil)
		return
	}

	children, readErr := fsys.ReadDir(path)
	if readErr != nil {
		fn(entry, readErr)
		return
	}

	if !contentsFirst {
		fn(entry, nil)
	}
	for _, child := range children {
		walk(fsys, root, filepath.Join(path, child.Name()), KindOf(child.Type()), contentsFirst, fn)
	}
	if contentsFirst {
		fn(entry, nil)
	}
}
