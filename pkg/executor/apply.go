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

package executor

import (
	"context"
	iofs "io/fs"

	"github.com/rs/zerolog"
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/fsys"
	"gitlab.com/tozd/go/errors"
)

func (e *Executor) apply(ctx context.Context, a action.Action) error {
	switch a := a.(type) {
	case action.Create:
		return e.create(a)
	case action.Move:
		return e.move(a)
	case action.Delete:
		return e.delete(a)
	case action.Modify:
		zerolog.Ctx(ctx).Warn().Str("path", a.Path).Str("description", a.Description).Msg("modify is not implemented, skipping")
		return nil
	default:
		return errors.Errorf("%w: %T", ErrUnsupported, a)
	}
}

func (e *Executor) create(a action.Create) error {
	switch a.Kind {
	case action.File:
		return e.fs.CreateFile(a.Path)
	case action.Directory:
		err := e.fs.Mkdir(a.Path)
		if errors.Is(err, iofs.ErrExist) && fsys.IsDir(e.fs, a.Path) {
			return nil
		}
		return err
	default:
		return errors.Errorf("%w: creating a %s", ErrUnsupported, a.Kind)
	}
}

func (e *Executor) move(a action.Move) error {
	if a.Overwrite {
		info, err := e.fs.Lstat(a.To)
		switch {
		case errors.Is(err, iofs.ErrNotExist):
		case err != nil:
			return errors.Errorf("checking overwritten destination: %w", err)
		case info.IsDir():
			// only plain files are replaced
			return errors.Errorf("%w: destination %s is a directory", ErrUnsupported, a.To)
		default:
			if err := e.fs.Remove(a.To); err != nil {
				return errors.Errorf("removing overwritten destination: %w", err)
			}
		}
	}
	return e.fs.Rename(a.From, a.To)
}

func (e *Executor) delete(a action.Delete) error {
	if a.Recursive {
		return errors.Errorf("%w: recursive delete of %s", ErrUnsupported, a.Path)
	}
	return e.fs.Remove(a.Path)
}
