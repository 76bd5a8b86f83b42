// This file is part of Opgen.
//
// Opgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Opgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Opgen.  If not, see <https://www.gnu.org/licenses/>.

package output

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/logger"
)

// File is the part of *os.File used by WriteFile().
type File interface {
	io.Writer
	Name() string
	Sync() error
	Chmod(mode fs.FileMode) error
	Close() error
}

// FS is the part of the os package used by WriteFile().
type FS interface {
	CreateTemp(dir string, pattern string) (File, error)
	Rename(oldpath string, newpath string) error
	Remove(name string) error
}

// OS implements the FS interface with the os package.
type OS struct{}

// CreateTemp implements the FS interface.
func (OS) CreateTemp(dir string, pattern string) (File, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Rename implements the FS interface.
func (OS) Rename(oldpath string, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove implements the FS interface.
func (OS) Remove(name string) error {
	return os.Remove(name)
}

// Permissions of a file written by WriteFile().
const Permissions fs.FileMode = 0o644

// WriteFile writes data to the named file, replacing any existing file.
func WriteFile(fsys FS, filename string, data []byte) error {
	f, err := fsys.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return curated.Errorf(OutputUnwritable, filename, err)
	}
	tmp := f.Name()

	// the temporary file is closed before it is removed. errors from Close()
	// and Remove() are secondary to the error that caused the abort
	abort := func(err error) error {
		_ = f.Close()
		_ = fsys.Remove(tmp)
		return curated.Errorf(OutputUnwritable, filename, err)
	}

	if _, err := f.Write(data); err != nil {
		return abort(err)
	}

	if err := f.Sync(); err != nil {
		return abort(err)
	}

	// CreateTemp() creates files with mode 0600
	if err := f.Chmod(Permissions); err != nil {
		return abort(err)
	}

	if err := f.Close(); err != nil {
		_ = fsys.Remove(tmp)
		return curated.Errorf(OutputUnwritable, filename, err)
	}

	if err := fsys.Rename(tmp, filename); err != nil {
		_ = fsys.Remove(tmp)
		return curated.Errorf(OutputUnwritable, filename, err)
	}

	logger.Logf(logger.Allow, "output", "%d bytes written to %s", len(data), filename)

	return nil
}
