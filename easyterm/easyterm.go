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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It answers
// the one question opgen has about its output, namely whether it is a
// terminal and can therefore be coloured with the sequences in the ansi
// sub-package.
package easyterm

import "os"

// IsTerminal returns true if the file is connected to a terminal. On
// platforms without termios support the function always returns false.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	// regular files and pipes can never be terminals so we don't need to ask
	// termios about them
	info, err := f.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return false
	}

	return isTerminal(f.Fd())
}
