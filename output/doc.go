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

// Package output writes generated files to disk. Files are written in full to
// a temporary file in the destination directory and then renamed over the
// destination. A failed write never leaves a partially written output file
// and never disturbs the previous contents of the destination.
//
// The operating system is accessed through the FS interface. The OS type is
// the implementation used by the application.
package output
