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

package generator

// Sentinal patterns for use with the curated package.
const (
	// a mnemonic or package name cannot be used as an identifier in the
	// target language
	InvalidIdentifier = "invalid identifier: %s cannot be used in %s output [line %d]"

	// the package name given for Go output is not an identifier
	InvalidPackage = "invalid identifier: %s is not a valid Go package name"

	// the named target is not recognised
	UnknownTarget = "unknown target: %s (available targets: %s)"

	// the generated code could not be formatted. this shouldn't happen if
	// identifiers have been checked correctly
	InvalidOutput = "invalid output: %v"
)
