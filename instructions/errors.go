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

package instructions

// Sentinal patterns for use with the curated package.
const (
	// the mnemonic list cannot be opened or read
	InputUnreadable = "input unreadable: %v"

	// the mnemonic list has more entries than can be represented by a byte
	InputTooLarge = "input too large: more than %d mnemonics [line %d]"

	// a mnemonic appears more than once in the list
	DuplicateMnemonic = "duplicate mnemonic: %s [lines %d and %d]"

	// the Reserved mnemonic appears in the list
	ReservedMnemonic = "reserved mnemonic: %s cannot be used [line %d]"
)
