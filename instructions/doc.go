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

// Package instructions reads the hand-maintained list of instruction mnemonics
// and assigns each one its opcode.
//
// The list is a plain text file with one mnemonic per line. Leading and
// trailing white space is removed and blank lines are ignored. There is no
// other syntax: no comments and no header.
//
// Opcodes are assigned in file order, starting at zero. The order of the file
// is therefore the versioning contract for the instruction set. Moving or
// removing a line renumbers every following instruction; the ledger package
// can be used to detect that.
//
// An opcode is a single byte so a Set can hold at most MaxOpcodes mnemonics.
// Duplicate mnemonics are rejected, as is the Reserved mnemonic, which is
// used by generated code to indicate a value that does not decode to an
// instruction.
package instructions
