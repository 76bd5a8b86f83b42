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

// Package ledger records the opcode assigned to each mnemonic by a successful
// generation. Code that has been assembled against a generated table depends
// on those assignments so the ledger is used to detect an instruction list
// that has been reordered or from which a mnemonic has been removed.
//
// Appending new mnemonics to the end of the instruction list does not
// change the opcode of any existing mnemonic and is always accepted.
//
// The ledger is stored as a YAML file, in opcode order:
//
//	opcodes:
//	    - mnemonic: HLT
//	      opcode: 0
//	    - mnemonic: NOP
//	      opcode: 1
//
// The file is intended to be committed alongside the instruction list.
package ledger
