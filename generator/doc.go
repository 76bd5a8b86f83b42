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

// Package generator renders an instruction Set as source code. Three pieces of
// code, or artifacts, are produced:
//
//  1. the enumeration of opcodes, with the reserved ERR variant last
//  2. the conversion from a byte to an opcode, with ERR as the fallback
//  3. the dispatch skeleton, one empty case per instruction
//
// All three are built in a single pass over the Set so they can never
// disagree about which opcode belongs to which mnemonic.
//
// The syntax of the artifacts is decided by the Target. The Go target is the
// default and its output is passed through go/format. The Rust target
// produces an enum, a From<u8> implementation and a list of match arms.
//
// Generation is a pure function of the Set and the Target. Generating twice
// from the same Set produces byte-identical output.
package generator
