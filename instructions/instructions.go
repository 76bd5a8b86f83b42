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

import (
	"fmt"
	"io"

	"github.com/jetsetilly/opgen/curated"
)

// MaxOpcodes is the number of opcodes that can be represented by a single
// byte.
const MaxOpcodes = 256

// Reserved is the name of the terminal variant in generated code. It is the
// result of decoding a value that has no instruction assigned to it.
const Reserved Mnemonic = "ERR"

// Mnemonic is the human readable name of an instruction. It is used verbatim
// as an identifier in generated code.
type Mnemonic string

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	Opcode   uint8
	Mnemonic Mnemonic

	// the line in the source file the mnemonic was found on. numbering starts
	// at one
	Line int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("0x%02x %s", defn.Opcode, defn.Mnemonic)
}

// Set is the ordered list of instruction definitions. The opcode of each
// definition is its position in the list.
type Set struct {
	defs   []Definition
	lookup map[Mnemonic]int
}

func newSet() *Set {
	return &Set{
		defs:   make([]Definition, 0, MaxOpcodes),
		lookup: make(map[Mnemonic]int),
	}
}

// add mnemonic to the end of the set, assigning it the next opcode
func (set *Set) add(mnem Mnemonic, line int) error {
	if len(set.defs) >= MaxOpcodes {
		return curated.Errorf(InputTooLarge, MaxOpcodes, line)
	}

	if mnem == Reserved {
		return curated.Errorf(ReservedMnemonic, mnem, line)
	}

	if idx, ok := set.lookup[mnem]; ok {
		return curated.Errorf(DuplicateMnemonic, mnem, set.defs[idx].Line, line)
	}

	set.lookup[mnem] = len(set.defs)
	set.defs = append(set.defs, Definition{
		Opcode:   uint8(len(set.defs)),
		Mnemonic: mnem,
		Line:     line,
	})

	return nil
}

// Len returns the number of instructions in the set.
func (set *Set) Len() int {
	return len(set.defs)
}

// Definitions returns a copy of the instruction definitions in opcode order.
func (set *Set) Definitions() []Definition {
	d := make([]Definition, len(set.defs))
	copy(d, set.defs)
	return d
}

// Mnemonics returns the mnemonics in opcode order.
func (set *Set) Mnemonics() []Mnemonic {
	m := make([]Mnemonic, 0, len(set.defs))
	for _, d := range set.defs {
		m = append(m, d.Mnemonic)
	}
	return m
}

// Lookup returns the definition for the mnemonic.
func (set *Set) Lookup(mnem Mnemonic) (Definition, bool) {
	if idx, ok := set.lookup[mnem]; ok {
		return set.defs[idx], true
	}
	return Definition{}, false
}

// Decode returns the mnemonic for the opcode. Opcodes without an instruction
// decode as the Reserved mnemonic.
func (set *Set) Decode(opcode uint8) Mnemonic {
	if int(opcode) < len(set.defs) {
		return set.defs[opcode].Mnemonic
	}
	return Reserved
}

// List writes every definition in the set, one per line, in opcode order.
func (set *Set) List(output io.Writer) {
	for _, d := range set.defs {
		io.WriteString(output, fmt.Sprintf("%s\n", d))
	}
}

// Summary writes a short description of how much of the opcode space has been
// used.
func (set *Set) Summary(output io.Writer) {
	n := len(set.defs)
	io.WriteString(output, fmt.Sprintf("%d of %d opcodes assigned (%.0f%% of code space used)\n",
		n, MaxOpcodes, float32(100*n)/MaxOpcodes))

	if n == MaxOpcodes {
		io.WriteString(output, "code space is full\n")
	} else {
		io.WriteString(output, fmt.Sprintf("next free opcode: 0x%02x\n", n))
	}
}
