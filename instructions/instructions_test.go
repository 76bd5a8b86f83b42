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

package instructions_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/instructions"
	"github.com/jetsetilly/opgen/test"
)

// numbered returns n unique mnemonics
func numbered(n int) []string {
	m := make([]string, n)
	for i := range m {
		m[i] = fmt.Sprintf("OP%03d", i)
	}
	return m
}

func TestParse(t *testing.T) {
	set, err := instructions.Parse(strings.NewReader("ADD\nSUB\nJMP\n"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, set.Len(), 3)

	defs := set.Definitions()
	for i, m := range []instructions.Mnemonic{"ADD", "SUB", "JMP"} {
		test.ExpectEquality(t, defs[i].Mnemonic, m)
		test.ExpectEquality(t, defs[i].Opcode, uint8(i))
		test.ExpectEquality(t, defs[i].Line, i+1)
	}
}

func TestParseWhiteSpace(t *testing.T) {
	// leading and trailing white space is removed, including carriage returns.
	// blank lines are skipped but still count towards the line number
	set, err := instructions.Parse(strings.NewReader("  ADD \r\n\n\tSUB\n   \n"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, set.Len(), 2)

	d, ok := set.Lookup("SUB")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Opcode, uint8(1))
	test.ExpectEquality(t, d.Line, 3)

	// mnemonics are otherwise preserved verbatim
	set, err = instructions.Parse(strings.NewReader("add\nAdd\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 2)
}

func TestParseEmpty(t *testing.T) {
	set, err := instructions.Parse(strings.NewReader(""))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 0)
	test.ExpectEquality(t, len(set.Mnemonics()), 0)
	test.ExpectEquality(t, set.Decode(0), instructions.Reserved)
}

func TestDuplicate(t *testing.T) {
	_, err := instructions.Parse(strings.NewReader("ADD\nSUB\nADD\n"))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, instructions.DuplicateMnemonic))
	test.ExpectEquality(t, err.Error(), "duplicate mnemonic: ADD [lines 1 and 3]")
}

func TestReserved(t *testing.T) {
	_, err := instructions.NewSet("ADD", "ERR")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, instructions.ReservedMnemonic))
}

func TestBoundary(t *testing.T) {
	set, err := instructions.NewSet(numbered(instructions.MaxOpcodes)...)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 256)
	test.ExpectEquality(t, set.Decode(0x00), "OP000")
	test.ExpectEquality(t, set.Decode(0xff), "OP255")

	d, ok := set.Lookup("OP255")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Opcode, uint8(0xff))

	// one too many must be an error and not a wrap around to zero
	_, err = instructions.NewSet(numbered(instructions.MaxOpcodes + 1)...)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, instructions.InputTooLarge))
	test.ExpectEquality(t, err.Error(), "input too large: more than 256 mnemonics [line 257]")

	// and the same through Parse()
	_, err = instructions.Parse(strings.NewReader(strings.Join(numbered(300), "\n")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InputTooLarge))
}

func TestDecode(t *testing.T) {
	set, err := instructions.NewSet("HLT", "NOP", "LOD")
	test.DemandSuccess(t, err)

	// every opcode decodes to the mnemonic at the same position
	for i, m := range set.Mnemonics() {
		test.ExpectEquality(t, set.Decode(uint8(i)), m)
	}

	test.ExpectEquality(t, set.Decode(3), instructions.Reserved)
	test.ExpectEquality(t, set.Decode(0xff), instructions.Reserved)

	_, ok := set.Lookup("ERR")
	test.ExpectFailure(t, ok)
}

func TestDefinitionsCopy(t *testing.T) {
	set, err := instructions.NewSet("HLT", "NOP")
	test.DemandSuccess(t, err)

	defs := set.Definitions()
	defs[0].Mnemonic = "XXX"
	test.ExpectEquality(t, set.Decode(0), "HLT")
}

func TestLoad(t *testing.T) {
	set, err := instructions.Load("testdata/instructions.txt")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 20)
	test.ExpectEquality(t, set.Decode(0), "HLT")
	test.ExpectEquality(t, set.Decode(19), "POP")

	_, err = instructions.Load("testdata/missing.txt")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, instructions.InputUnreadable))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

func TestUnreadable(t *testing.T) {
	_, err := instructions.Parse(iotest.ErrReader(errors.New("device not ready")))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, instructions.InputUnreadable))
	test.ExpectEquality(t, err.Error(), "input unreadable: device not ready")
}

func TestListAndSummary(t *testing.T) {
	set, err := instructions.NewSet("HLT", "NOP", "LOD")
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	set.List(tw)
	test.ExpectSuccess(t, tw.Compare("0x00 HLT\n0x01 NOP\n0x02 LOD\n"))

	tw.Clear()
	set.Summary(tw)
	test.ExpectSuccess(t, tw.Compare("3 of 256 opcodes assigned (1% of code space used)\nnext free opcode: 0x03\n"))

	full, err := instructions.NewSet(numbered(instructions.MaxOpcodes)...)
	test.DemandSuccess(t, err)
	tw.Clear()
	full.Summary(tw)
	test.ExpectSuccess(t, tw.Compare("256 of 256 opcodes assigned (100% of code space used)\ncode space is full\n"))
}
