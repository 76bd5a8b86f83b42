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

package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/instructions"
	"github.com/jetsetilly/opgen/logger"
	"github.com/jetsetilly/opgen/output"
)

// Entry is a single mnemonic and its opcode.
type Entry struct {
	Mnemonic instructions.Mnemonic `yaml:"mnemonic"`
	Opcode   uint8                 `yaml:"opcode"`
}

// Ledger is the list of recorded opcode assignments.
type Ledger struct {
	Entries []Entry `yaml:"opcodes"`
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int {
	return len(l.Entries)
}

// header written to the top of every ledger file
const header = "# opcode assignments recorded by opgen. remove this file to accept a\n# renumbered instruction list\n"

// Load the ledger from the named file. A file that does not exist is not an
// error and results in an empty ledger.
func Load(filename string) (*Ledger, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "ledger", "%s does not exist. starting new ledger", filename)
			return &Ledger{}, nil
		}
		return nil, curated.Errorf(LedgerUnreadable, filename, err)
	}

	l := &Ledger{}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(l); err != nil && !errors.Is(err, io.EOF) {
		return nil, curated.Errorf(LedgerUnreadable, filename, err)
	}

	if err := l.validate(); err != nil {
		return nil, curated.Errorf(LedgerUnreadable, filename, err)
	}

	logger.Logf(logger.Allow, "ledger", "%d entries loaded from %s", l.Len(), filename)

	return l, nil
}

// a ledger that has been edited by hand might contain entries that could never
// have been produced from an instruction list
func (l *Ledger) validate() error {
	mnemonics := make(map[instructions.Mnemonic]bool)
	opcodes := make(map[uint8]instructions.Mnemonic)

	for _, e := range l.Entries {
		if e.Mnemonic == "" {
			return fmt.Errorf("entry with opcode 0x%02x has no mnemonic", e.Opcode)
		}
		if mnemonics[e.Mnemonic] {
			return fmt.Errorf("%s appears more than once", e.Mnemonic)
		}
		if m, ok := opcodes[e.Opcode]; ok {
			return fmt.Errorf("%s and %s both have opcode 0x%02x", m, e.Mnemonic, e.Opcode)
		}
		mnemonics[e.Mnemonic] = true
		opcodes[e.Opcode] = e.Mnemonic
	}

	return nil
}

// FromSet creates a new ledger recording the opcodes in the instruction Set.
func FromSet(set *instructions.Set) *Ledger {
	l := &Ledger{
		Entries: make([]Entry, 0, set.Len()),
	}
	for _, defn := range set.Definitions() {
		l.Entries = append(l.Entries, Entry{
			Mnemonic: defn.Mnemonic,
			Opcode:   defn.Opcode,
		})
	}
	return l
}

// Save the ledger to the named file using output.WriteFile().
func (l *Ledger) Save(fsys output.FS, filename string) error {
	var b bytes.Buffer
	b.WriteString(header)

	enc := yaml.NewEncoder(&b)
	if err := enc.Encode(l); err != nil {
		return curated.Errorf(output.OutputUnwritable, filename, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(output.OutputUnwritable, filename, err)
	}

	return output.WriteFile(fsys, filename, b.Bytes())
}

// Change describes a ledger entry that no longer agrees with an instruction
// Set.
type Change struct {
	Mnemonic instructions.Mnemonic

	// the opcode in the ledger
	Was uint8

	// the opcode in the instruction Set. not meaningful if Removed is true
	Now uint8

	// the mnemonic is no longer in the instruction Set
	Removed bool
}

func (c Change) String() string {
	if c.Removed {
		return fmt.Sprintf("%s removed (was 0x%02x)", c.Mnemonic, c.Was)
	}
	return fmt.Sprintf("%s moved from 0x%02x to 0x%02x", c.Mnemonic, c.Was, c.Now)
}

// Compare the ledger with the instruction Set. Changes are returned in
// ledger order. Mnemonics in the Set but not in the ledger are not changes.
func (l *Ledger) Compare(set *instructions.Set) []Change {
	var changes []Change

	for _, e := range l.Entries {
		defn, ok := set.Lookup(e.Mnemonic)
		if !ok {
			changes = append(changes, Change{
				Mnemonic: e.Mnemonic,
				Was:      e.Opcode,
				Removed:  true,
			})
			continue
		}

		if defn.Opcode != e.Opcode {
			changes = append(changes, Change{
				Mnemonic: e.Mnemonic,
				Was:      e.Opcode,
				Now:      defn.Opcode,
			})
		}
	}

	return changes
}

// Check is the same as Compare() but summarises any changes as a single
// Renumbered error.
func (l *Ledger) Check(set *instructions.Set) error {
	changes := l.Compare(set)
	if len(changes) == 0 {
		return nil
	}

	s := make([]string, len(changes))
	for i, c := range changes {
		s[i] = c.String()
	}

	return curated.Errorf(Renumbered, len(changes), strings.Join(s, "; "))
}
