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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/logger"
)

// Load opens the named file and parses it with Parse().
func Load(filename string) (*Set, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(InputUnreadable, err)
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "instructions", "%d mnemonics loaded from %s", set.Len(), filename)

	return set, nil
}

// Parse reads one mnemonic per line from the io.Reader and returns the
// resulting Set. Opcodes are assigned in the order the mnemonics are read.
func Parse(r io.Reader) (*Set, error) {
	set := newSet()

	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++

		mnem := strings.TrimSpace(scanner.Text())
		if mnem == "" {
			continue
		}

		if err := set.add(Mnemonic(mnem), line); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(InputUnreadable, err)
	}

	return set, nil
}

// NewSet creates a Set from a list of mnemonics. The strings are treated in
// the same way as the lines read by Parse(), with the position in the list
// used as the line number.
func NewSet(mnemonics ...string) (*Set, error) {
	set := newSet()
	for i, m := range mnemonics {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if err := set.add(Mnemonic(m), i+1); err != nil {
			return nil, err
		}
	}
	return set, nil
}
