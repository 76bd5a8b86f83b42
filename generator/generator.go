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

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/instructions"
	"github.com/jetsetilly/opgen/logger"
)

// Artifacts are the three pieces of generated code.
type Artifacts struct {
	Enumeration string
	Conversion  string
	Dispatch    string
}

// Join the artifacts in order, separated by a blank line.
func (a Artifacts) Join() string {
	return fmt.Sprintf("%s\n\n%s\n\n%s", a.Enumeration, a.Conversion, a.Dispatch)
}

// Options for the Document() function of a Target.
type Options struct {
	// the package clause for Go output. ignored by other targets
	Package string
}

// DefaultPackage is used if Options.Package is empty.
const DefaultPackage = "opcodes"

// pattern is the text of one artifact. the open string is output first,
// followed by the entry pattern once for each instruction and then the close
// pattern.
//
// the entry pattern is formatted with the opcode (int) as the first argument and
// the mnemonic as the second. the close pattern is formatted with the
// reserved mnemonic as the only argument. patterns should use explicit argument
// indexes, for example %[2]s to refer to the mnemonic.
type pattern struct {
	open  string
	entry string
	close string
}

// expand the pattern with the arguments. patterns without any verbs are
// returned as they are because fmt would otherwise complain about the unused
// arguments
func expand(p string, args ...any) string {
	if !strings.Contains(p, "%") {
		return p
	}
	return fmt.Sprintf(p, args...)
}

// Target describes how to render artifacts for a language.
type Target struct {
	// the name used to select the target on the command line
	Name string

	enumeration pattern
	conversion  pattern
	dispatch    pattern

	// checks that the mnemonic of the definition can be used in the target
	// language
	identifier func(instructions.Definition) error

	// checks that the mnemonic of the definition doesn't clash with names
	// that depend on the options. can be nil
	clash func(instructions.Definition, Options) error

	// turns the artifacts into the complete contents of the output file
	document func(Artifacts, Options) ([]byte, error)
}

// Document returns the complete contents of the output file.
func (tgt *Target) Document(a Artifacts, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	return tgt.document(a, opts)
}

// list of targets indexed by name. the key must be the same as the Name field
// of the target
var targets = map[string]*Target{
	Go.Name:   &Go,
	Rust.Name: &Rust,
}

// Targets returns the names of all available targets, sorted alphabetically.
func Targets() []string {
	n := make([]string, 0, len(targets))
	for k := range targets {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Lookup returns the named target. The name is not case sensitive.
func Lookup(name string) (*Target, error) {
	if tgt, ok := targets[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tgt, nil
	}
	return nil, curated.Errorf(UnknownTarget, name, strings.Join(Targets(), ", "))
}

// Generate the artifacts for the instruction Set.
func Generate(set *instructions.Set, tgt *Target) (Artifacts, error) {
	var enumeration strings.Builder
	var conversion strings.Builder
	var dispatch strings.Builder

	enumeration.WriteString(tgt.enumeration.open)
	conversion.WriteString(tgt.conversion.open)
	dispatch.WriteString(tgt.dispatch.open)

	// opcodes are assigned in the order of the instruction list. the opcode
	// in the definition is the same value but we count here so that the
	// three artifacts are visibly built from the same number
	opcode := 0

	for _, defn := range set.Definitions() {
		if err := tgt.identifier(defn); err != nil {
			return Artifacts{}, err
		}

		enumeration.WriteString(expand(tgt.enumeration.entry, opcode, defn.Mnemonic))
		conversion.WriteString(expand(tgt.conversion.entry, opcode, defn.Mnemonic))
		dispatch.WriteString(expand(tgt.dispatch.entry, opcode, defn.Mnemonic))

		opcode++
	}

	// the reserved mnemonic is always the last entry in the enumeration and
	// the fallback case of the conversion. it never appears in the dispatch
	enumeration.WriteString(expand(tgt.enumeration.close, instructions.Reserved))
	conversion.WriteString(expand(tgt.conversion.close, instructions.Reserved))
	dispatch.WriteString(expand(tgt.dispatch.close, instructions.Reserved))

	logger.Logf(logger.Allow, "generator", "%d opcodes rendered for %s target", opcode, tgt.Name)

	return Artifacts{
		Enumeration: enumeration.String(),
		Conversion:  conversion.String(),
		Dispatch:    dispatch.String(),
	}, nil
}

// Render is a convenience function that generates the artifacts for the
// instruction Set and returns the complete contents of the output file.
func Render(set *instructions.Set, tgt *Target, opts Options) ([]byte, error) {
	a, err := Generate(set, tgt)
	if err != nil {
		return nil, err
	}

	if tgt.clash != nil {
		if opts.Package == "" {
			opts.Package = DefaultPackage
		}
		for _, defn := range set.Definitions() {
			if err := tgt.clash(defn, opts); err != nil {
				return nil, err
			}
		}
	}

	return tgt.Document(a, opts)
}
