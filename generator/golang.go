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
	"go/format"
	"go/token"
	"go/types"

	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/instructions"
)

// GeneratedHeader is the first line of all Go output. It follows the
// convention described by "go help generate" so tools can recognise the file
// as generated.
const GeneratedHeader = "// Code generated by opgen. DO NOT EDIT."

// names declared by the generated Go code, including the parameter names of
// the generated functions. init can only be declared as a function
var goReserved = map[string]bool{
	"Opcode":   true,
	"FromByte": true,
	"dispatch": true,
	"v":        true,
	"op":       true,
	"init":     true,
}

// Go produces a type declaration and constant block for the opcodes, a
// FromByte() function for decoding and an unexported dispatch() function
// with an empty case for each instruction.
//
// The reserved ERR opcode has the value -1 so that it can never be confused
// with an encoded instruction.
var Go = Target{
	Name: "go",

	enumeration: pattern{
		open: "// Opcode identifies an instruction.\n" +
			"type Opcode int\n\n" +
			"// List of opcodes. ERR is the result of decoding a value that is not\n" +
			"// assigned to an instruction.\n" +
			"const (\n",
		entry: "\t%[2]s Opcode = 0x%[1]X\n",
		close: "\t%[1]s Opcode = -1\n)",
	},

	conversion: pattern{
		open: "// FromByte returns the Opcode for an encoded value.\n" +
			"func FromByte(v uint8) Opcode {\n" +
			"\tswitch v {\n",
		entry: "\tcase 0x%[1]X:\n\t\treturn %[2]s\n",
		close: "\tdefault:\n\t\treturn %[1]s\n\t}\n}",
	},

	dispatch: pattern{
		open: "// dispatch is a skeleton for the instruction decoder. The body of each\n" +
			"// case is to be completed by hand.\n" +
			"func dispatch(op Opcode) {\n" +
			"\tswitch op {\n",
		entry: "\tcase %[2]s:\n",
		close: "\t}\n}",
	},

	identifier: goIdentifier,
	clash:      goClash,
	document:   goDocument,
}

func goIdentifier(defn instructions.Definition) error {
	m := string(defn.Mnemonic)

	// a mnemonic must be an identifier that doesn't clash with a predeclared
	// identifier (a mnemonic called "int" would break the type declaration
	// for example) or with the names of the generated declarations
	if !token.IsIdentifier(m) || types.Universe.Lookup(m) != nil || goReserved[m] || m == "_" {
		return curated.Errorf(InvalidIdentifier, m, "go", defn.Line)
	}

	return nil
}

// main can only be declared as a function in package main
func goClash(defn instructions.Definition, opts Options) error {
	if opts.Package == "main" && defn.Mnemonic == "main" {
		return curated.Errorf(InvalidIdentifier, defn.Mnemonic, "go", defn.Line)
	}
	return nil
}

func goDocument(a Artifacts, opts Options) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) || opts.Package == "_" {
		return nil, curated.Errorf(InvalidPackage, opts.Package)
	}

	src := fmt.Sprintf("%s\n\npackage %s\n\n%s\n", GeneratedHeader, opts.Package, a.Join())

	// format code using standard Go formatter
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return nil, curated.Errorf(InvalidOutput, err)
	}

	return formatted, nil
}
