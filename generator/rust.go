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
	"regexp"

	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/instructions"
)

// Rust produces an enum, a From<u8> implementation and a list of match arms
// to be pasted into the virtual machine's decode loop.
//
// The output is not formatted in any way and there is no file header. The
// match arms are not valid Rust outside of a match expression.
var Rust = Target{
	Name: "rust",

	enumeration: pattern{
		open:  "pub enum Opcode{\n",
		entry: "\t%[2]s,\n",
		close: "\t%[1]s,\n}",
	},

	conversion: pattern{
		open:  "impl From<u8> for Opcode {\n\tfn from(v: u8) -> Self {\n\t\tmatch v {\n",
		entry: "\t\t\t0x%[1]X => Opcode::%[2]s,\n",
		close: "\t\t\t_=> Opcode::%[1]s\n\t\t}\n\t}\n}",
	},

	dispatch: pattern{
		open:  "",
		entry: "Opcode::%[2]s => {}\n",
		close: "",
	},

	identifier: rustIdentifier,
	document:   rustDocument,
}

var rustIdentifierRegex = regexp.MustCompile("^[A-Za-z_][A-Za-z0-9_]*$")

// strict and reserved keywords. raw identifiers are not supported
var rustKeywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "dyn": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "typeof": true, "unsized": true, "virtual": true, "yield": true,
	"try": true, "_": true,
}

func rustIdentifier(defn instructions.Definition) error {
	m := string(defn.Mnemonic)
	if !rustIdentifierRegex.MatchString(m) || rustKeywords[m] {
		return curated.Errorf(InvalidIdentifier, m, "rust", defn.Line)
	}
	return nil
}

func rustDocument(a Artifacts, _ Options) ([]byte, error) {
	return []byte(a.Join()), nil
}
