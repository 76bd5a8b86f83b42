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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function and are identified by
// the pattern string given to that function rather than by the formatted
// message.
//
// Packages that return curated errors should declare their patterns as
// exported constants. For example, the instructions package declares:
//
//	const InputTooLarge = "input too large: more than %d mnemonics"
//
// and a caller can check for that condition with:
//
//	if curated.Is(err, instructions.InputTooLarge) {
//		...
//	}
//
// The Has() function is similar to Is() but looks for the pattern anywhere in
// the chain of curated errors. A chain is formed by passing a curated error as
// one of the values to Errorf():
//
//	e := curated.Errorf("generate: %v", err)
//
// The Error() implementation normalises the chain so that duplicate adjacent
// parts are removed. In other words, a function does not need to worry whether
// the error it is wrapping already carries the same prefix. The message
//
//	generate: generate: input unreadable: open foo: no such file
//
// is output as
//
//	generate: input unreadable: open foo: no such file
//
// Parts of the chain are separated by the sub-string ": ", as suggested on p239
// of "The Go Programming Language" (Donovan, Kernighan).
//
// Curated errors implement Unwrap() so errors.Is() and errors.As() from the
// standard library can see any non-curated error used as a value. This is
// useful for checking for conditions like fs.ErrNotExist.
package curated
