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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and are then parsed in
// layers with Parse(). The first layer usually selects the mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("GENERATE", "CHECK", "LIST")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected if the first argument is
// not a sub-mode. Sub-mode comparisons are case insensitive and Mode() always
// returns the upper case name.
//
// Once the mode is known, NewMode() starts the next layer. Flags for the mode
// are added and Parse() is called again:
//
//	md.NewMode()
//	force := md.AddBool("force", false, "ignore the ledger")
//	p, err = md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// Arguments that are not flags are then available with RemainingArgs() or
// GetArg().
//
// Help messages are printed to the Output writer when the -help flag is
// given. The message lists the flags and sub-modes for the layer being parsed
// and the text given to AdditionalHelp().
//
// Visit() and IsSet() report which flags were explicitly given on the command
// line, which is useful when flag values override values from a file.
package modalflag
