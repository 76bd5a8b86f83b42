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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The "Expect" functions report a failure with t.Errorf() and allow the test
// to continue. The "Demand" functions report with t.Fatalf() and should be
// used when later parts of the test depend on the value being correct. For
// example, demanding that the lengths of two slices are equal before iterating
// over them in unison.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. The nil type is considered a success. This may not be
// how we want to interpret nil in all situations but because of how errors
// work (nil to indicate no error) we *need* to interpret nil in this way.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for comparison with expected strings.
package test
