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

// Package config loads the project configuration file. The file is optional
// and is usually committed at the root of the project that uses the generated
// table, so that running opgen without arguments does the right thing.
//
//	input: vm/instructions.txt
//	output: vm/opcodes.go
//	target: go
//	package: vm
//	ledger: vm/opcodes.ledger
//
// Fields that are missing from the file keep their default value. Unknown
// fields are an error.
package config
