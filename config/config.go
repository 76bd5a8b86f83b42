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

package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/logger"
)

// Sentinal patterns for use with the curated package.
const (
	ConfigUnreadable = "config unreadable: %s: %v"
)

// DefaultFilename is the configuration file looked for in the current
// directory.
const DefaultFilename = "opgen.yaml"

// Config for a single generation.
type Config struct {
	// the instruction list
	Input string `yaml:"input"`

	// the generated file
	Output string `yaml:"output"`

	// name of the generator target
	Target string `yaml:"target"`

	// package clause for Go output
	Package string `yaml:"package"`

	// the ledger file. ledger checking is disabled if this is empty
	Ledger string `yaml:"ledger"`
}

// Default returns the configuration used when there is no configuration file.
func Default() Config {
	return Config{
		Input:   "instructions.txt",
		Output:  "opcodes.go",
		Target:  "go",
		Package: "opcodes",
	}
}

// Load the named configuration file. Errors from the os package are wrapped
// and can be tested with errors.Is(), for example with fs.ErrNotExist.
func Load(filename string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(filename)
	if err != nil {
		return cfg, curated.Errorf(ConfigUnreadable, filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), curated.Errorf(ConfigUnreadable, filename, err)
	}

	logger.Logf(logger.Allow, "config", "loaded %s", filename)

	return cfg, nil
}

// Override fields in the configuration with values from the map. Keys are
// the same as the YAML field names. Unrecognised keys are ignored.
func (cfg *Config) Override(values map[string]string) {
	for k, v := range values {
		switch k {
		case "input":
			cfg.Input = v
		case "output":
			cfg.Output = v
		case "target":
			cfg.Target = v
		case "package":
			cfg.Package = v
		case "ledger":
			cfg.Ledger = v
		default:
			continue
		}
		logger.Logf(logger.Allow, "config", "%s overridden by command line (%s)", k, v)
	}
}
