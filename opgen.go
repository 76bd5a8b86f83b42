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

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/tebeka/atexit"

	"github.com/jetsetilly/opgen/config"
	"github.com/jetsetilly/opgen/curated"
	"github.com/jetsetilly/opgen/generator"
	"github.com/jetsetilly/opgen/instructions"
	"github.com/jetsetilly/opgen/ledger"
	"github.com/jetsetilly/opgen/logger"
	"github.com/jetsetilly/opgen/modalflag"
	"github.com/jetsetilly/opgen/output"
	"github.com/jetsetilly/opgen/statsview"
	"github.com/jetsetilly/opgen/version"
	"github.com/jetsetilly/opgen/watch"
)

// Sentinal patterns for use with the curated package.
const (
	CommandLine = "command line: %v"
	StaleOutput = "stale output: %s does not match %s"
	InvalidByte = "invalid byte: %s"
)

// exit codes returned by launch()
const (
	exitSuccess   = 0
	exitParseErr  = 10
	exitModeError = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	atexit.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("GENERATE", "CHECK", "LIST", "DISASM", "WATCH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseErr
	}

	switch md.Mode() {
	case "GENERATE":
		err = generate(md)

	case "CHECK":
		err = check(md)

	case "LIST":
		err = list(md)

	case "DISASM":
		err = disasm(md)

	case "WATCH":
		err = watchMode(ctx, md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		if curated.Is(err, CommandLine) {
			return exitParseErr
		}
		return exitModeError
	}

	return exitSuccess
}

// flags shared by all modes that work with an instruction list
type common struct {
	config *string
	input  *string
	output *string
	target *string
	pkg    *string
	ledger *string

	log     *bool
	logfile *string
}

func addCommon(md *modalflag.Modes) *common {
	def := config.Default()
	return &common{
		config:  md.AddString("config", config.DefaultFilename, "configuration file"),
		input:   md.AddString("input", def.Input, "instruction list, one mnemonic per line"),
		output:  md.AddString("output", def.Output, "generated file"),
		target:  md.AddString("target", def.Target, fmt.Sprintf("target language: %v", generator.Targets())),
		pkg:     md.AddString("package", def.Package, "package name for go output"),
		ledger:  md.AddString("ledger", def.Ledger, "ledger file recording previous opcode assignments"),
		log:     md.AddBool("log", false, "echo log to stdout"),
		logfile: md.AddString("logfile", "", "write the log to the named file on exit"),
	}
}

// resolve the configuration for the mode. must be called after md.Parse()
func (c *common) resolve(md *modalflag.Modes) (config.Config, error) {
	if *c.log {
		logger.SetEcho(echo(md.Output))
	} else {
		logger.SetEcho(nil)
	}

	if *c.logfile != "" {
		fn := *c.logfile
		atexit.Register(func() {
			if err := dumpLog(fn); err != nil {
				fmt.Fprintf(os.Stderr, "* error: %v\n", err)
			}
		})
	}

	cfg, err := config.Load(*c.config)
	if err != nil {
		// the default configuration file is optional
		if md.IsSet("config") || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
		cfg = config.Default()
	}

	// command line flags take priority over the configuration file
	values := map[string]string{
		"input":   *c.input,
		"output":  *c.output,
		"target":  *c.target,
		"package": *c.pkg,
		"ledger":  *c.ledger,
	}
	overrides := make(map[string]string)
	md.Visit(func(flag string) {
		if v, ok := values[flag]; ok {
			overrides[flag] = v
		}
	})
	cfg.Override(overrides)

	return cfg, nil
}

// echo wraps the output in a Colorizer if it is a terminal
func echo(output io.Writer) io.Writer {
	if f, ok := output.(*os.File); ok {
		return logger.Echo(f)
	}
	return output
}

// write the entire central log to the named file
func dumpLog(filename string) error {
	var b bytes.Buffer
	logger.Write(&b)
	return output.WriteFile(output.OS{}, filename, b.Bytes())
}

// parse the flags for the mode. returns false if the mode should not continue,
// either because help has been printed or because of an error
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(CommandLine, err)
	}
	return true, nil
}

func noArguments(md *modalflag.Modes) error {
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(CommandLine, fmt.Sprintf("too many arguments for %s mode", md))
	}
	return nil
}

// build the instruction set and render the output. the ledger is checked if
// one has been specified
func render(cfg config.Config, force bool) (*instructions.Set, []byte, error) {
	set, err := instructions.Load(cfg.Input)
	if err != nil {
		return nil, nil, err
	}

	tgt, err := generator.Lookup(cfg.Target)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Ledger != "" {
		l, err := ledger.Load(cfg.Ledger)
		if err != nil {
			return nil, nil, err
		}
		if err := l.Check(set); err != nil {
			if !force {
				return nil, nil, err
			}
			logger.Log(logger.Allow, "ledger", err)
		}
	}

	data, err := generator.Render(set, tgt, generator.Options{Package: cfg.Package})
	if err != nil {
		return nil, nil, err
	}

	return set, data, nil
}

// render the output, update the ledger and write the output
func write(cfg config.Config, force bool) (*instructions.Set, error) {
	set, data, err := render(cfg, force)
	if err != nil {
		return nil, err
	}

	// the ledger is saved first. a ledger ahead of the output is reported as
	// stale output by CHECK and corrected by the next generation
	if cfg.Ledger != "" {
		if err := ledger.FromSet(set).Save(output.OS{}, cfg.Ledger); err != nil {
			return nil, err
		}
	}

	if err := output.WriteFile(output.OS{}, cfg.Output, data); err != nil {
		return nil, err
	}

	return set, nil
}

func generate(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	force := md.AddBool("force", false, "write output even if opcodes have been renumbered")
	mv := md.AddString("memviz", "", "write a graphviz representation of the instruction set to file")

	if ok, err := parse(md); !ok {
		return err
	}

	if err := noArguments(md); err != nil {
		return err
	}

	cfg, err := c.resolve(md)
	if err != nil {
		return err
	}

	set, err := write(cfg, *force)
	if err != nil {
		return err
	}

	if *mv != "" {
		var b bytes.Buffer
		memviz.Map(&b, set)
		if err := output.WriteFile(output.OS{}, *mv, b.Bytes()); err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%d opcodes written to %s\n", set.Len(), cfg.Output)

	return nil
}

func check(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)

	if ok, err := parse(md); !ok {
		return err
	}

	if err := noArguments(md); err != nil {
		return err
	}

	cfg, err := c.resolve(md)
	if err != nil {
		return err
	}

	_, data, err := render(cfg, false)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(cfg.Output)
	if err != nil {
		return curated.Errorf(StaleOutput, cfg.Output, cfg.Input)
	}

	if !bytes.Equal(existing, data) {
		return curated.Errorf(StaleOutput, cfg.Output, cfg.Input)
	}

	fmt.Fprintf(md.Output, "%s is up to date\n", cfg.Output)

	return nil
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)

	if ok, err := parse(md); !ok {
		return err
	}

	if err := noArguments(md); err != nil {
		return err
	}

	cfg, err := c.resolve(md)
	if err != nil {
		return err
	}

	set, err := instructions.Load(cfg.Input)
	if err != nil {
		return err
	}

	set.List(md.Output)
	set.Summary(md.Output)

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)

	if ok, err := parse(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf(CommandLine, fmt.Sprintf("bytes required for %s mode", md))
	}

	cfg, err := c.resolve(md)
	if err != nil {
		return err
	}

	set, err := instructions.Load(cfg.Input)
	if err != nil {
		return err
	}

	// parse all arguments before producing any output
	opcodes := make([]uint8, 0, len(md.RemainingArgs()))
	for _, a := range md.RemainingArgs() {
		v, err := strconv.ParseUint(a, 0, 8)
		if err != nil {
			return curated.Errorf(InvalidByte, a)
		}
		opcodes = append(opcodes, uint8(v))
	}

	for _, o := range opcodes {
		fmt.Fprintf(md.Output, "0x%02x %s\n", o, set.Decode(o))
	}

	return nil
}

func watchMode(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	force := md.AddBool("force", false, "write output even if opcodes have been renumbered")
	interval := md.AddDuration("interval", watch.DefaultInterval, "polling interval")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	if ok, err := parse(md); !ok {
		return err
	}

	if err := noArguments(md); err != nil {
		return err
	}

	cfg, err := c.resolve(md)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(ctx, md.Output)
	}

	return watch.Watch(ctx, cfg.Input, *interval, func() error {
		set, err := write(cfg, *force)
		if err != nil {
			fmt.Fprintf(md.Output, "* %v\n", err)
			return err
		}
		fmt.Fprintf(md.Output, "%s: %d opcodes written to %s\n", time.Now().Format(time.TimeOnly), set.Len(), cfg.Output)
		return nil
	})
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	if ok, err := parse(md); !ok {
		return err
	}

	fmt.Fprintln(md.Output, version.String())

	return nil
}
