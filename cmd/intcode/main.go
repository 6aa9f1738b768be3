// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/snapshot"
	"github.com/db47h/intcode/vm"
	"github.com/sirupsen/logrus"
)

type pokeList []poke

func (p *pokeList) String() string { return "" }
func (p *pokeList) Set(s string) error {
	v, err := parsePoke(s)
	if err != nil {
		return err
	}
	*p = append(*p, v)
	return nil
}
func (p *pokeList) Get() interface{} { return *p }

type cellList []vm.Cell

func (c *cellList) String() string { return vm.Image(*c).String() }
func (c *cellList) Set(s string) error {
	v, err := parseCells(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
func (c *cellList) Get() interface{} { return *c }

var debug bool

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		snapshot.Dump(os.Stderr, i)
	}
	os.Exit(1)
}

func newVM(cfg *config, flagPokes []poke, opts ...vm.Option) (*vm.Instance, error) {
	if cfg.Resume != "" {
		return snapshot.LoadFile(cfg.Resume, opts...)
	}
	img, err := loadProgram(cfg.Program, cfg.Asm)
	if err != nil {
		return nil, err
	}
	i, err := vm.New(img, opts...)
	if err != nil {
		return nil, err
	}
	ps, err := cfg.pokes(flagPokes)
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		if err = i.WriteAt(p.addr, p.value); err != nil {
			return nil, err
		}
	}
	return i, nil
}

func main() {
	var err error
	var i *vm.Instance

	defer func() {
		atExit(i, err)
	}()

	var (
		cfg      config
		pokes    pokeList
		input    cellList
		disasm   bool
		cfgFile  = flag.String("config", "", "load settings from TOML file `filename`")
		program  = flag.String("program", "input.txt", "load program from file `filename`")
		isAsm    = flag.Bool("asm", false, "the program file is assembly source, not a comma separated image")
		asciiMod = flag.Bool("ascii", false, "run in ASCII console mode")
		trace    = flag.Bool("trace", false, "log every executed instruction")
		dumpFile = flag.String("dump", "", "save a snapshot of the machine to `filename` upon exit")
		resume   = flag.String("resume", "", "resume the machine saved in snapshot `filename`")
	)
	flag.Var(&pokes, "poke", "write value at address addr before running (can be specified multiple times)")
	flag.Var(&input, "input", "comma separated initial input `values`")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&disasm, "disasm", false, "print a disassembly of the program and exit")
	flag.Parse()

	cfg.Program = *program
	if *cfgFile != "" {
		if err = loadConfig(*cfgFile, &cfg); err != nil {
			return
		}
	}
	// command line flags override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "program":
			cfg.Program = *program
		case "asm":
			cfg.Asm = *isAsm
		case "ascii":
			cfg.ASCII = *asciiMod
		case "trace":
			cfg.Trace = *trace
		case "debug":
			cfg.Debug = debug
		case "dump":
			cfg.Dump = *dumpFile
		case "resume":
			cfg.Resume = *resume
		case "input":
			cfg.Input = cfg.Input[:0]
			for _, v := range input {
				cfg.Input = append(cfg.Input, int64(v))
			}
		}
	})
	debug = cfg.Debug

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.Debug || cfg.Trace {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if disasm {
		var img vm.Image
		if img, err = loadProgram(cfg.Program, cfg.Asm); err != nil {
			return
		}
		err = asm.DisassembleAll(img, 0, os.Stdout)
		return
	}

	i, err = newVM(&cfg, pokes, vm.Logger(logrus.StandardLogger()), vm.Trace(cfg.Trace))
	if err != nil {
		return
	}

	prompt := ""
	if isTerminal(os.Stdin.Fd()) {
		prompt = "? "
		if cfg.ASCII {
			prompt = "> "
		}
	}
	s := newSession(i, os.Stdin, os.Stdout, prompt)
	if cfg.ASCII {
		err = s.runASCII(cfg.input())
	} else {
		err = s.runNumeric(cfg.input())
	}
	if cfg.Dump != "" {
		if derr := dumpVM(i, cfg.Dump); err == nil {
			err = derr
		}
	}
}
