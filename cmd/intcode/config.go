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
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type config struct {
	Program string           `toml:"program"`
	Asm     bool             `toml:"asm"`
	ASCII   bool             `toml:"ascii"`
	Trace   bool             `toml:"trace"`
	Debug   bool             `toml:"debug"`
	Input   []int64          `toml:"input"`
	Poke    map[string]int64 `toml:"poke"`
	Dump    string           `toml:"dump"`
	Resume  string           `toml:"resume"`
}

func loadConfig(fileName string, cfg *config) error {
	md, err := toml.DecodeFile(fileName, cfg)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if u := md.Undecoded(); len(u) > 0 {
		return errors.Errorf("config %s: unknown key %s", fileName, u[0])
	}
	return nil
}

type poke struct {
	addr, value vm.Cell
}

func parsePoke(s string) (poke, error) {
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return poke{}, errors.Errorf("invalid poke %q, expected addr=value", s)
	}
	a, err := strconv.ParseInt(strings.TrimSpace(s[:i]), 0, 64)
	if err != nil {
		return poke{}, errors.Wrapf(err, "poke %q", s)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s[i+1:]), 0, 64)
	if err != nil {
		return poke{}, errors.Wrapf(err, "poke %q", s)
	}
	return poke{vm.Cell(a), vm.Cell(v)}, nil
}

// pokes returns the config file pokes in address order, then the command line
// ones.
func (c *config) pokes(flags []poke) ([]poke, error) {
	var ps []poke
	for a, v := range c.Poke {
		p, err := parsePoke(a + "=" + strconv.FormatInt(v, 10))
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].addr < ps[j].addr })
	return append(ps, flags...), nil
}

func (c *config) input() []vm.Cell {
	in := make([]vm.Cell, len(c.Input))
	for k, v := range c.Input {
		in[k] = vm.Cell(v)
	}
	return in
}

func parseCells(s string) ([]vm.Cell, error) {
	img, err := vm.ParseImage(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func loadProgram(fileName string, isAsm bool) (vm.Image, error) {
	if !isAsm {
		return vm.Load(fileName)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return asm.Assemble(fileName, f)
}
