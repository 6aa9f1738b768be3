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
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() vm.Option {
	l := logrus.New()
	l.Out = ioutil.Discard
	return vm.Logger(l)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestParsePoke(t *testing.T) {
	var tests = [...]struct {
		in  string
		p   poke
		err bool
	}{
		{"1=12", poke{1, 12}, false},
		{" 2 = -3 ", poke{2, -3}, false},
		{"0x10=0b11", poke{16, 3}, false},
		{"12", poke{}, true},
		{"a=1", poke{}, true},
		{"1=b", poke{}, true},
	}
	for _, test := range tests {
		p, err := parsePoke(test.in)
		if test.err {
			assert.Error(t, err, test.in)
			continue
		}
		assert.NoError(t, err, test.in)
		assert.Equal(t, test.p, p, test.in)
	}
}

func TestLoadConfig(t *testing.T) {
	fn := writeFile(t, "cfg.toml", `
program = "day2.txt"
ascii = true
input = [1, -2]

[poke]
2 = 2
1 = 12
`)
	var cfg config
	require.NoError(t, loadConfig(fn, &cfg))
	assert.Equal(t, "day2.txt", cfg.Program)
	assert.True(t, cfg.ASCII)
	assert.Equal(t, []vm.Cell{1, -2}, cfg.input())

	ps, err := cfg.pokes([]poke{{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []poke{{1, 12}, {2, 2}, {0, 1}}, ps)

	fn = writeFile(t, "bad.toml", "programme = \"x\"\n")
	assert.Error(t, loadConfig(fn, &cfg))
	fn = writeFile(t, "bad.toml", "program = \n")
	assert.Error(t, loadConfig(fn, &cfg))
}

func TestLoadProgram(t *testing.T) {
	img, err := loadProgram(writeFile(t, "p.txt", "1,0,0,0,99\n"), false)
	require.NoError(t, err)
	assert.Equal(t, vm.Image{1, 0, 0, 0, 99}, img)

	img, err = loadProgram(writeFile(t, "p.ica", "add 0 0 0 hlt"), true)
	require.NoError(t, err)
	assert.Equal(t, vm.Image{1, 0, 0, 0, 99}, img)

	_, err = loadProgram(writeFile(t, "p.ica", "add 0 0 0 hlt"), false)
	assert.Error(t, err)
	_, err = loadProgram(filepath.Join(t.TempDir(), "missing"), true)
	assert.Error(t, err)
}

func TestNewVM(t *testing.T) {
	cfg := config{
		Program: writeFile(t, "p.txt", "1,0,0,0,99"),
		Poke:    map[string]int64{"1": 4},
	}
	i, err := newVM(&cfg, []poke{{2, 4}}, quiet())
	require.NoError(t, err)
	require.NoError(t, i.Run())
	v, _ := i.ReadAt(0)
	assert.Equal(t, vm.Cell(198), v)
}

// sum reads values and outputs the running total until it reads 0.
var sum = vm.Image{3, 15, 1006, 15, 14, 1, 15, 16, 16, 4, 16, 1105, 1, 0, 99, 0, 0}

func TestRunNumeric(t *testing.T) {
	var tests = [...]struct {
		name  string
		input []vm.Cell
		stdin string
		out   string
		err   bool
	}{
		{"all_at_once", []vm.Cell{1, 2, 0}, "", "1\n3\n", false},
		{"stdin", []vm.Cell{1}, "2,3\n\n4\n0\n5\n", "1\n3\n6\n10\n", false},
		{"eof", nil, "7\n", "7\n", false},
		{"bad_input", nil, "x\n", "", true},
	}
	for _, test := range tests {
		i, err := vm.New(sum.Clone(), quiet())
		require.NoError(t, err)
		var b bytes.Buffer
		err = newSession(i, strings.NewReader(test.stdin), &b, "").runNumeric(test.input)
		if test.err {
			assert.Error(t, err, test.name)
		} else {
			assert.NoError(t, err, test.name)
		}
		assert.Equal(t, test.out, b.String(), test.name)
	}
}

func TestRunNumeric_error(t *testing.T) {
	i, err := vm.New(vm.Image{104, 1, 42}, quiet())
	require.NoError(t, err)
	var b bytes.Buffer
	err = newSession(i, strings.NewReader(""), &b, "? ").runNumeric(nil)
	assert.Error(t, err)
	assert.Equal(t, "1\n", b.String())
}

func TestRunASCII(t *testing.T) {
	// prints "?\n", reads a line, outputs its length + 1000 and halts
	img := vm.Image{
		104, '?', 104, 10, // prompt
		3, 30, 1008, 30, 10, 31, 1005, 31, 22, 1001, 32, 1, 32, 1105, 1, 4, 0, 0,
		1001, 32, 1000, 32, 4, 32, 99, 0, 0, 0, 0,
	}
	i, err := vm.New(img, quiet())
	require.NoError(t, err)
	var b bytes.Buffer
	err = newSession(i, strings.NewReader("hello\r\nignored\n"), &b, "> ").runASCII(nil)
	require.NoError(t, err)
	assert.Equal(t, "?\n> 1005", b.String())
	assert.True(t, i.Halted())
}
