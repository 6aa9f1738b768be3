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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	var tests = [...]struct {
		name string
		code string
		img  vm.Image
	}{
		{"add", "add 0 0 0 hlt", vm.Image{1, 0, 0, 0, 99}},
		{"modes", "mul 4 #3 4 .dat 33", vm.Image{1002, 4, 3, 4, 33}},
		{"relative", "add #1 ~2 3", vm.Image{2101, 1, 2, 3}},
		{"rel_target", "lt ~-1 #8 ~0", vm.Image{21207, -1, 8, 0}},
		{"echo", "in 0 out 0 halt", vm.Image{3, 0, 4, 0, 99}},
		{"aliases", "jt #1 #0 jf ~0 7", vm.Image{1105, 1, 0, 206, 0, 7}},
		{"labels", "jnz #1 #end .dat 1 2 :end hlt", vm.Image{1105, 1, 5, 1, 2, 99}},
		{"forward_use", "out lbl :lbl .dat 'A' '\\n' 0x10 -0b11", vm.Image{4, 2, 65, 10, 16, -3}},
		{"equ", ".equ N 42 out #N arb #N hlt", vm.Image{104, 42, 109, 42, 99}},
		{"org", "hlt .org 4 .dat 7", vm.Image{99, 0, 0, 0, 7}},
		{"comment", "( a comment ) out #1 ( another\n one ) hlt", vm.Image{104, 1, 99}},
		{"label_in_dat", ".dat 1 :x 2 x", vm.Image{1, 2, 1}},
	}
	for _, test := range tests {
		img, err := asm.Assemble(test.name, strings.NewReader(test.code))
		if !assert.NoError(t, err, test.name) {
			continue
		}
		assert.Equal(t, test.img, img, test.name)
	}
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	var tests = [...]struct {
		code string
		at   string
	}{
		{"add 1 2 #3", "#3"},
		{"out undefined_lbl", "undefined_lbl"},
		{"add 1 2 hlt", "add"},
		{"in", "in"},
		{"42", "42"},
		{".foo 1", ".foo"},
		{":x :x", ":x :x"[3:]},
		{".org -1", "-1"},
		{".equ X", ".equ"},
		{"out #", "#"},
		{"out ''", "''"},
		{"( never closed", "("},
		{"out #1 : hlt", ":"},
	}
	for _, test := range tests {
		_, err := asm.Assemble("test_errors", strings.NewReader(test.code))
		if !assert.Error(t, err, test.code) {
			continue
		}
		errs, ok := err.(asm.ErrAsm)
		require.True(t, ok, "%T", err)
		require.NotEmpty(t, errs)
		o := errs[0].Pos.Offset
		assert.True(t, strings.HasPrefix(test.code[o:], test.at),
			"%q: error %q points to %q", test.code, errs[0].Msg, test.code[o:])
		assert.Contains(t, err.Error(), "test_errors:1:")
	}
}

func TestAssemble_undefinedOrder(t *testing.T) {
	code := "out zeta out alpha out mu out beta"
	for n := 0; n < 10; n++ {
		_, err := asm.Assemble("labels", strings.NewReader(code))
		require.Error(t, err)
		errs := err.(asm.ErrAsm)
		require.Len(t, errs, 4)
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Msg)
		}
		assert.Equal(t, []string{
			"undefined label alpha",
			"undefined label beta",
			"undefined label mu",
			"undefined label zeta",
		}, msgs)
	}
}

func TestAssemble_maxErrors(t *testing.T) {
	_, err := asm.Assemble("many", strings.NewReader(strings.Repeat("1 ", 50)))
	require.Error(t, err)
	assert.Len(t, err.(asm.ErrAsm), 10)
}

func TestDisassemble(t *testing.T) {
	img := vm.Image{21207, -1, 8, 0, 42, 1, 0, 99}
	var b bytes.Buffer
	next, err := asm.Disassemble(img, 0, &b)
	require.NoError(t, err)
	assert.Equal(t, 4, next)
	assert.Equal(t, "lt ~-1 #8 ~0", b.String())

	b.Reset()
	next, _ = asm.Disassemble(img, 4, &b)
	assert.Equal(t, 5, next)
	assert.Equal(t, ".dat 42", b.String())

	// truncated instruction
	b.Reset()
	next, _ = asm.Disassemble(img, 5, &b)
	assert.Equal(t, 6, next)
	assert.Equal(t, ".dat 1", b.String())

	// immediate write target
	b.Reset()
	asm.Disassemble(vm.Image{11101, 1, 1, 1}, 0, &b)
	assert.Equal(t, ".dat 11101", b.String())

	b.Reset()
	asm.Disassemble(img, 7, &b)
	assert.Equal(t, "hlt", b.String())
}

func TestRoundTrip(t *testing.T) {
	quine := vm.Image{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	var b bytes.Buffer
	for pc := 0; pc < len(quine); {
		pc, _ = asm.Disassemble(quine, pc, &b)
		b.WriteByte('\n')
	}
	img, err := asm.Assemble("quine", &b)
	require.NoError(t, err)
	assert.Equal(t, quine, img)
}
