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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/errw"
	"github.com/db47h/intcode/vm"
)

var mnemonics = map[vm.Opcode][]string{
	vm.OpAdd:  {"add"},
	vm.OpMul:  {"mul"},
	vm.OpIn:   {"in"},
	vm.OpOut:  {"out"},
	vm.OpJnz:  {"jnz", "jt"},
	vm.OpJz:   {"jz", "jf"},
	vm.OpLt:   {"lt"},
	vm.OpEq:   {"eq"},
	vm.OpArb:  {"arb"},
	vm.OpHalt: {"hlt", "halt"},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for op, names := range mnemonics {
		for _, n := range names {
			opcodeIndex[n] = op
		}
	}
}

// Error is a single assembly error.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	s := make([]string, len(e))
	for k := range e {
		s[k] = e[k].Error()
	}
	return strings.Join(s, "\n")
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (img vm.Image, err error) {
	p := newParser()
	return p.Parse(name, r)
}

func modePrefix(m vm.Mode) string {
	switch m {
	case vm.Immediate:
		return "#"
	case vm.Relative:
		return "~"
	}
	return ""
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Words that do not decode to a valid instruction, or whose parameters run
// past the end of the slice, are written as a .dat directive.
func Disassemble(img []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := errw.New(w)
	word := img[pc]
	op, modes, err := vm.Decode(word)
	if err != nil || pc+len(modes) >= len(img) || !validModes(op, modes) {
		ew.WriteString(".dat ")
		ew.WriteString(strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	ew.WriteString(op.String())
	pc++
	for _, m := range modes {
		ew.WriteString(" ")
		ew.WriteString(modePrefix(m))
		ew.WriteString(strconv.FormatInt(int64(img[pc]), 10))
		pc++
	}
	return pc, ew.Err
}

func validModes(op vm.Opcode, modes []vm.Mode) bool {
	in, _ := op.Arity()
	for k, m := range modes {
		switch m {
		case vm.Position, vm.Relative:
		case vm.Immediate:
			if k >= in {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// frist cell (i[0]). It will return any write error.
func DisassembleAll(img []vm.Cell, base int, w io.Writer) error {
	ew := errw.New(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
