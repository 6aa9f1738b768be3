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

package vm

import "strconv"

// Opcode is an Intcode operation selector, the low two decimal digits of an
// instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpIn   Opcode = 3
	OpOut  Opcode = 4
	OpJnz  Opcode = 5
	OpJz   Opcode = 6
	OpLt   Opcode = 7
	OpEq   Opcode = 8
	OpArb  Opcode = 9
	OpHalt Opcode = 99
)

type opInfo struct {
	name    string
	in, out int
}

var opcodes = map[Opcode]opInfo{
	OpAdd:  {"add", 2, 1},
	OpMul:  {"mul", 2, 1},
	OpIn:   {"in", 0, 1},
	OpOut:  {"out", 1, 0},
	OpJnz:  {"jnz", 2, 0},
	OpJz:   {"jz", 2, 0},
	OpLt:   {"lt", 2, 1},
	OpEq:   {"eq", 2, 1},
	OpArb:  {"arb", 1, 0},
	OpHalt: {"hlt", 0, 0},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Arity returns the number of input and output parameters of op.
func (op Opcode) Arity() (in, out int) {
	nfo := opcodes[op]
	return nfo.in, nfo.out
}

func (op Opcode) String() string {
	if nfo, ok := opcodes[op]; ok {
		return nfo.name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Mode is a parameter addressing mode.
type Mode Cell

// Parameter modes.
const (
	Position Mode = iota
	Immediate
	Relative
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}
