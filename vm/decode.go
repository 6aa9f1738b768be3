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

import "github.com/pkg/errors"

// Decode splits an instruction word into its opcode and the addressing modes
// of its parameters, inputs first. Mode digits are not validated here, only
// the opcode is.
func Decode(word Cell) (op Opcode, modes []Mode, err error) {
	op = Opcode(word % 100)
	if !op.Valid() {
		return op, nil, errors.Wrapf(ErrInvalidOpcode, "word %d", word)
	}
	in, out := op.Arity()
	modes = make([]Mode, in+out)
	word /= 100
	for k := range modes {
		modes[k] = Mode(word % 10)
		word /= 10
	}
	return op, modes, nil
}

// instruction is the in-flight decoding state of the current instruction.
// modes holds the mode digits not consumed yet.
type instruction struct {
	op    Opcode
	modes Cell
}

func (in *instruction) nextMode() Mode {
	m := Mode(in.modes % 10)
	in.modes /= 10
	return m
}

func (i *Instance) fetch() Cell {
	v := i.mem.load(i.pc)
	i.pc++
	return v
}

func (i *Instance) decode() instruction {
	w := i.fetch()
	return instruction{Opcode(w % 100), w / 100}
}

// param resolves the next input parameter to its operand value.
func (i *Instance) param(in *instruction) Cell {
	raw := i.fetch()
	switch m := in.nextMode(); m {
	case Position:
		return i.mem.load(raw)
	case Immediate:
		return raw
	case Relative:
		return i.mem.load(i.rb + raw)
	default:
		panic(errors.Wrapf(ErrInvalidMode, "%s parameter", m))
	}
}

// target resolves the next output parameter to the address it designates.
func (i *Instance) target(in *instruction) Cell {
	raw := i.fetch()
	switch m := in.nextMode(); m {
	case Position:
		return raw
	case Relative:
		return i.rb + raw
	default:
		panic(errors.Wrapf(ErrInvalidMode, "%s write target", m))
	}
}
