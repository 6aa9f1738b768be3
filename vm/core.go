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

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Run replaces the input queue with the given values and runs the machine
// until it halts or needs more input than it has been given.
//
// Unconsumed input from a previous call is discarded. Calling Run on a halted
// machine is a no-op.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error. Errors are fatal: running the machine again will fail the same way.
func (i *Instance) Run(input ...Cell) error {
	if i.halted {
		return nil
	}
	i.input = append([]Cell(nil), input...)
	i.waiting = false
	return i.run()
}

// RunText is like Run, but queues the character codes of s as input.
func (i *Instance) RunText(s string) error {
	in := make([]Cell, 0, len(s))
	for _, r := range s {
		in = append(in, Cell(r))
	}
	return i.Run(in...)
}

func (i *Instance) run() (err error) {
	var pc Cell
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				i.pc = pc
				err = errors.Wrapf(e, "@pc=%d, rb=%d", pc, i.rb)
				i.log.WithFields(logrus.Fields{"pc": pc, "rb": i.rb}).Error(e)
			default:
				panic(e)
			}
		}
	}()
	for !i.halted && !i.waiting {
		pc = i.pc
		i.step(pc)
	}
	return nil
}

// step executes a single instruction located at pc.
func (i *Instance) step(pc Cell) {
	in := i.decode()
	if i.trace {
		i.log.WithFields(logrus.Fields{
			"pc": pc,
			"op": in.op,
			"rb": i.rb,
		}).Debug("step")
	}
	switch in.op {
	case OpAdd:
		a := i.param(&in)
		b := i.param(&in)
		i.mem.store(i.target(&in), a+b)
	case OpMul:
		a := i.param(&in)
		b := i.param(&in)
		i.mem.store(i.target(&in), a*b)
	case OpIn:
		t := i.target(&in)
		if len(i.input) == 0 {
			// retry the whole instruction on the next Run
			i.pc = pc
			i.waiting = true
			i.log.WithField("pc", pc).Debug("waiting for input")
			return
		}
		i.mem.store(t, i.input[0])
		i.input = i.input[1:]
	case OpOut:
		i.emit(i.param(&in))
	case OpJnz:
		v := i.param(&in)
		dst := i.param(&in)
		if v != 0 {
			i.pc = dst
		}
	case OpJz:
		v := i.param(&in)
		dst := i.param(&in)
		if v == 0 {
			i.pc = dst
		}
	case OpLt:
		a := i.param(&in)
		b := i.param(&in)
		i.mem.store(i.target(&in), bool2Cell(a < b))
	case OpEq:
		a := i.param(&in)
		b := i.param(&in)
		i.mem.store(i.target(&in), bool2Cell(a == b))
	case OpArb:
		i.rb += i.param(&in)
	case OpHalt:
		i.halted = true
		i.log.WithFields(logrus.Fields{"pc": pc, "count": i.insCount + 1}).Debug("halted")
	default:
		panic(errors.Wrapf(ErrInvalidOpcode, "opcode %d", in.op))
	}
	i.insCount++
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}
