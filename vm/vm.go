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
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	mem      *Memory
	pc       Cell
	rb       Cell
	halted   bool
	waiting  bool
	input    []Cell
	output   []Cell
	last     Cell
	hasLast  bool
	insCount int64
	log      logrus.FieldLogger
	trace    bool
	echo     io.Writer
}

// Option interface
type Option func(*Instance) error

// Logger sets the logger used by the instance. The default is the logrus
// standard logger.
func Logger(l logrus.FieldLogger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// Trace enables or disables logging of every executed instruction at debug
// level.
func Trace(enable bool) Option {
	return func(i *Instance) error { i.trace = enable; return nil }
}

// Echo makes the VM write every output value to w as soon as it is produced,
// in decimal, one per line. Output values are still queued as usual.
func Echo(w io.Writer) Option {
	return func(i *Instance) error { i.echo = w; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance running the given program. The
// program is copied into memory at addresses 0 through len(program)-1, so the
// caller is free to reuse it.
//
// Options will be set by calling SetOptions.
func New(program Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: NewMemory(program),
		log: logrus.StandardLogger(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Halted returns true once the machine has executed a hlt instruction. A
// halted machine never changes state again.
func (i *Instance) Halted() bool {
	return i.halted
}

// Waiting returns true if the machine stopped on an in instruction because
// its input queue was empty.
func (i *Instance) Waiting() bool {
	return i.waiting
}

// PC returns the address of the next instruction to execute.
func (i *Instance) PC() Cell {
	return i.pc
}

// RelativeBase returns the current relative base.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// ReadAt returns the value stored at address addr.
func (i *Instance) ReadAt(addr Cell) (Cell, error) {
	return i.mem.Read(addr)
}

// WriteAt stores v at address addr. This is typically used to patch a
// program before running it.
func (i *Instance) WriteAt(addr, v Cell) error {
	return i.mem.Write(addr, v)
}

// Memory returns the instance's memory.
func (i *Instance) Memory() *Memory {
	return i.mem
}

// State is a copy of the complete state of an Instance. It can be used to
// save a machine and resume it later with Restore.
type State struct {
	Mem      []Cell
	Sparse   map[Cell]Cell
	PC       Cell
	RB       Cell
	Halted   bool
	Waiting  bool
	Input    []Cell
	Output   []Cell
	Last     Cell
	HasLast  bool
	InsCount int64
}

// State returns a copy of the machine state.
func (i *Instance) State() State {
	m := i.mem.clone()
	return State{
		Mem:      m.cells,
		Sparse:   m.sparse,
		PC:       i.pc,
		RB:       i.rb,
		Halted:   i.halted,
		Waiting:  i.waiting,
		Input:    append([]Cell(nil), i.input...),
		Output:   append([]Cell(nil), i.output...),
		Last:     i.last,
		HasLast:  i.hasLast,
		InsCount: i.insCount,
	}
}

// Restore creates a new Instance from a saved State.
func Restore(s State, opts ...Option) (*Instance, error) {
	if s.Halted && s.Waiting {
		return nil, errors.Wrap(ErrInvalidState, "both halted and waiting for input")
	}
	if s.PC < 0 {
		return nil, errors.Wrapf(ErrInvalidState, "negative PC %d", s.PC)
	}
	i, err := New(s.Mem, opts...)
	if err != nil {
		return nil, err
	}
	for a, v := range s.Sparse {
		if err = i.mem.Write(a, v); err != nil {
			return nil, errors.Wrap(ErrInvalidState, err.Error())
		}
	}
	i.pc = s.PC
	i.rb = s.RB
	i.halted = s.Halted
	i.waiting = s.Waiting
	i.input = append([]Cell(nil), s.Input...)
	i.output = append([]Cell(nil), s.Output...)
	i.last, i.hasLast = s.Last, s.HasLast
	if n := len(i.output); n > 0 && !s.HasLast {
		i.last, i.hasLast = i.output[n-1], true
	}
	i.insCount = s.InsCount
	return i, nil
}
