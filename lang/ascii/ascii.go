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

// Package ascii provides helpers for Intcode programs that talk to the user in
// text: each input character is fed as its character code, terminated by a
// newline, and output is rendered with vm.RenderASCII.
package ascii

import (
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Encode converts s to a sequence of input values, one per rune.
func Encode(s string) []vm.Cell {
	in := make([]vm.Cell, 0, len(s))
	for _, r := range s {
		in = append(in, vm.Cell(r))
	}
	return in
}

// Lines splits rendered output at newlines. A trailing newline does not
// produce an empty last line.
func Lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Console drives an ASCII capable machine one line at a time.
type Console struct {
	m *vm.Instance
}

// NewConsole returns a new Console for machine m.
func NewConsole(m *vm.Instance) *Console {
	return &Console{m}
}

// Machine returns the underlying machine.
func (c *Console) Machine() *vm.Instance {
	return c.m
}

// Done returns true once the machine has halted.
func (c *Console) Done() bool {
	return c.m.Halted()
}

// Boot runs the machine without input until it halts or waits for the first
// line, and returns the rendered output.
func (c *Console) Boot() (string, error) {
	return c.run(nil)
}

// Send runs the machine with line followed by a newline as input, and returns
// the rendered output.
func (c *Console) Send(line string) (string, error) {
	return c.run(Encode(line + "\n"))
}

// SendLines queues all lines at once, each terminated by a newline, and
// returns the rendered output.
func (c *Console) SendLines(lines ...string) (string, error) {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return c.run(Encode(b.String()))
}

func (c *Console) run(in []vm.Cell) (string, error) {
	err := c.m.Run(in...)
	out := c.m.ASCIIOutput()
	if err != nil {
		return out, errors.Wrap(err, "console")
	}
	return out, nil
}
