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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// emit queues v. A failed echo leaves the queue untouched so that the out
// instruction can be retried.
func (i *Instance) emit(v Cell) {
	if i.echo != nil {
		if _, err := io.WriteString(i.echo, strconv.FormatInt(int64(v), 10)+"\n"); err != nil {
			panic(errors.Wrap(err, "echo output"))
		}
	}
	i.output = append(i.output, v)
	i.last, i.hasLast = v, true
}

// Input returns the input values not consumed yet. The returned slice must
// not be modified.
func (i *Instance) Input() []Cell {
	return i.input
}

// PendingOutput returns the number of values in the output queue.
func (i *Instance) PendingOutput() int {
	return len(i.output)
}

// Output pops the oldest value from the output queue. ok is false if the queue
// is empty.
func (i *Instance) Output() (v Cell, ok bool) {
	if len(i.output) == 0 {
		return 0, false
	}
	v = i.output[0]
	i.output = i.output[1:]
	if len(i.output) == 0 {
		i.output = nil
	}
	return v, true
}

// DrainOutput returns all values in the output queue, oldest first, and
// empties the queue.
func (i *Instance) DrainOutput() []Cell {
	out := i.output
	i.output = nil
	return out
}

// LastOutput returns the most recent value ever output by the machine,
// regardless of whether it has been drained.
func (i *Instance) LastOutput() (v Cell, ok bool) {
	return i.last, i.hasLast
}

// ASCIIOutput drains the output queue and renders it as text with
// RenderASCII.
func (i *Instance) ASCIIOutput() string {
	return RenderASCII(i.DrainOutput())
}

// RenderASCII converts output values to text. Values in the range [0, 128]
// are character codes, anything else is written as a decimal number. Programs
// use this to mix numeric results with text output.
//
// The upper bound is inclusive: 128 renders as U+0080, a non-printable
// control character encoded on two bytes, not as "128".
func RenderASCII(out []Cell) string {
	var b strings.Builder
	for _, v := range out {
		if v < 0 || v > 128 {
			b.WriteString(strconv.FormatInt(int64(v), 10))
			continue
		}
		b.WriteRune(rune(v))
	}
	return b.String()
}
