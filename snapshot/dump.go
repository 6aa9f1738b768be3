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

package snapshot

import (
	"io"
	"sort"
	"strconv"

	"github.com/db47h/intcode/internal/errw"
	"github.com/db47h/intcode/vm"
)

func dumpSlice(w *errw.Writer, name string, a []vm.Cell) {
	w.WriteString(name)
	b := make([]byte, 0, 24)
	for k, v := range a {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		} else {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		w.Write(b)
	}
	w.WriteString("\n")
}

// Dump writes a human readable dump of the machine state to w: registers,
// input and output queues, dense memory as a comma separated list and any
// sparse cells as address:value pairs.
func Dump(w io.Writer, i *vm.Instance) error {
	ew := errw.New(w)
	s := i.State()
	ew.WriteString("pc " + strconv.FormatInt(int64(s.PC), 10) +
		" rb " + strconv.FormatInt(int64(s.RB), 10) +
		" halted " + strconv.FormatBool(s.Halted) +
		" waiting " + strconv.FormatBool(s.Waiting) +
		" steps " + strconv.FormatInt(s.InsCount, 10) + "\n")
	dumpSlice(ew, "in", s.Input)
	dumpSlice(ew, "out", s.Output)
	dumpSlice(ew, "mem", s.Mem)
	if len(s.Sparse) > 0 {
		addrs := make([]vm.Cell, 0, len(s.Sparse))
		for a := range s.Sparse {
			addrs = append(addrs, a)
		}
		sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
		ew.WriteString("sparse")
		for _, a := range addrs {
			ew.WriteString(" " + strconv.FormatInt(int64(a), 10) + ":" + strconv.FormatInt(int64(s.Sparse[a]), 10))
		}
		ew.WriteString("\n")
	}
	return ew.Err
}
