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

// denseWindow is how far past the end of the dense region a write may land
// and still extend it. Anything further goes to the sparse map.
const denseWindow = 1 << 16

// Memory is the VM's address space. Addresses that have never been written
// read as 0.
//
// Memory is backed by a zero-extending slice. Writes to addresses far beyond
// its end are stored in a map instead, so that a single stray write does not
// allocate gigabytes.
type Memory struct {
	cells  []Cell
	sparse map[Cell]Cell
}

// NewMemory returns a new Memory initialized with a copy of img.
func NewMemory(img Image) *Memory {
	m := &Memory{cells: make([]Cell, len(img))}
	copy(m.cells, img)
	return m
}

// Read returns the value at address addr.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, errors.Wrapf(ErrInvalidAddress, "read @%d", addr)
	}
	if addr < Cell(len(m.cells)) {
		return m.cells[addr], nil
	}
	return m.sparse[addr], nil
}

// Write stores v at address addr.
func (m *Memory) Write(addr, v Cell) error {
	if addr < 0 {
		return errors.Wrapf(ErrInvalidAddress, "write @%d", addr)
	}
	l := Cell(len(m.cells))
	switch {
	case addr < l:
		m.cells[addr] = v
	case addr < l+denseWindow:
		m.grow(int(addr) + 1)
		m.cells[addr] = v
	default:
		if m.sparse == nil {
			m.sparse = make(map[Cell]Cell)
		}
		m.sparse[addr] = v
	}
	return nil
}

// Len returns the size of the dense region, i.e. the loaded program and any
// contiguous space grown after it.
func (m *Memory) Len() int {
	return len(m.cells)
}

func (m *Memory) grow(n int) {
	if n <= cap(m.cells) {
		m.cells = m.cells[:n]
	} else {
		t := make([]Cell, n, 2*n)
		copy(t, m.cells)
		m.cells = t
	}
	// pull back sparse cells that now fall in the dense region
	for a, v := range m.sparse {
		if a < Cell(n) {
			m.cells[a] = v
			delete(m.sparse, a)
		}
	}
}

// load and store are used by the run loop. Errors are raised as panics and
// recovered by Run.
func (m *Memory) load(addr Cell) Cell {
	v, err := m.Read(addr)
	if err != nil {
		panic(err)
	}
	return v
}

func (m *Memory) store(addr, v Cell) {
	if err := m.Write(addr, v); err != nil {
		panic(err)
	}
}

func (m *Memory) clone() *Memory {
	c := NewMemory(Image(m.cells))
	if len(m.sparse) > 0 {
		c.sparse = make(map[Cell]Cell, len(m.sparse))
		for a, v := range m.sparse {
			c.sparse[a] = v
		}
	}
	return c
}
