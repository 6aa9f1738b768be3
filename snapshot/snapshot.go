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

// Package snapshot saves and restores the complete state of an Intcode
// machine.
//
// Snapshots are CBOR encoded. A machine restored from a snapshot continues
// exactly where the saved machine stopped: memory, registers, pending input
// and queued output are all preserved.
package snapshot

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/db47h/intcode/vm"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// Version is the snapshot format version written by Save.
const Version = 1

const magic = "intcode"

// Errors returned by Load.
var (
	ErrFormat  = errors.New("not an intcode snapshot")
	ErrVersion = errors.New("unsupported snapshot version")
)

type snapshot struct {
	Magic    string              `cbor:"1,keyasint"`
	Version  uint                `cbor:"2,keyasint"`
	Mem      []vm.Cell           `cbor:"3,keyasint"`
	Sparse   map[vm.Cell]vm.Cell `cbor:"4,keyasint,omitempty"`
	PC       vm.Cell             `cbor:"5,keyasint"`
	RB       vm.Cell             `cbor:"6,keyasint"`
	Halted   bool                `cbor:"7,keyasint"`
	Waiting  bool                `cbor:"8,keyasint"`
	Input    []vm.Cell           `cbor:"9,keyasint,omitempty"`
	Output   []vm.Cell           `cbor:"10,keyasint,omitempty"`
	Last     *vm.Cell            `cbor:"11,keyasint,omitempty"`
	InsCount int64               `cbor:"12,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
	// memory size is unbounded, lift the default 128K element limits.
	dm, err := cbor.DecOptions{
		MaxArrayElements: math.MaxInt32,
		MaxMapPairs:      math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR dec mode: %v", err))
	}
	decMode = dm
}

// Save writes a snapshot of machine i to w.
func Save(w io.Writer, i *vm.Instance) error {
	s := i.State()
	snap := snapshot{
		Magic:    magic,
		Version:  Version,
		Mem:      s.Mem,
		Sparse:   s.Sparse,
		PC:       s.PC,
		RB:       s.RB,
		Halted:   s.Halted,
		Waiting:  s.Waiting,
		Input:    s.Input,
		Output:   s.Output,
		InsCount: s.InsCount,
	}
	if s.HasLast {
		snap.Last = &s.Last
	}
	return errors.Wrap(encMode.NewEncoder(w).Encode(&snap), "snapshot save")
}

// Load reads a snapshot from r and returns the restored machine. The options
// are applied to the new instance; they are not part of the snapshot.
func Load(r io.Reader, opts ...vm.Option) (*vm.Instance, error) {
	var snap snapshot
	if err := decMode.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.Wrap(err, "snapshot load")
	}
	if snap.Magic != magic {
		return nil, ErrFormat
	}
	if snap.Version != Version {
		return nil, errors.Wrapf(ErrVersion, "version %d", snap.Version)
	}
	s := vm.State{
		Mem:      snap.Mem,
		Sparse:   snap.Sparse,
		PC:       snap.PC,
		RB:       snap.RB,
		Halted:   snap.Halted,
		Waiting:  snap.Waiting,
		Input:    snap.Input,
		Output:   snap.Output,
		InsCount: snap.InsCount,
	}
	if snap.Last != nil {
		s.Last, s.HasLast = *snap.Last, true
	}
	return vm.Restore(s, opts...)
}

// SaveFile saves a snapshot of i to the named file.
func SaveFile(fileName string, i *vm.Instance) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err = Save(f, i); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile restores a machine from the named snapshot file.
func LoadFile(fileName string, opts ...vm.Option) (*vm.Instance, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	i, err := Load(f, opts...)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return i, nil
}
