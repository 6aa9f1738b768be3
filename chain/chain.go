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

// Package chain runs several Intcode machines connected output to input.
//
// Machines are advanced one at a time, in order: a machine runs until it
// halts or waits for input, then its queued output becomes the input of the
// next machine.
package chain

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Errors returned by Feedback.
var (
	ErrStalled  = errors.New("chain stalled")
	ErrNoOutput = errors.New("no output")
	ErrEmpty    = errors.New("empty chain")
)

// New creates one machine per phase setting, all running a private copy of
// program, and feeds each machine its phase as first input. The returned
// machines are usually waiting for their first signal.
func New(program vm.Image, phases []vm.Cell, opts ...vm.Option) ([]*vm.Instance, error) {
	ms := make([]*vm.Instance, len(phases))
	for k, p := range phases {
		m, err := vm.New(program.Clone(), opts...)
		if err != nil {
			return nil, err
		}
		if err = m.Run(p); err != nil {
			return nil, errors.Wrapf(err, "machine %d", k)
		}
		ms[k] = m
	}
	return ms, nil
}

// Pipe runs each machine once, in order. input is fed to the first machine,
// the drained output of each machine is fed to the next one. It returns the
// drained output of the last machine.
//
// Halted machines are skipped and produce no output.
func Pipe(machines []*vm.Instance, input ...vm.Cell) ([]vm.Cell, error) {
	for k, m := range machines {
		if err := m.Run(input...); err != nil {
			return nil, errors.Wrapf(err, "machine %d", k)
		}
		input = m.DrainOutput()
	}
	return input, nil
}

// Feedback connects the output of the last machine back to the input of the
// first one and runs Pipe rounds, starting with signal, until the last
// machine halts. It returns the last value ever output by the last machine.
//
// If a round ends with no output while the last machine is still running,
// no machine can make further progress and ErrStalled is returned.
func Feedback(machines []*vm.Instance, signal ...vm.Cell) (vm.Cell, error) {
	if len(machines) == 0 {
		return 0, ErrEmpty
	}
	last := machines[len(machines)-1]
	for round := 1; ; round++ {
		out, err := Pipe(machines, signal...)
		if err != nil {
			return 0, errors.Wrapf(err, "round %d", round)
		}
		logrus.WithFields(logrus.Fields{
			"round":  round,
			"output": len(out),
			"halted": last.Halted(),
		}).Debug("feedback round")
		if last.Halted() {
			v, ok := last.LastOutput()
			if !ok {
				return 0, errors.Wrapf(ErrNoOutput, "round %d", round)
			}
			return v, nil
		}
		if len(out) == 0 {
			return 0, errors.Wrapf(ErrStalled, "round %d", round)
		}
		signal = out
	}
}

// Permutations calls fn for every ordering of the values in set. fn must not
// retain or modify its argument. Iteration stops early if fn returns false.
func Permutations(set []vm.Cell, fn func([]vm.Cell) bool) {
	p := append([]vm.Cell(nil), set...)
	permute(p, 0, fn)
}

func permute(p []vm.Cell, k int, fn func([]vm.Cell) bool) bool {
	if k == len(p) {
		return fn(p)
	}
	for j := k; j < len(p); j++ {
		p[k], p[j] = p[j], p[k]
		if !permute(p, k+1, fn) {
			return false
		}
		p[k], p[j] = p[j], p[k]
	}
	return true
}
