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

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/errw"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/sirupsen/logrus"
)

type session struct {
	i      *vm.Instance
	in     *bufio.Scanner
	out    *errw.Writer
	prompt string
}

func newSession(i *vm.Instance, r io.Reader, w io.Writer, prompt string) *session {
	return &session{i, bufio.NewScanner(r), errw.New(w), prompt}
}

// readLine displays the prompt and reads the next input line. ok is false at
// end of input.
func (s *session) readLine() (line string, ok bool, err error) {
	if s.prompt != "" {
		s.out.WriteString(s.prompt)
	}
	if s.out.Err != nil {
		return "", false, s.out.Err
	}
	if !s.in.Scan() {
		if err = s.in.Err(); err == nil {
			logrus.WithField("pc", s.i.PC()).Warn("end of input, machine still waiting")
		}
		return "", false, err
	}
	return s.in.Text(), true, nil
}

// runNumeric runs the machine with input, prints every output value on its own
// line and reads more comma separated input lines whenever the machine waits.
func (s *session) runNumeric(input []vm.Cell) error {
	err := s.i.Run(input...)
	for {
		for _, v := range s.i.DrainOutput() {
			s.out.WriteString(strconv.FormatInt(int64(v), 10) + "\n")
		}
		if err != nil || s.out.Err != nil || !s.i.Waiting() {
			break
		}
		line, ok, rerr := s.readLine()
		if !ok {
			return rerr
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		input, err = parseCells(line)
		if err != nil {
			return err
		}
		err = s.i.Run(input...)
	}
	if err != nil {
		return err
	}
	return s.out.Err
}

// runASCII runs the machine as a text console.
func (s *session) runASCII(input []vm.Cell) error {
	c := ascii.NewConsole(s.i)
	var (
		out string
		err error
	)
	if len(input) > 0 {
		err = s.i.Run(input...)
		out = s.i.ASCIIOutput()
	} else {
		out, err = c.Boot()
	}
	for {
		s.out.WriteString(out)
		if err != nil || s.out.Err != nil || c.Done() {
			break
		}
		line, ok, rerr := s.readLine()
		if !ok {
			return rerr
		}
		out, err = c.Send(strings.TrimRight(line, "\r"))
	}
	if err != nil {
		return err
	}
	return s.out.Err
}
