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

package asm

import (
	"io"
	"sort"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	img    vm.Image
	pc     int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	errs   ErrAsm

	// instruction being assembled
	op    vm.Opcode
	opPC  int
	opPos scanner.Position
	argn  int
	argc  int
	// in .dat block
	dat bool
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	if p.pc >= len(p.img) {
		p.img = append(p.img, make(vm.Image, p.pc-len(p.img)+1)...)
	}
	p.img[p.pc] = v
	p.pc++
}

func (p *parser) useLabel(name string, pos scanner.Position) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{labelSite{pos, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{pos, p.pc})
}

func (p *parser) defineLabel(name string, pos scanner.Position) {
	if name == "" {
		p.error(pos, "empty label name")
		return
	}
	if cst, ok := p.consts[name]; ok {
		p.error(pos, "label redefinition: "+name+", previously defined as a constant here: "+cst.pos.String())
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.error(pos, "label redefinition: "+name+", previous definition here: "+l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = pos
		return
	}
	p.labels[name] = &label{labelSite{pos, p.pc}, nil}
}

// number converts s to a Cell if s is an integer, a character literal or a
// constant.
func (p *parser) number(s string, pos scanner.Position) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error(pos, "invalid character literal "+s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// value writes a number or the address of a label.
func (p *parser) value(s string, pos scanner.Position) {
	if s == "" {
		p.error(pos, "missing value")
		p.write(0)
		return
	}
	if v, ok := p.number(s, pos); ok {
		p.write(v)
		return
	}
	if _, ok := opcodeIndex[s]; ok || s[0] == ':' || s[0] == '.' {
		p.error(pos, "invalid operand "+s)
		p.write(0)
		return
	}
	p.useLabel(s, pos)
	p.write(0)
}

// operand assembles the next parameter of the current instruction.
func (p *parser) operand(s string, pos scanner.Position) {
	mode := vm.Position
	switch s[0] {
	case '#':
		mode, s = vm.Immediate, s[1:]
	case '~':
		mode, s = vm.Relative, s[1:]
	}
	if in, _ := p.op.Arity(); mode == vm.Immediate && p.argn >= in {
		p.error(pos, "immediate mode for output parameter of "+p.op.String())
	}
	m := vm.Cell(100)
	for k := 0; k < p.argn; k++ {
		m *= 10
	}
	p.img[p.opPC] += vm.Cell(mode) * m
	p.value(s, pos)
	p.argn++
	p.argc--
}

func isOperand(s string) bool {
	if _, ok := opcodeIndex[s]; ok {
		return false
	}
	return !(len(s) > 1 && (s[0] == ':' || s[0] == '.'))
}

// endInstruction checks that the current instruction got all its operands.
func (p *parser) endInstruction() {
	if p.argc > 0 {
		p.error(p.opPos, "missing operand for "+p.op.String())
		for ; p.argc > 0; p.argc-- {
			p.write(0)
		}
	}
}

// next scans the next argument of a directive, which must be an identifier.
func (p *parser) next(directive string, pos scanner.Position) (string, scanner.Position, bool) {
	if tok := p.s.Scan(); tok != scanner.Ident {
		p.error(pos, directive+": unexpected "+scanner.TokenString(tok))
		return "", p.s.Position, false
	}
	return p.s.TokenText(), p.s.Position, true
}

func (p *parser) directive(s string, pos scanner.Position) {
	switch s {
	case ".dat":
		p.dat = true
	case ".org":
		t, tpos, ok := p.next(s, pos)
		if !ok {
			return
		}
		v, ok := p.number(t, tpos)
		if !ok || v < 0 {
			p.error(tpos, ".org: invalid address "+t)
			return
		}
		p.pc = int(v)
	case ".equ":
		name, npos, ok := p.next(s, pos)
		if !ok {
			return
		}
		if l, ok := p.labels[name]; ok {
			p.error(npos, ".equ: redefinition of "+name+", previously defined/used as a label here: "+l.pos.String())
			return
		}
		t, tpos, ok := p.next(s, pos)
		if !ok {
			return
		}
		v, ok := p.number(t, tpos)
		if !ok {
			p.error(tpos, ".equ: expected value, got "+t)
			return
		}
		p.consts[name] = labelSite{npos, int(v)}
	default:
		p.error(pos, "unknown directive "+s)
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Image, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		pos := p.s.Position
		if tok != scanner.Ident {
			p.error(pos, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()

		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.error(pos, "unterminated comment")
			}
			continue
		}
		if p.argc > 0 && !isOperand(s) {
			p.endInstruction()
		}

		switch {
		case p.argc > 0:
			p.operand(s, pos)
		case s[0] == ':':
			p.defineLabel(s[1:], pos)
		case s[0] == '.' && len(s) > 1:
			p.dat = false
			p.directive(s, pos)
		default:
			if op, ok := opcodeIndex[s]; ok {
				p.dat = false
				p.op, p.opPC, p.opPos = op, p.pc, pos
				in, out := op.Arity()
				p.argn, p.argc = 0, in+out
				p.write(vm.Cell(op))
				break
			}
			if !p.dat {
				p.error(pos, "unexpected operand "+s)
				break
			}
			p.value(s, pos)
		}
	}
	p.endInstruction()

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.img[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.img, nil
}
