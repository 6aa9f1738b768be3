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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm		args	description
//	------	---		----	----------------------------------------
//	1	add		a b t	t = a + b
//	2	mul		a b t	t = a * b
//	3	in		t	t = next input value
//	4	out		a	output a
//	5	jnz, jt		a b	jump to b if a != 0
//	6	jz, jf		a b	jump to b if a == 0
//	7	lt		a b t	t = 1 if a < b, else 0
//	8	eq		a b t	t = 1 if a == b, else 0
//	9	arb		a	add a to the relative base
//	99	hlt, halt		halt
//
// Operands:
//
// The addressing mode of an operand is given by its prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42
//	~42	relative mode: the value at address rb+42
//
// Output parameters (t above) cannot use immediate mode. The instruction word
// is built from the opcode and the mode of each operand, so that
// "add #1 ~2 3" assembles to 2101 1 2 3.
//
// Operand values can be decimal, octal (0o prefix), hexadecimal (0x prefix) or
// binary (0b prefix) integers, character literals like 'a' or '\n', constants
// or label names. A label name used as an operand stands for the label's
// address.
//
// Labels and directives:
//
//	:name		defines label name at the current address
//	.dat v...	raw words: all following values until the next
//			mnemonic or directive are written as is
//	.org n		set the compilation address to n
//	.equ name v	define a constant. Does not generate any code
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not, the parser will see "(this" as a token )
//
// The parser splits input at white space, so tokens may contain any letter,
// digit, symbol or punctuation character. Line breaks have no special meaning.
package asm
