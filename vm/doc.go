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

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a sequence of integers. The low two decimal digits of
// an instruction word select the opcode, the remaining digits select the
// addressing mode of each parameter, least significant digit first:
//
//	mode	name		input parameter		output parameter
//	----	----		---------------		----------------
//	0	position	mem[p]			p
//	1	immediate	p			invalid
//	2	relative	mem[rb+p]		rb+p
//
// Supported opcodes:
//
//	opcode	name	in/out	description
//	------	----	------	------------------------------------------
//	1	add	2/1	target = a + b
//	2	mul	2/1	target = a * b
//	3	in	0/1	target = next input value
//	4	out	1/0	append a to the output queue
//	5	jnz	2/0	if a != 0, jump to b
//	6	jz	2/0	if a == 0, jump to b
//	7	lt	2/1	target = 1 if a < b, else 0
//	8	eq	2/1	target = 1 if a == b, else 0
//	9	arb	1/0	rb += a
//	99	hlt	0/0	halt
//
// A machine runs until it halts or executes an `in` instruction with an empty
// input queue. In the latter case Run returns with Waiting() set and the PC
// pointing at the `in` instruction, which will be retried on the next call to
// Run. Each call to Run replaces any unconsumed input with the new values.
//
// An Instance is not safe for concurrent use. Chaining machines together is
// done by copying output values from one machine into the input of another;
// see package github.com/db47h/intcode/chain.
package vm
