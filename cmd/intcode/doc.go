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

// The intcode command line tool runs Intcode programs.
//
// Usage:
//
//	-ascii
//		  run in ASCII console mode
//	-asm
//		  the program file is assembly source, not a comma separated image
//	-config filename
//		  load settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print a disassembly of the program and exit
//	-dump filename
//		  save a snapshot of the machine to filename upon exit
//	-input values
//		  comma separated initial input values
//	-poke addr=value
//		  write value at address addr before running (can be specified multiple times)
//	-program filename
//		  load program from file filename (default "input.txt")
//	-resume filename
//		  resume the machine saved in snapshot filename
//	-trace
//		  log every executed instruction
//
// In numeric mode, the default, every output value is printed on its own line.
// When the program waits for input, a line of comma separated values is read
// from stdin and fed to the machine. The program exits when the machine halts
// or when stdin is exhausted.
//
// -ascii: output is rendered as text and each line read from stdin is sent to
// the machine as character codes terminated by a newline. A "> " prompt is
// displayed when stdin is a terminal.
//
// -config: settings can be loaded from a TOML file. Flags given on the command
// line take precedence over the file. For example:
//
//	program = "day2.txt"
//	input = [1]
//	trace = false
//
//	[poke]
//	1 = 12
//	2 = 2
//
// -debug: will print a full stacktrace and a dump of the machine state should
// the VM crash.
//
// -dump, -resume: a machine that stopped waiting for input because stdin ran
// out can be saved with -dump and resumed later with -resume. The -program,
// -asm and -poke flags are ignored when resuming.
package main
