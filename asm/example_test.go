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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
)

func ExampleAssemble() {
	code := `
	( count down from the input value )
		in  ~0
	:loop
		out ~0
		add ~0 #-1 ~0
		jnz ~0 #loop
		hlt
	`
	img, err := asm.Assemble("countdown", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(img)

	// Output:
	// 203,0,204,0,21201,0,-1,0,1205,0,2,99
}

func ExampleDisassembleAll() {
	img, _ := asm.Assemble("countdown", strings.NewReader("in ~0 :loop out ~0 add ~0 #-1 ~0 jnz ~0 #loop hlt"))
	asm.DisassembleAll(img, 0, os.Stdout)

	// Output:
	//          0	in ~0
	//          2	out ~0
	//          4	add ~0 #-1 ~0
	//          8	jnz ~0 #2
	//         11	hlt
}

func ExampleAssemble_errors() {
	_, err := asm.Assemble("bad.ic", strings.NewReader("add 1 2 #3\nout nowhere"))
	fmt.Println(err)

	// Output:
	// bad.ic:1:9: immediate mode for output parameter of add
	// bad.ic:2:5: undefined label nowhere
}
