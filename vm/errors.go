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

// Errors returned by the VM. They are always wrapped with some context, use
// errors.Cause to test for them.
var (
	ErrInvalidOpcode  = errors.New("invalid opcode")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidMode    = errors.New("invalid parameter mode")
	ErrInvalidState   = errors.New("invalid machine state")
)
