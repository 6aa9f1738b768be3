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

package vm_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImage(t *testing.T) {
	img, err := vm.ParseImage(strings.NewReader("1,9,10,3,\n2,3,11,0,99,30,40,-50\n"))
	require.NoError(t, err)
	assert.Equal(t, vm.Image{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, -50}, img)
	assert.Equal(t, "1,9,10,3,2,3,11,0,99,30,40,-50", img.String())

	img, err = vm.ParseImage(strings.NewReader(" 104, 1125899906842624 ,99 "))
	require.NoError(t, err)
	assert.Equal(t, vm.Image{104, 1125899906842624, 99}, img)

	for _, bad := range []string{"", " \n", "1,,2", "1,x", "1;2", "99999999999999999999"} {
		_, err = vm.ParseImage(strings.NewReader(bad))
		assert.Error(t, err, "%q", bad)
	}
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "intcode")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "input.txt")
	require.NoError(t, ioutil.WriteFile(name, []byte("3,0,4,0,99\n"), 0644))
	img, err := vm.Load(name)
	require.NoError(t, err)
	assert.Equal(t, vm.Image{3, 0, 4, 0, 99}, img)

	_, err = vm.Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestImage_Clone(t *testing.T) {
	img := vm.Image{1, 2, 3}
	c := img.Clone()
	c[0] = 4
	assert.Equal(t, vm.Cell(1), img[0])
	assert.Nil(t, vm.Image(nil).Clone())
}
