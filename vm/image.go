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

import (
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Image is an Intcode program.
type Image []Cell

// ParseImage reads a program in its textual form: comma separated integers.
// Surrounding white space is ignored.
func ParseImage(r io.Reader) (Image, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "ParseImage")
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return nil, errors.New("ParseImage: empty program")
	}
	fields := strings.Split(s, ",")
	img := make(Image, len(fields))
	for k, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ParseImage: cell %d", k)
		}
		img[k] = Cell(n)
	}
	return img, nil
}

// Load loads a program from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := ParseImage(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return img, nil
}

// Clone returns a copy of the image.
func (img Image) Clone() Image {
	return append(Image(nil), img...)
}

// String returns the image in its textual form.
func (img Image) String() string {
	var b strings.Builder
	for k, v := range img {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
